package model

type TimeSlot struct {
	DTO
	StartTime string `gorm:"size:5;not null" json:"startTime"`
	EndTime   string `gorm:"size:5;not null" json:"endTime"`
	IsActive  bool   `gorm:"default:true" json:"isActive"`
}

type TimeSlots []TimeSlot

type CreateTimeSlotInput struct {
	StartTime string `validate:"required" json:"startTime"`
	EndTime   string `validate:"required" json:"endTime"`
}

type EditTimeSlotInput struct {
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}
