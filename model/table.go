package model

type Table struct {
	DTO
	TableNumber int    `gorm:"unique;not null" json:"tableNumber"`
	Capacity    int    `gorm:"not null" json:"capacity"`
	Location    string `gorm:"size:50" json:"location"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

// TableName avoids the reserved word "tables".
func (Table) TableName() string {
	return "dining_tables"
}

type Tables []Table

type CreateTableInput struct {
	TableNumber int    `validate:"required,min=1" json:"tableNumber"`
	Capacity    int    `validate:"required,min=1" json:"capacity"`
	Location    string `json:"location"`
}

type EditTableInput struct {
	TableNumber *int    `validate:"omitempty,min=1" json:"tableNumber"`
	Capacity    *int    `validate:"omitempty,min=1" json:"capacity"`
	Location    *string `json:"location"`
}

// TableAvailability pairs a table with the slots still free on a given date.
type TableAvailability struct {
	Table     Table      `json:"table"`
	FreeSlots []TimeSlot `json:"freeSlots"`
}
