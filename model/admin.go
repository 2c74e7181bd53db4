package model

type Admin struct {
	DTO
	Username string  `gorm:"unique;not null" json:"username"`
	Email    string  `gorm:"unique;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	FullName *string `json:"fullName"`
	Role     string  `gorm:"size:20;not null" json:"role"`
	IsActive bool    `gorm:"default:true" json:"isActive"`
}

type CreateAdminInput struct {
	Username string `validate:"required" json:"username"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
	FullName string `json:"fullName"`
	Role     string `validate:"required" json:"role"`
}
