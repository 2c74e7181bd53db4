package model

type User struct {
	DTO
	Username string  `gorm:"unique;not null" json:"username"`
	Email    string  `gorm:"unique;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	IsActive bool    `gorm:"default:true" json:"isActive"`
}

type Users []User

type RegisterInput struct {
	Username string `validate:"required" json:"username"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `validate:"required" json:"password"`
}

type RefreshInput struct {
	RefreshToken string `validate:"required" json:"refreshToken"`
}

type EditProfileInput struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}

type UserChangePassword struct {
	CurrentPassword string `validate:"required" json:"currentPassword"`
	NewPassword     string `validate:"required" json:"newPassword"`
	RepeatPassword  string `validate:"required" json:"repeatPassword"`
}

type FilterUser struct {
	Pagination
	SearchKey string `query:"searchKey" json:"searchKey"`
	Active    *bool  `query:"active" json:"active"`
}
