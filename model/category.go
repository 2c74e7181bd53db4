package model

type Category struct {
	DTO
	Name        string `gorm:"unique;not null" json:"name"`
	Slug        string `gorm:"unique;not null" json:"slug"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
	Dishes      []Dish `gorm:"foreignKey:CategoryID" json:"dishes,omitempty"`
}

type CreateCategoryInput struct {
	Name        string `validate:"required" json:"name"`
	Description string `json:"description"`
}

type EditCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}
