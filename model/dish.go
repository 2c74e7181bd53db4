package model

import "gorm.io/datatypes"

type Dish struct {
	DTO
	Name         string         `gorm:"not null" json:"name"`
	Slug         string         `gorm:"unique;not null" json:"slug"`
	Description  string         `json:"description"`
	Price        float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID   uint           `gorm:"not null" json:"categoryId"`
	Category     *Category      `json:"category,omitempty"`
	IsVegetarian bool           `gorm:"default:false" json:"isVegetarian"`
	IsAvailable  bool           `gorm:"default:true" json:"isAvailable"`
	ImageURL     *string        `json:"imageUrl"`
	Tags         datatypes.JSON `json:"tags"`
}

type Dishes []Dish

type CreateDishInput struct {
	Name         string   `validate:"required" json:"name"`
	Description  string   `json:"description"`
	Price        float64  `validate:"required,gt=0" json:"price"`
	CategoryID   uint     `validate:"required" json:"categoryId"`
	IsVegetarian bool     `json:"isVegetarian"`
	ImageURL     string   `json:"imageUrl"`
	Tags         []string `json:"tags"`
}

type EditDishInput struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Price        *float64  `validate:"omitempty,gt=0" json:"price"`
	CategoryID   *uint     `validate:"omitempty,min=1" json:"categoryId"`
	IsVegetarian *bool     `json:"isVegetarian"`
	ImageURL     *string   `json:"imageUrl"`
	Tags         *[]string `json:"tags"`
}

type FilterDish struct {
	Pagination
	CategoryID *uint  `query:"categoryId" json:"categoryId"`
	Vegetarian *bool  `query:"vegetarian" json:"vegetarian"`
	Available  *bool  `query:"available" json:"available"`
	SearchKey  string `query:"searchKey" json:"searchKey"`
}
