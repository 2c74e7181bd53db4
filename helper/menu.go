package helper

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"restaurant_manager/apperr"
	"restaurant_manager/constants"
	"restaurant_manager/model"
)

func generateUniqueSlug(db *gorm.DB, m any, name string) string {
	baseSlug := slug.Make(name)
	newSlug := baseSlug
	var count int64
	i := 1
	for {
		db.Model(m).Where("slug = ?", newSlug).Count(&count)
		if count == 0 {
			break
		}
		newSlug = fmt.Sprintf("%s-%d", baseSlug, i)
		i++
	}
	return newSlug
}

func GenerateUniqueCategorySlug(db *gorm.DB, name string) string {
	return generateUniqueSlug(db, &model.Category{}, name)
}

func GenerateUniqueDishSlug(db *gorm.DB, name string) string {
	return generateUniqueSlug(db, &model.Dish{}, name)
}

func GetCategoryById(db *gorm.DB, id uint) (*model.Category, error) {
	var category model.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.CATEGORY_NOT_FOUND)
		}
		return nil, apperr.Internal(err)
	}
	return &category, nil
}

func GetDishById(db *gorm.DB, id uint) (*model.Dish, error) {
	var dish model.Dish
	if err := db.Preload("Category").First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.DISH_NOT_FOUND)
		}
		return nil, apperr.Internal(err)
	}
	return &dish, nil
}

func GetDishBySlug(db *gorm.DB, dishSlug string) (*model.Dish, error) {
	var dish model.Dish
	if err := db.Preload("Category").Where("slug = ?", dishSlug).First(&dish).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.DISH_NOT_FOUND)
		}
		return nil, apperr.Internal(err)
	}
	return &dish, nil
}
