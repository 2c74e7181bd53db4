package helper

import (
	"errors"

	"gorm.io/gorm"

	"restaurant_manager/apperr"
	"restaurant_manager/constants"
	"restaurant_manager/model"
)

func GetTableById(db *gorm.DB, id uint) (*model.Table, error) {
	var table model.Table
	if err := db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.TABLE_NOT_FOUND)
		}
		return nil, apperr.Internal(err)
	}
	return &table, nil
}

func GetTimeSlotById(db *gorm.DB, id uint) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	if err := db.First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.TIME_SLOT_NOT_FOUND)
		}
		return nil, apperr.Internal(err)
	}
	return &slot, nil
}
