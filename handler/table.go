package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

// ListTables returns the tables guests can book.
func (h *Handler) ListTables(c *fiber.Ctx) error {
	var tables model.Tables
	if err := h.DB.Where("is_active = ?", true).Order("table_number").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tables, "OK")
}

func (h *Handler) AdminListTables(c *fiber.Ctx) error {
	var tables model.Tables
	if err := h.DB.Order("table_number").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tables, "OK")
}

func (h *Handler) CreateTable(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateTable").(model.CreateTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var count int64
	h.DB.Model(&model.Table{}).Where("table_number = ?", input.TableNumber).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_NUMBER_EXISTS, nil)
	}

	table := model.Table{
		TableNumber: input.TableNumber,
		Capacity:    input.Capacity,
		Location:    input.Location,
		IsActive:    true,
	}
	if err := h.DB.Create(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_NUMBER_EXISTS, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	logrus.Infof("table %d created", table.TableNumber)

	return utils.SuccessResponse(c, fiber.StatusCreated, table, "Table created.")
}

func (h *Handler) EditTable(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("inputEditTable").(model.EditTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	table, err := helper.GetTableById(h.DB, uint(id))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if input.TableNumber != nil && *input.TableNumber != table.TableNumber {
		var count int64
		h.DB.Model(&model.Table{}).Where("table_number = ? AND id <> ?", *input.TableNumber, table.ID).Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_NUMBER_EXISTS, nil)
		}
	}

	if err := copier.CopyWithOption(table, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	if err := h.DB.Save(table).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_NUMBER_EXISTS, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, table, "Table updated.")
}

// ToggleTableActive flips whether the table accepts new bookings. Existing
// bookings stay untouched.
func (h *Handler) ToggleTableActive(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	table, err := helper.GetTableById(h.DB, uint(id))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.DB.Model(&model.Table{}).Where("id = ?", table.ID).
		Update("is_active", !table.IsActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	table.IsActive = !table.IsActive

	return utils.SuccessResponse(c, fiber.StatusOK, table, "Table updated.")
}
