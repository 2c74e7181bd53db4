package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

// ListTimeSlots returns the slots guests can book.
func (h *Handler) ListTimeSlots(c *fiber.Ctx) error {
	var slots model.TimeSlots
	if err := h.DB.Where("is_active = ?", true).Order("start_time").Find(&slots).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, slots, "OK")
}

func (h *Handler) AdminListTimeSlots(c *fiber.Ctx) error {
	var slots model.TimeSlots
	if err := h.DB.Order("start_time").Find(&slots).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, slots, "OK")
}

func (h *Handler) CreateTimeSlot(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateTimeSlot").(model.CreateTimeSlotInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var count int64
	h.DB.Model(&model.TimeSlot{}).
		Where("start_time = ? AND end_time = ?", input.StartTime, input.EndTime).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TIME_SLOT_EXISTS, nil)
	}

	slot := model.TimeSlot{
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		IsActive:  true,
	}
	if err := h.DB.Create(&slot).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	logrus.Infof("time slot %s-%s created", slot.StartTime, slot.EndTime)

	return utils.SuccessResponse(c, fiber.StatusCreated, slot, "Time slot created.")
}

func (h *Handler) EditTimeSlot(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("inputEditTimeSlot").(model.EditTimeSlotInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	slot, err := helper.GetTimeSlotById(h.DB, uint(id))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	startTime := slot.StartTime
	if input.StartTime != nil {
		startTime = *input.StartTime
	}
	endTime := slot.EndTime
	if input.EndTime != nil {
		endTime = *input.EndTime
	}

	// The merged window must still fit the operating hours
	if err := helper.CheckSlotWindow(startTime, endTime, h.Cfg.OpenTime, h.Cfg.CloseTime); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if startTime != slot.StartTime || endTime != slot.EndTime {
		var count int64
		h.DB.Model(&model.TimeSlot{}).
			Where("start_time = ? AND end_time = ? AND id <> ?", startTime, endTime, slot.ID).
			Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TIME_SLOT_EXISTS, nil)
		}
	}

	slot.StartTime = startTime
	slot.EndTime = endTime
	if err := h.DB.Save(slot).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, slot, "Time slot updated.")
}

func (h *Handler) ToggleTimeSlotActive(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	slot, err := helper.GetTimeSlotById(h.DB, uint(id))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.DB.Model(&model.TimeSlot{}).Where("id = ?", slot.ID).
		Update("is_active", !slot.IsActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	slot.IsActive = !slot.IsActive

	return utils.SuccessResponse(c, fiber.StatusOK, slot, "Time slot updated.")
}
