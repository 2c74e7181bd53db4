package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/utils"
)

// Availability lists free slots per active table for a date, defaulting
// to today.
func (h *Handler) Availability(c *fiber.Ctx) error {
	dateStr := c.Query("date", time.Now().Format("2006-01-02"))
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, nil)
	}

	var tableId *uint
	if raw := c.QueryInt("tableId"); raw > 0 {
		v := uint(raw)
		tableId = &v
	}

	availability, err := helper.GetAvailability(h.DB, date, tableId)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, availability, "OK")
}
