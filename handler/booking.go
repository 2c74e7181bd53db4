package handler

import (
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"restaurant_manager/apperr"
	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func applyBookingFilter(query *gorm.DB, filter *model.FilterBooking) (*gorm.DB, error) {
	if filter.Status != "" {
		if !helper.IsBookingStatus(filter.Status) {
			return nil, apperr.Validation(constants.UNKNOWN_STATUS)
		}
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != "" {
		from, err := time.Parse("2006-01-02", filter.From)
		if err != nil {
			return nil, apperr.Validation(constants.INVALID_DATE)
		}
		query = query.Where("booking_date >= ?", from.Format("2006-01-02"))
	}
	if filter.To != "" {
		to, err := time.Parse("2006-01-02", filter.To)
		if err != nil {
			return nil, apperr.Validation(constants.INVALID_DATE)
		}
		query = query.Where("booking_date <= ?", to.Format("2006-01-02"))
	}
	if filter.TableID != nil {
		query = query.Where("table_id = ?", *filter.TableID)
	}
	return query, nil
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	claim := helper.ClaimFromContext(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
	}

	input, ok := c.Locals("inputCreateBooking").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	booking, err := helper.CreateBooking(h.DB, h.Cfg, claim.UserId, input)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, booking, "Booking created.")
}

func (h *Handler) MyBookings(c *fiber.Ctx) error {
	claim := helper.ClaimFromContext(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
	}

	filter := new(model.FilterBooking)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	query := h.DB.Model(&model.Booking{}).Where("user_id = ?", claim.UserId)
	query, err := applyBookingFilter(query, filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var total int64
	query.Count(&total)

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var bookings model.Bookings
	if err := query.
		Preload("Table").
		Preload("TimeSlot").
		Preload("Items").
		Order("booking_date DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	response := &model.ResponseCustom{
		Rows:       bookings,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response, "OK")
}

// GetBooking returns the booking detail with a QR image of the public code.
// Owners see their own bookings, staff see all.
func (h *Handler) GetBooking(c *fiber.Ctx) error {
	claim := helper.ClaimFromContext(c)
	code := c.Params("code")

	booking, err := helper.GetBookingByCode(h.DB, code)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if claim.AdminId == 0 && booking.UserID != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, nil)
	}

	qr, err := utils.GenerateQRCode(booking.PublicCode, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking": booking,
		"qrCode":  base64.StdEncoding.EncodeToString(qr),
	}, "OK")
}

func (h *Handler) UpdateBooking(c *fiber.Ctx) error {
	claim := helper.ClaimFromContext(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
	}

	input, ok := c.Locals("inputUpdateBooking").(model.UpdateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	booking, err := helper.UpdateBooking(h.DB, h.Cfg, claim.UserId, c.Params("code"), input)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking, "Booking updated.")
}

func (h *Handler) CancelBooking(c *fiber.Ctx) error {
	claim := helper.ClaimFromContext(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
	}

	booking, err := helper.CancelBooking(h.DB, claim.UserId, c.Params("code"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking, "Booking cancelled.")
}
