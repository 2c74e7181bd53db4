package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

// AdminListBookings supports the full filter including userId.
func (h *Handler) AdminListBookings(c *fiber.Ctx) error {
	filter := new(model.FilterBooking)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	query := h.DB.Model(&model.Booking{})
	query, err := applyBookingFilter(query, filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	query.Count(&total)

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var bookings model.Bookings
	if err := query.
		Preload("User").
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

func (h *Handler) ChangeBookingStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("inputChangeStatus").(model.ChangeBookingStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	booking, err := helper.ChangeBookingStatus(h.DB, c.Params("code"), input.Status)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking, "Booking status updated.")
}

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	filter := new(model.FilterUser)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	query := h.DB.Model(&model.User{})
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.SearchKey != "" {
		search := "%" + strings.ToLower(filter.SearchKey) + "%"
		query = query.Where(
			h.DB.Where("LOWER(username) LIKE ?", search).
				Or("LOWER(email) LIKE ?", search).
				Or("LOWER(full_name) LIKE ?", search),
		)
	}

	var total int64
	query.Count(&total)

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var users model.Users
	if err := query.Order("id").Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	response := &model.ResponseCustom{
		Rows:       users,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response, "OK")
}

// ToggleUserActive locks or unlocks an account. A locked account cannot log
// in or refresh tokens.
func (h *Handler) ToggleUserActive(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	user, err := helper.GetUserById(h.DB, uint(id))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
	}

	if err := h.DB.Model(&model.User{}).Where("id = ?", user.ID).
		Update("is_active", !user.IsActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	user.IsActive = !user.IsActive

	logrus.Infof("user %s active set to %t", user.Username, user.IsActive)

	return utils.SuccessResponse(c, fiber.StatusOK, user, "User updated.")
}

func (h *Handler) CreateAdmin(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateAdmin").(model.CreateAdminInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	existing, err := helper.GetAdminByUsername(h.DB, input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.USERNAME_ALREADY_TAKEN, nil)
	}

	existing, err = helper.GetAdminByEmail(h.DB, input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_REGISTERED, nil)
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, nil)
	}

	admin := model.Admin{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
		IsActive: true,
	}
	if input.FullName != "" {
		admin.FullName = &input.FullName
	}

	if err := h.DB.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.USERNAME_ALREADY_TAKEN, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	logrus.Infof("admin %s created with role %s", admin.Username, admin.Role)

	return utils.SuccessResponse(c, fiber.StatusCreated, admin, "Admin created.")
}

// BookingStats aggregates the range given by from/to, defaulting to the
// last seven days.
func (h *Handler) BookingStats(c *fiber.Ctx) error {
	fromStr := c.Query("from", time.Now().AddDate(0, 0, -7).Format("2006-01-02"))
	toStr := c.Query("to", time.Now().Format("2006-01-02"))

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, nil)
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, nil)
	}

	stats, err := helper.GetBookingStats(h.DB, from, to)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stats, "OK")
}

// UploadSignature signs a direct upload so clients can push dish images to
// Cloudinary without the API secret.
func (h *Handler) UploadSignature(c *fiber.Ctx) error {
	if h.Cld == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UPLOADS_NOT_CONFIGURED, nil)
	}

	folder := c.Query("folder", "dishes")
	publicID := c.Query("publicId")

	signature := helper.SignUploadParams(h.Cfg, folder, publicID, time.Now().Unix())

	return utils.SuccessResponse(c, fiber.StatusOK, signature, "OK")
}
