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

func (h *Handler) Me(c *fiber.Ctx) error {
	claim := helper.ClaimFromContext(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
	}

	user, err := helper.GetUserById(h.DB, claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user, "OK")
}

func (h *Handler) EditProfile(c *fiber.Ctx) error {
	claim := helper.ClaimFromContext(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
	}

	input, ok := c.Locals("inputEditProfile").(model.EditProfileInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	user, err := helper.GetUserById(h.DB, claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
	}

	if input.Email != nil && *input.Email != user.Email {
		other, err := helper.GetUserByEmail(h.DB, *input.Email)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
		}
		if other != nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_REGISTERED, nil)
		}
	}

	if err := copier.CopyWithOption(user, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	if err := h.DB.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_REGISTERED, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user, "Profile updated.")
}

func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	claim := helper.ClaimFromContext(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
	}

	input, ok := c.Locals("inputChangePassword").(model.UserChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	user, err := helper.GetUserById(h.DB, claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.WRONG_CURRENT_PASSWORD, nil)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, nil)
	}

	if err := h.DB.Model(user).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	logrus.Infof("user %s changed password", user.Username)

	return utils.SuccessResponse(c, fiber.StatusOK, nil, "Password changed.")
}
