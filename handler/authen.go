package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func (h *Handler) setAuthCookies(c *fiber.Ctx, tokens model.TokenData) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		Expires:  time.Now().Add(h.Cfg.TokenLifetime),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    tokens.RefreshToken,
		Expires:  time.Now().Add(h.Cfg.RefreshLifetime),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, SameSite: "Lax", Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, SameSite: "Lax", Path: "/"})
}

func (h *Handler) Register(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	existing, err := helper.GetUserByUsername(h.DB, input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.USERNAME_ALREADY_TAKEN, nil)
	}

	existing, err = helper.GetUserByEmail(h.DB, input.Email)
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

	user := model.User{IsActive: true}
	if err := copier.CopyWithOption(&user, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	user.Password = hashed

	if err := h.DB.Create(&user).Error; err != nil {
		// The unique indexes backstop the lookups above under races
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.USERNAME_ALREADY_TAKEN, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	logrus.Infof("user %s registered", user.Username)

	return utils.SuccessResponse(c, fiber.StatusCreated, user, "Registration successful.")
}

func (h *Handler) Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var user *model.User
	var err error
	if input.Username != "" {
		user, err = helper.GetUserByUsername(h.DB, input.Username)
	} else {
		user, err = helper.GetUserByEmail(h.DB, input.Email)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	// One message for unknown account and wrong password
	if user == nil || !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, nil)
	}
	if !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, nil)
	}

	tokens, err := helper.GenerateTokenPair(h.Cfg, model.TokenClaim{
		UserId:   user.ID,
		Username: user.Username,
		Role:     constants.ROLE_USER,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	h.setAuthCookies(c, tokens)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"user":  user,
		"token": tokens,
	}, "Login successful.")
}

func (h *Handler) AdminLogin(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var admin *model.Admin
	var err error
	if input.Username != "" {
		admin, err = helper.GetAdminByUsername(h.DB, input.Username)
	} else {
		admin, err = helper.GetAdminByEmail(h.DB, input.Email)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	if admin == nil || !helper.CheckPasswordHash(input.Password, admin.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, nil)
	}
	if !admin.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, nil)
	}

	tokens, err := helper.GenerateTokenPair(h.Cfg, model.TokenClaim{
		AdminId:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	h.setAuthCookies(c, tokens)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"admin": admin,
		"token": tokens,
	}, "Login successful.")
}

// Refresh accepts the refresh token from the request body or from the
// refresh cookie and rotates both tokens.
func (h *Handler) Refresh(c *fiber.Ctx) error {
	var input model.RefreshInput
	// Body is optional, the cookie covers browser clients
	_ = c.BodyParser(&input)

	tokenString := input.RefreshToken
	if tokenString == "" {
		tokenString = c.Cookies("refresh_token")
	}
	if tokenString == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
	}

	token, err := helper.ParseToken(h.Cfg, tokenString)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
	}
	claim := helper.ClaimFromToken(token)

	// The account must still exist and be active
	switch {
	case claim.UserId != 0:
		user, err := helper.GetUserById(h.DB, claim.UserId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
		}
		if user == nil || !user.IsActive {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
		}
	case claim.AdminId != 0:
		admin, err := helper.GetAdminById(h.DB, claim.AdminId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
		}
		if admin == nil || !admin.IsActive {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
		}
	default:
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
	}

	tokens, err := helper.GenerateTokenPair(h.Cfg, claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	h.setAuthCookies(c, tokens)

	return utils.SuccessResponse(c, fiber.StatusOK, tokens, "Token refreshed.")
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	clearAuthCookies(c)
	return utils.SuccessResponse(c, fiber.StatusOK, nil, "Logged out.")
}
