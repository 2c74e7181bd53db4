package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/utils"
)

// Protected accepts the access token from the auth cookie or from the
// Authorization header.
func Protected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", nil)
		}

		jwtToken, err := helper.ParseToken(cfg, token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, nil)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// AdminOnly lets ADMIN and MANAGER accounts through.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim := helper.ClaimFromContext(c)
		if claim.AdminId == 0 || (claim.Role != constants.ROLE_ADMIN && claim.Role != constants.ROLE_MANAGER) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
		}
		return c.Next()
	}
}

// AdminRoleOnly restricts an operation to full ADMIN accounts.
func AdminRoleOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim := helper.ClaimFromContext(c)
		if claim.Role != constants.ROLE_ADMIN {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
		}
		return c.Next()
	}
}
