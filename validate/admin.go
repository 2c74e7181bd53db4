package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-multierror"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func CreateAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAdminInput

		// Parse JSON from request body into struct
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		if input.Role != constants.ROLE_ADMIN && input.Role != constants.ROLE_MANAGER {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ROLE, nil)
		}

		var errs *multierror.Error
		errs = multierror.Append(errs, ValidateUsername(input.Username), ValidatePassword(input.Password))
		if list := errorList(errs); len(list) > 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, list)
		}

		// Save input to context locals
		c.Locals("inputCreateAdmin", input)

		// Continue to next handler
		return c.Next()
	}
}
