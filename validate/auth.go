package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-multierror"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput

		// Parse JSON from request body into struct
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		var errs *multierror.Error
		errs = multierror.Append(errs, ValidateUsername(input.Username), ValidatePassword(input.Password))
		if list := errorList(errs); len(list) > 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, list)
		}

		// Save input to context locals
		c.Locals("inputRegister", input)

		// Continue to next handler
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		// Either identifier works, at least one must be present
		if input.Email == "" && input.Username == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, nil)
		}
		if input.Email != "" && !helper.ValidEmail(input.Email) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_EMAIL, nil)
		}

		// Save input to context locals
		c.Locals("inputLogin", input)

		return c.Next()
	}
}

func EditProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditProfileInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		if input.Email != nil && !helper.ValidEmail(*input.Email) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_EMAIL, nil)
		}

		// Save input to context locals
		c.Locals("inputEditProfile", input)

		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UserChangePassword

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		if input.NewPassword != input.RepeatPassword {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PASSWORDS_DO_NOT_MATCH, nil)
		}
		if input.NewPassword == input.CurrentPassword {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NEW_PASSWORD_SAME_AS_OLD, nil)
		}
		if list := errorList(ValidatePassword(input.NewPassword)); len(list) > 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, list)
		}

		// Save input to context locals
		c.Locals("inputChangePassword", input)

		return c.Next()
	}
}
