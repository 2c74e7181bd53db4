package validate

import (
	"github.com/gofiber/fiber/v2"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func CreateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTableInput

		// Parse JSON from request body into struct
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		// Save input to context locals
		c.Locals("inputCreateTable", input)

		// Continue to next handler
		return c.Next()
	}
}

func EditTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditTableInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		// Save input to context locals
		c.Locals("inputEditTable", input)

		return c.Next()
	}
}
