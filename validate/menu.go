package validate

import (
	"github.com/gofiber/fiber/v2"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCategoryInput

		// Parse JSON from request body into struct
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		// Save input to context locals
		c.Locals("inputCreateCategory", input)

		// Continue to next handler
		return c.Next()
	}
}

func EditCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditCategoryInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		// Save input to context locals
		c.Locals("inputEditCategory", input)

		return c.Next()
	}
}

func CreateDish() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDishInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		// Save input to context locals
		c.Locals("inputCreateDish", input)

		return c.Next()
	}
}

func EditDish() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditDishInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		// Save input to context locals
		c.Locals("inputEditDish", input)

		return c.Next()
	}
}
