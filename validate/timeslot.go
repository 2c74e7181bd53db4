package validate

import (
	"github.com/gofiber/fiber/v2"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func CreateTimeSlot(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTimeSlotInput

		// Parse JSON from request body into struct
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		if err := helper.CheckSlotWindow(input.StartTime, input.EndTime, cfg.OpenTime, cfg.CloseTime); err != nil {
			return utils.AppErrorResponse(c, err)
		}

		// Save input to context locals
		c.Locals("inputCreateTimeSlot", input)

		// Continue to next handler
		return c.Next()
	}
}

// EditTimeSlot only parses the body. The merged window is checked in the
// handler once the existing row is loaded.
func EditTimeSlot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditTimeSlotInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		// Save input to context locals
		c.Locals("inputEditTimeSlot", input)

		return c.Next()
	}
}
