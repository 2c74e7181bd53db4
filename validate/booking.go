package validate

import (
	"github.com/gofiber/fiber/v2"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput

		// Parse JSON from request body into struct
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		// CustomDate cannot carry a required tag, check by hand
		if input.BookingDate.IsZero() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_DATE_REQUIRED, nil)
		}

		// Save input to context locals
		c.Locals("inputCreateBooking", input)

		// Continue to next handler
		return c.Next()
	}
}

func UpdateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateBookingInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		if input.BookingDate != nil && input.BookingDate.IsZero() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_DATE_REQUIRED, nil)
		}

		// Save input to context locals
		c.Locals("inputUpdateBooking", input)

		return c.Next()
	}
}

func ChangeBookingStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangeBookingStatusInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fieldErrors(err))
		}

		// Save input to context locals
		c.Locals("inputChangeStatus", input)

		return c.Next()
	}
}
