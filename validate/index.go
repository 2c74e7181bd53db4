package validate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-multierror"

	"restaurant_manager/constants"
	"restaurant_manager/utils"
)

var validate = validator.New()

// errorList flattens aggregated field errors for the response envelope.
func errorList(errs *multierror.Error) []string {
	if errs == nil {
		return nil
	}
	out := make([]string, 0, len(errs.Errors))
	for _, e := range errs.Errors {
		out = append(out, e.Error())
	}
	return out
}

// fieldErrors renders validator tag failures one message per field.
func fieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("Field '%s' failed on the '%s' rule.", fe.Field(), fe.Tag()))
	}
	return out
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
		}

		// Save input to context locals
		c.Locals("inputId", valueKey)

		// Continue to next handler
		return c.Next()
	}
}
