package utils

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"restaurant_manager/apperr"
	"restaurant_manager/constants"
)

func SuccessResponse(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"data":    data,
		"message": message,
		"status":  true,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, fields []string) error {
	body := fiber.Map{
		"message": message,
		"status":  false,
	}
	if len(fields) > 0 {
		body["errors"] = fields
	}
	return c.Status(status).JSON(body)
}

// AppErrorResponse maps a helper error onto the envelope. Internal causes are
// never echoed to the client.
func AppErrorResponse(c *fiber.Ctx, err error) error {
	appErr := apperr.From(err)
	message := appErr.Message
	if appErr.Kind == apperr.KindInternal {
		message = constants.ERROR_INTERNAL_ERROR
	}
	return ErrorResponse(c, appErr.Status(), message, appErr.Fields)
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}

func Ptr[T any](v T) *T {
	return &v
}
