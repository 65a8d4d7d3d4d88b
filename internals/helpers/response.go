package helper

import (
	"log"
	"reflect"

	"github.com/gofiber/fiber/v2"

	"schooloffice_backend/internals/helpers/apperr"
)

// envelope is the body of every JSON answer.
type envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	ErrorCode  string              `json:"error_code,omitempty"`
	Data       any                 `json:"data,omitempty"`
	Pagination *Pagination         `json:"pagination,omitempty"`
	Includes   any                 `json:"includes,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Input      any                 `json:"input,omitempty"`
}

func ok(c *fiber.Ctx, status int, message, fallback string, data any) error {
	if message == "" {
		message = fallback
	}
	return c.Status(status).JSON(envelope{Success: true, Message: message, Data: data})
}

func JsonOK(c *fiber.Ctx, message string, data any) error {
	return ok(c, fiber.StatusOK, message, "ok", data)
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return ok(c, fiber.StatusCreated, message, "created", data)
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return ok(c, fiber.StatusOK, message, "updated", data)
}

func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return ok(c, fiber.StatusOK, message, "deleted", data)
}

// JsonList answers one page of items. Count is filled from data.
func JsonList(c *fiber.Ctx, message string, data any, p Pagination) error {
	return JsonListEx(c, message, data, p, nil)
}

// JsonListEx is JsonList plus side data such as filter options.
func JsonListEx(c *fiber.Ctx, message string, data any, p Pagination, includes any) error {
	if message == "" {
		message = "ok"
	}
	if p.Count == 0 {
		p.Count = lenOf(data)
	}
	return c.Status(fiber.StatusOK).JSON(envelope{
		Success: true, Message: message, Data: data, Pagination: &p, Includes: includes,
	})
}

func lenOf(v any) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	}
	return 0
}

// JsonError answers a plain error; status 0 means 500.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(envelope{Message: message, ErrorCode: errorCode(status)})
}

func errorCode(status int) string {
	if status == fiber.StatusBadRequest {
		return "BAD_REQUEST"
	}
	for k := apperr.KindValidation; k <= apperr.KindUnauthorized; k++ {
		if k.Status() == status {
			return k.String()
		}
	}
	if status >= 500 {
		return apperr.KindInternal.String()
	}
	return "ERROR"
}

// JsonValidationError answers 422 with per-field messages.
func JsonValidationError(c *fiber.Ctx, fields map[string][]string) error {
	return JsonValidationErrorWithInput(c, fields, nil)
}

// JsonValidationErrorWithInput also echoes the submitted input so forms can be refilled.
func JsonValidationErrorWithInput(c *fiber.Ctx, fields map[string][]string, input any) error {
	if fields == nil {
		fields = map[string][]string{}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(envelope{
		Message:   "validation failed",
		ErrorCode: apperr.KindValidation.String(),
		Errors:    fields,
		Input:     input,
	})
}

// JsonAppError renders any service, gorm or fiber error through its apperr kind.
// Internal errors are logged with the request line; their cause never reaches the client.
func JsonAppError(c *fiber.Ctx, err error) error {
	ae := apperr.From(err)
	if ae == nil {
		return nil
	}
	if ae.Kind == apperr.KindInternal {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(ae.Kind.Status()).JSON(envelope{
		Message:   ae.Message,
		ErrorCode: ae.Kind.String(),
		Errors:    ae.Fields,
	})
}
