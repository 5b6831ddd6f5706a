package utils

import "github.com/gofiber/fiber/v2"

// Outcome is the terminal result of a guard or handler. Every response in the
// API goes through one: a status code, an ok flag, a human-readable message
// and an optional payload.
type Outcome struct {
	StatusCode int
	Ok         bool
	Message    string
	Data       interface{}
}

// Send writes the outcome as the uniform response envelope.
func (o *Outcome) Send(c *fiber.Ctx) error {
	return JsonResponse(c, o.StatusCode, o.Ok, o.Message, o.Data)
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

func Success(message string, data interface{}) *Outcome {
	return &Outcome{StatusCode: fiber.StatusOK, Ok: true, Message: message, Data: data}
}

func BadRequest(message string) *Outcome {
	return &Outcome{StatusCode: fiber.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Outcome {
	return &Outcome{StatusCode: fiber.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Outcome {
	return &Outcome{StatusCode: fiber.StatusForbidden, Message: message}
}

func Conflict(message string) *Outcome {
	return &Outcome{StatusCode: fiber.StatusConflict, Message: message}
}

func PaymentFailed(message string) *Outcome {
	return &Outcome{StatusCode: fiber.StatusPaymentRequired, Message: message}
}

func TooManyRequests() *Outcome {
	return &Outcome{StatusCode: fiber.StatusTooManyRequests, Message: "Too many requests!"}
}

func ServerError(message string) *Outcome {
	return &Outcome{StatusCode: fiber.StatusInternalServerError, Message: message}
}
