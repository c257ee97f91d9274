package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the flat error shape returned on every failure. Callers
// distinguish failures by HTTP status only; there is no error code field.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendJSON sends a success payload with the provided HTTP status code.
func SendJSON(c *fiber.Ctx, status int, payload interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(payload)
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}
