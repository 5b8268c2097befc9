package utils

import (
	"time"

	"github.com/ar-erp/armazem-api/internal/types"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse reports a failure to the global error handler
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return &types.CustomError{Code: status, Message: message, Type: errorType}
}

// NotFoundResponse reports a 404 not found to the global error handler
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return &types.CustomError{Code: fiber.StatusNotFound, Message: message, Type: "notFound"}
}

// ErrorHandler renders every error escaping a handler as the standard
// error envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}
