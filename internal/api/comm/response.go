package comm

import (
	"fmt"
	"net/url"
	"strconv"

	errprocess "workzup_backend/pkg/err"
	"workzup_backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Envelope every endpoint answers with this shape
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Respond 200 with payload
func Respond(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

// RespondMessage 200 with a human message only
func RespondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(Envelope{Success: true, Message: message})
}

// Fail map the error kind onto a status code and render the envelope
func Fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errprocess.IsValidation(err):
		status = fiber.StatusBadRequest
	case errprocess.IsForbidden(err):
		status = fiber.StatusForbidden
	case errprocess.IsNotFound(err):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(Envelope{Success: false, Error: err.Error()})
}

// FailBadRequest 400 with a plain message
func FailBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Envelope{Success: false, Error: message})
}

// ConnectCheck check api connect start
// @Summary Check service status
// @Description Returns a simple confirmation message
// @Tags Shared
// @Success 200 {string} string "workzup service start!"
// @Router /health [get]
func ConnectCheck(c *fiber.Ctx) error {
	return c.SendString("workzup service start!")
}

// DebugLogFlag toggle debug log flag
// @Summary Toggle Debug Log Flag
// @Description Enable or disable debug logging
// @Tags Shared
// @Param service query string true "Service name"
// @Param status query bool true "Debug status"
// @Success 200 {string} string "Service debug mode updated"
// @Failure 400 {string} string "Invalid status value"
// @Router /debug [post]
func DebugLogFlag(c *fiber.Ctx) error {
	query, _ := url.ParseQuery(string(c.Context().QueryArgs().QueryString()))
	service := query.Get("service")
	statusStr := query.Get("status")
	logger.Log.Info("debug", zap.String("status", statusStr))
	status, err := strconv.ParseBool(statusStr)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	switch service {
	default:
		logger.Log.SetDebugMode(status)
	}
	return c.SendString(fmt.Sprintf("service[%s]: debug mode is : %t", service, status))
}
