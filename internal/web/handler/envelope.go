package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/webfolio-cms/webfolio/internal/errs"
)

// Envelope is the uniform response wrapper of every content API endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK responds with a successful envelope carrying data.
func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

// Created responds with a successful envelope carrying data and status 201.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data})
}

// Deleted responds with a successful envelope carrying a message only.
func Deleted(c *fiber.Ctx, message string) error {
	return c.JSON(Envelope{Success: true, Message: message})
}

// Fail responds with a failed envelope and the given status code.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Success: false, Error: message})
}

// FailErr logs the underlying cause and responds with a failed envelope.
// Internal detail is never leaked to the response body.
func FailErr(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("request failed")

	return Fail(c, errs.StatusCode(err), errs.PublicMessage(err))
}
