package handlers

import "github.com/gofiber/fiber/v2"

// apiResponse is the envelope every endpoint speaks, except login which
// returns the token payload bare.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(apiResponse{Success: true, Message: message})
}

func respondData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(apiResponse{Success: true, Data: data})
}

func respondMessageData(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(apiResponse{Success: true, Message: message, Data: data})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(apiResponse{Success: false, Message: message})
}

// callerIdentity reads the identity attached by middleware.Authenticate.
// ok is false for anonymous requests.
func callerIdentity(c *fiber.Ctx) (id int64, role string, ok bool) {
	id, idOK := c.Locals("caller_id").(int64)
	role, roleOK := c.Locals("role").(string)
	if !idOK || !roleOK {
		return 0, "", false
	}
	return id, role, true
}
