package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetChatMessages(c *fiber.Ctx) error {
	messages, err := handler.chat.History()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch messages")
	}
	return c.JSON(messages)
}

func (handler *Handler) PostChatMessage(c *fiber.Ctx) error {
	input := chatMessageInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Content) == "" {
		return apiError(c, fiber.StatusBadRequest, "message content is required")
	}

	reply, err := handler.chat.Send(input.Content)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to send message")
	}
	return c.JSON(reply)
}
