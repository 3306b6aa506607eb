// FILE: internal/controller/chat_controller.go
package controller

import (
	"campus-chatbot-be/internal/constant"
	"campus-chatbot-be/internal/dto"
	"campus-chatbot-be/internal/entity"
	"campus-chatbot-be/internal/pkg/serverutils"
	"campus-chatbot-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	service  service.IChatService
	validate *validator.Validate
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat", serverutils.OptionalJwtMiddleware)
	h.Post("/", c.Chat)
	h.Post("/clear", c.Clear)
	h.Get("/history", c.History)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	caller := c.resolveCaller(ctx, req.SessionKey)
	answer := c.service.Chat(ctx.Context(), caller, req.Message)

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Chat completed",
		"data": dto.ChatResponse{
			Response:   answer,
			SessionKey: caller.SessionKey,
		},
	})
}

func (c *chatController) Clear(ctx *fiber.Ctx) error {
	var req dto.ClearConversationRequest
	// A missing body just means "clear my own session".
	_ = ctx.BodyParser(&req)

	caller := c.resolveCaller(ctx, req.SessionKey)
	c.service.ClearConversation(caller.SessionKey)

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": constant.MsgConversationCleared,
		"data":    nil,
	})
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	caller := c.resolveCaller(ctx, ctx.Query("session_key"))
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "History retrieved",
		"data": dto.HistoryResponse{
			History: c.service.History(caller.SessionKey),
		},
	})
}

// resolveCaller builds the caller identity from the token locals. The
// session key prefers the client-supplied value, falls back to the email
// claim, and mints a random key for fully anonymous guests so the
// response can hand it back for reuse.
func (c *chatController) resolveCaller(ctx *fiber.Ctx, requestKey string) service.Caller {
	sessionKey := requestKey
	if sessionKey == "" {
		sessionKey = serverutils.LocalString(ctx, "email")
	}
	if sessionKey == "" {
		sessionKey = uuid.NewString()
	}

	role := entity.UserRole(serverutils.LocalString(ctx, "role"))
	if role != entity.UserRoleStudent && role != entity.UserRoleTeacher {
		role = entity.UserRoleGuest
	}

	var department entity.Department
	if role != entity.UserRoleGuest {
		department, _ = entity.ParseDepartment(serverutils.LocalString(ctx, "department"))
	}

	return service.Caller{
		SessionKey: sessionKey,
		FullName:   serverutils.LocalString(ctx, "full_name"),
		Role:       role,
		Department: department,
	}
}
