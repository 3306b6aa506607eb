// FILE: internal/controller/auth_controller.go
package controller

import (
	"campus-chatbot-be/internal/dto"
	"campus-chatbot-be/internal/pkg/serverutils"
	"campus-chatbot-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type authController struct {
	service  service.IAuthService
	validate *validator.Validate
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", serverutils.JwtMiddleware, c.Logout)
	h.Get("/status", serverutils.OptionalJwtMiddleware, c.Status)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
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

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Login successful",
		"data":    res,
	})
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	sessionKey := serverutils.LocalString(ctx, "email")
	if err := c.service.Logout(ctx.Context(), sessionKey); err != nil {
		// Logout never fails from the client's point of view.
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Logged out successfully",
		"data":    nil,
	})
}

// Status reports the caller's resolved identity; unauthenticated callers
// get a guest view rather than an error.
func (c *authController) Status(ctx *fiber.Ctx) error {
	role := serverutils.LocalString(ctx, "role")
	res := dto.StatusResponse{
		LoggedIn:   role != "" && role != "guest",
		Role:       role,
		Department: serverutils.LocalString(ctx, "department"),
		FullName:   serverutils.LocalString(ctx, "full_name"),
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Status retrieved",
		"data":    res,
	})
}
