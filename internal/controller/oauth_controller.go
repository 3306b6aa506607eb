// FILE: internal/controller/oauth_controller.go
package controller

import (
	"campus-chatbot-be/internal/dto"
	"campus-chatbot-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IOAuthController interface {
	RegisterRoutes(r fiber.Router)
	GetLoginURL(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type oauthController struct {
	service  service.IOAuthService
	validate *validator.Validate
}

func NewOAuthController(service service.IOAuthService) IOAuthController {
	return &oauthController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *oauthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/oauth")
	h.Get("/:provider/url", c.GetLoginURL)
	h.Post("/:provider/callback", c.Callback)
}

func (c *oauthController) GetLoginURL(ctx *fiber.Ctx) error {
	url, err := c.service.GetLoginURL(ctx.Params("provider"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Login URL generated",
		"data":    fiber.Map{"url": url},
	})
}

func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	var req dto.GoogleCallbackRequest
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

	res, err := c.service.HandleCallback(ctx.Context(), ctx.Params("provider"), req.Code)
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
		"message": "Signed in with Google",
		"data":    res,
	})
}
