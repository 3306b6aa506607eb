// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware rejects requests without a valid bearer token.
func JwtMiddleware(ctx *fiber.Ctx) error {
	claims, ok := parseBearer(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}
	setIdentityLocals(ctx, claims)
	return ctx.Next()
}

// OptionalJwtMiddleware lets unauthenticated requests through as guests.
// A malformed or expired token is treated the same as no token at all.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	claims, ok := parseBearer(ctx)
	if !ok {
		ctx.Locals("role", "guest")
		return ctx.Next()
	}
	setIdentityLocals(ctx, claims)
	return ctx.Next()
}

func parseBearer(ctx *fiber.Ctx) (jwt.MapClaims, bool) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return nil, false
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

func setIdentityLocals(ctx *fiber.Ctx, claims jwt.MapClaims) {
	ctx.Locals("email", claimString(claims, "sub"))
	ctx.Locals("full_name", claimString(claims, "full_name"))
	ctx.Locals("department", claimString(claims, "department"))

	role := claimString(claims, "role")
	if role == "" {
		role = "guest"
	}
	ctx.Locals("role", role)
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// LocalString reads a string local set by the middleware, empty when unset.
func LocalString(ctx *fiber.Ctx, key string) string {
	if v, ok := ctx.Locals(key).(string); ok {
		return v
	}
	return ""
}
