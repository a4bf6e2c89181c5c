package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/waitinglist/internal/config"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/services"
	"github.com/localnerve/waitinglist/internal/types"
)

// ActorKey is the fiber local holding the name that changes are stamped with
const ActorKey = "actor"

// AuthAdmin validates that the request has admin role authorization
func AuthAdmin(cfg *config.Config, log logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, log, []string{"admin"}, "waitinglist.authorization.admin")
	}
}

// AuthUser validates that the request has user role authorization
func AuthUser(cfg *config.Config, log logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, log, []string{"user"}, "waitinglist.authorization.user")
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, cfg *config.Config, log logger.Logger, roles []string, errorType string) error {
	session := c.Cookies("cookie_session")
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Authorizer cookie \"cookie_session\" not found",
			Type:    errorType,
		}
	}

	if !services.IsAuthorizerInitialized() {
		if err := services.InitAuthorizer(cfg, log, c.Protocol(), c.Hostname()); err != nil {
			return &types.CustomError{
				Code:    fiber.StatusServiceUnavailable,
				Message: err.Error(),
				Type:    errorType,
			}
		}
	}

	user, err := services.ValidateSession(session, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	c.Locals("user", user)
	c.Locals(ActorKey, user.Actor())
	return c.Next()
}
