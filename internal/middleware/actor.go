package middleware

import (
	"funeraria-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const actorLocal = "actor"

// Actor identifies the branch employee a gateway already authenticated.
type Actor struct {
	UserID   uuid.UUID
	BranchID uuid.UUID
}

// RequireActor rejects requests missing the X-User-Id / X-Branch-Id identity
// headers and stashes the parsed Actor in Locals for handlers downstream.
func RequireActor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Get("X-User-Id"))
		if err != nil {
			return response.Unauthorized(c, "Missing identity headers")
		}
		branchID, err := uuid.Parse(c.Get("X-Branch-Id"))
		if err != nil {
			return response.Unauthorized(c, "Missing identity headers")
		}
		c.Locals(actorLocal, Actor{UserID: userID, BranchID: branchID})
		return c.Next()
	}
}

// GetActor returns the Actor stored by RequireActor.
func GetActor(c *fiber.Ctx) (Actor, bool) {
	a, ok := c.Locals(actorLocal).(Actor)
	return a, ok
}
