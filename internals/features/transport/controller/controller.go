// file: internals/features/transport/controller/controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "schooltrans_backend/internals/helpers"
	authMw "schooltrans_backend/internals/middlewares/auth"
)

// parseUUIDParam reads a :param as UUID; on failure it writes the 400 response
// and returns handled=true.
func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, true, helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, false, nil
}

// isUniqueViolation recognizes duplicate-key errors from postgres (23505) and
// sqlite so races past the pre-check still come back as 409 instead of 500.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// actorID reads the authenticated user id from locals, nil when absent or
// malformed (seed scripts and tests may call without auth context).
func actorID(c *fiber.Ctx) *uuid.UUID {
	raw, _ := c.Locals(authMw.LocalUserID).(string)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// boolQuery parses ?name=true|false; nil when missing or unrecognized.
func boolQuery(c *fiber.Ctx, name string) *bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(name))) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}
