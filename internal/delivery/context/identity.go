package context

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for the authenticated user id in echo.Context.
	KeyUserID ContextKey = "user_id"

	// KeyUserEmail is the key for the authenticated user's email in echo.Context.
	KeyUserEmail ContextKey = "user_email"

	// KeyRoles is the key for the authenticated user's roles in echo.Context.
	KeyRoles ContextKey = "roles"
)

// SetIdentity stores the caller identity extracted from an access token.
func SetIdentity(c echo.Context, userID uuid.UUID, email string, roles entity.Roles) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyUserEmail), email)
	c.Set(string(KeyRoles), roles)
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyUserID)).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

// GetUserEmail returns the authenticated user's email, or "" when the token carried none.
func GetUserEmail(c echo.Context) string {
	email, _ := c.Get(string(KeyUserEmail)).(string)

	return email
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(string(KeyRoles)).(entity.Roles)

	return roles, ok
}
