package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidstream/account-system/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware. An empty
// value means the middleware did not run on this route; reject rather than
// fall through to a service call with no identity.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
