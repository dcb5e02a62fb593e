package context

import "github.com/labstack/echo/v4"

// KeySessionID is the echo.Context key holding the authenticated flow session id.
const KeySessionID ContextKey = "session_id"

// SetSessionID stores the flow session id resolved from the session token.
func SetSessionID(c echo.Context, sessionID string) {
	c.Set(string(KeySessionID), sessionID)
}

// GetSessionID returns the flow session id, or an empty string for anonymous requests.
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(string(KeySessionID)).(string); ok {
		return id
	}

	return ""
}
