package handler

import "github.com/labstack/echo/v4"

// ctxUserID returns the account id injected by the Session middleware, or ""
// when the request carried no session.
func ctxUserID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}

// ownerOrSession prefers the verified session's account over a client-supplied id.
func ownerOrSession(c echo.Context, supplied string) string {
	if id := ctxUserID(c); id != "" {
		return id
	}
	return supplied
}
