package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SetAuthCookies stores both tokens as HttpOnly cookies so the browser flow
// works without the frontend touching the token values. API clients can keep
// using the Authorization header instead.
func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	setAuthCookie(c, "accessToken", accessToken, AccessTokenExpiry)
	setAuthCookie(c, "refreshToken", refreshToken, RefreshTokenExpiry)
}

// ClearAuthCookies expires both auth cookies on logout.
func ClearAuthCookies(c *gin.Context) {
	setAuthCookie(c, "accessToken", "", -time.Second)
	setAuthCookie(c, "refreshToken", "", -time.Second)
}

func setAuthCookie(c *gin.Context, name, value string, expiry time.Duration) {
	// Secure is dropped in debug mode so local dev over plain http works.
	secure := gin.Mode() != gin.DebugMode
	c.SetCookie(name, value, int(expiry.Seconds()), "/", "", secure, true)
}
