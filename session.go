package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getOrCreateDevice retrieves the device ID from the cookie or mints a new
// one. The cookie is long-lived: it is what scopes all persisted progress
// and stats to one device.
func (app *App) getOrCreateDevice(c *gin.Context) string {
	deviceID, err := c.Cookie(DeviceCookieName)
	if err != nil || len(deviceID) < 10 {
		deviceID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.IsProduction
		c.SetCookie(DeviceCookieName, deviceID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("Created new device ID: %s", deviceID)
	}
	return deviceID
}
