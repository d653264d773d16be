package middleware

import (
	"github.com/gin-gonic/gin"
)

// clientKey buckets public traffic per store and caller IP so one busy booking page does
// not drain another store's allowance. ClientIP honours X-Forwarded-For from trusted proxies.
func clientKey(c *gin.Context) string {
	ip := c.ClientIP()
	if storeID := c.Param("storeID"); storeID != "" {
		return storeID + "|" + ip
	}
	return ip
}
