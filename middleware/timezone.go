// File: middleware/timezone.go
package middleware

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ipLookup is the slice of the ipapi.co response we care about.
type ipLookup struct {
	IP       string `json:"ip"`
	Timezone string `json:"timezone"`
}

// tzCache caches timezone lookups keyed by IP address.
var tzCache = make(map[string]string)
var tzCacheMutex sync.RWMutex

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	if parsedIP.IsLoopback() {
		return true
	}
	privateIPBlocks := []*net.IPNet{
		{IP: net.IPv4(10, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
		{IP: net.IPv4(172, 16, 0, 0), Mask: net.CIDRMask(12, 32)},
		{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)},
	}
	for _, block := range privateIPBlocks {
		if block.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// lookupTimezone resolves an IP's timezone via ipapi.co and caches the
// result. Private IPs and lookup failures resolve to "" (meaning unknown);
// failures are cached too, so a broken upstream is hit once per IP.
func lookupTimezone(ip string, logger *zap.Logger) string {
	tzCacheMutex.RLock()
	if tz, exists := tzCache[ip]; exists {
		tzCacheMutex.RUnlock()
		return tz
	}
	tzCacheMutex.RUnlock()

	resolved := ""
	if !isPrivateIP(ip) {
		url := fmt.Sprintf("https://ipapi.co/%s/json/", ip)
		client := http.Client{Timeout: 5 * time.Second}
		resp, err := client.Get(url)
		if err != nil {
			logger.Error("Failed to query IP timezone API", zap.String("ip", ip), zap.Error(err))
		} else {
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				var lookup ipLookup
				if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
					logger.Error("Failed to decode IP timezone response", zap.String("ip", ip), zap.Error(err))
				} else if _, err := time.LoadLocation(lookup.Timezone); err == nil {
					resolved = lookup.Timezone
				}
			} else {
				logger.Error("IP timezone API returned non-OK status", zap.String("ip", ip), zap.Int("status", resp.StatusCode))
			}
		}
	}

	tzCacheMutex.Lock()
	tzCache[ip] = resolved
	tzCacheMutex.Unlock()
	return resolved
}

// TimezoneMiddleware resolves the client's likely timezone from its IP and
// sets it in the context under "clientTimezone". Handlers use it as a
// fallback when a request carries no explicit timezone. Resolution failures
// leave the key unset; nothing is ever blocked on it.
func TimezoneMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()

		clientIP := getClientIP(c)
		if clientIP == "" {
			c.Next()
			return
		}

		if tz := lookupTimezone(clientIP, logger); tz != "" {
			c.Set("clientTimezone", tz)
		}
		c.Next()
	}
}
