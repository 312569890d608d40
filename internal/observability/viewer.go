package observability

import (
	"net"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealClientIP extracts the real client IP from CloudFront headers.
// CloudFront-Viewer-Address contains the client IP in "IP:port" format.
// Falls back to c.ClientIP() if the header is not present.
func GetRealClientIP(c *gin.Context) string {
	if viewerAddr := c.GetHeader("CloudFront-Viewer-Address"); viewerAddr != "" {
		if host, _, err := net.SplitHostPort(viewerAddr); err == nil {
			return host
		}
		if colonIdx := strings.LastIndex(viewerAddr, ":"); colonIdx > 0 {
			return viewerAddr[:colonIdx]
		}
		return viewerAddr
	}
	return c.ClientIP()
}

// GetRealUserAgent extracts the user agent.
func GetRealUserAgent(c *gin.Context) string {
	return c.Request.UserAgent()
}

// ViewerInfo contains the geo and device attributes recorded with a click.
type ViewerInfo struct {
	Country    string
	Region     string
	City       string
	Continent  string
	Latitude   *float64
	Longitude  *float64
	DeviceType string // desktop, mobile, tablet, smarttv, unknown
	DeviceOS   string // android, ios, windows, mac, linux, other
	Browser    string
}

// GetViewerInfo extracts CloudFront viewer headers and user agent attributes from the request.
func GetViewerInfo(c *gin.Context) ViewerInfo {
	info := ViewerInfo{
		Country:    c.GetHeader("CloudFront-Viewer-Country"),
		Region:     c.GetHeader("CloudFront-Viewer-Country-Region"),
		City:       c.GetHeader("CloudFront-Viewer-City"),
		Continent:  continentForCountry(c.GetHeader("CloudFront-Viewer-Country")),
		DeviceType: GetDeviceType(c),
		DeviceOS:   GetDeviceOS(c),
		Browser:    GetBrowser(c.Request.UserAgent()),
	}

	if lat := c.GetHeader("CloudFront-Viewer-Latitude"); lat != "" {
		if parsed, err := strconv.ParseFloat(lat, 64); err == nil {
			info.Latitude = &parsed
		}
	}
	if lon := c.GetHeader("CloudFront-Viewer-Longitude"); lon != "" {
		if parsed, err := strconv.ParseFloat(lon, 64); err == nil {
			info.Longitude = &parsed
		}
	}
	if info.Country == "" {
		info.Country = "Unknown"
	}
	return info
}

// GetDeviceType determines the device type from CloudFront headers and User-Agent parsing.
// Returns "desktop", "mobile", "tablet", "smarttv", or "unknown".
func GetDeviceType(c *gin.Context) string {
	if c.GetHeader("CloudFront-Is-Mobile-Viewer") == "true" {
		return "mobile"
	}
	if c.GetHeader("CloudFront-Is-Tablet-Viewer") == "true" {
		return "tablet"
	}
	if c.GetHeader("CloudFront-Is-SmartTV-Viewer") == "true" {
		return "smarttv"
	}

	ua := strings.ToLower(c.Request.UserAgent())

	// Tablets first, since tablet user agents often contain "mobile"
	if strings.Contains(ua, "ipad") ||
		(strings.Contains(ua, "android") && !strings.Contains(ua, "mobile")) ||
		strings.Contains(ua, "tablet") {
		return "tablet"
	}

	for _, tv := range []string{"smart-tv", "smarttv", "googletv", "appletv", "roku", "webos", "tizen"} {
		if strings.Contains(ua, tv) {
			return "smarttv"
		}
	}

	if strings.Contains(ua, "mobile") ||
		strings.Contains(ua, "iphone") ||
		strings.Contains(ua, "ipod") {
		return "mobile"
	}

	if ua != "" {
		return "desktop"
	}
	return "unknown"
}

// GetDeviceOS determines the device OS from User-Agent parsing.
func GetDeviceOS(c *gin.Context) string {
	ua := strings.ToLower(c.Request.UserAgent())

	switch {
	case strings.Contains(ua, "android"):
		return "android"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ipod"):
		return "ios"
	case strings.Contains(ua, "windows"):
		return "windows"
	case strings.Contains(ua, "mac os x"), strings.Contains(ua, "macintosh"):
		return "mac"
	case strings.Contains(ua, "linux"):
		return "linux"
	}
	return "other"
}

// GetBrowser returns a coarse browser family for a user agent.
func GetBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)

	// Order matters: Edge and Opera also advertise Chrome, Chrome advertises Safari.
	switch {
	case ua == "":
		return "Unknown"
	case strings.Contains(ua, "edg/"):
		return "Edge"
	case strings.Contains(ua, "opr/"), strings.Contains(ua, "opera"):
		return "Opera"
	case strings.Contains(ua, "firefox/"):
		return "Firefox"
	case strings.Contains(ua, "chrome/"), strings.Contains(ua, "crios/"):
		return "Chrome"
	case strings.Contains(ua, "safari/"):
		return "Safari"
	}
	return "Other"
}

var botMarkers = []string{
	"bot", "crawler", "spider", "crawling", "slurp", "facebookexternalhit",
	"whatsapp", "telegram", "preview", "headless", "curl/", "wget/",
	"python-requests", "go-http-client", "okhttp", "axios/", "vercel-screenshot",
	"lighthouse", "pingdom", "uptimerobot", "monitor",
}

// IsBot reports whether the user agent belongs to a crawler, link unfurler or script.
// An empty user agent is treated as a bot.
func IsBot(userAgent string) bool {
	ua := strings.ToLower(strings.TrimSpace(userAgent))
	if ua == "" {
		return true
	}
	for _, marker := range botMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}

var continents = map[string]string{
	"US": "NA", "CA": "NA", "MX": "NA",
	"BR": "SA", "AR": "SA", "CL": "SA", "CO": "SA",
	"GB": "EU", "DE": "EU", "FR": "EU", "ES": "EU", "IT": "EU", "NL": "EU", "SE": "EU", "PL": "EU", "IE": "EU",
	"IN": "AS", "JP": "AS", "CN": "AS", "SG": "AS", "KR": "AS", "ID": "AS",
	"AU": "OC", "NZ": "OC",
	"ZA": "AF", "NG": "AF", "EG": "AF", "KE": "AF",
}

func continentForCountry(code string) string {
	if c, ok := continents[strings.ToUpper(code)]; ok {
		return c
	}
	return "Unknown"
}
