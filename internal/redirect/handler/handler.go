package handler

import (
	"context"
	"net"
	"net/http"
	"strings"

	"dub-server/internal/apierrors"
	"dub-server/internal/observability"
	"dub-server/internal/redirect/processor"

	"github.com/gin-gonic/gin"
)

// NoTrackHeader disables click recording for a request
const NoTrackHeader = "dub-no-track"

// Redirector resolves a visit to its destination
type Redirector interface {
	Redirect(ctx context.Context, req processor.RedirectRequest) (processor.RedirectResult, error)
}

type Handler struct {
	redirector      Redirector
	rootRedirectURL string
	logger          *observability.Logger
}

func New(redirector Redirector, rootRedirectURL string, logger *observability.Logger) Handler {
	return Handler{
		redirector:      redirector,
		rootRedirectURL: rootRedirectURL,
		logger:          logger,
	}
}

// HandleRedirect serves GET /:key on a short domain. It is mounted as the router's
// fallback so that any path not claimed by the API is treated as a link key.
func (h *Handler) HandleRedirect(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusMethodNotAllowed)
		return
	}

	ctx := c.Request.Context()
	key := strings.TrimPrefix(c.Request.URL.Path, "/")

	if key == "" {
		h.handleRoot(c)
		return
	}

	result, err := h.redirector.Redirect(ctx, processor.RedirectRequest{
		Domain:    hostWithoutPort(c.Request.Host),
		Key:       key,
		Query:     c.Request.URL.Query(),
		IP:        observability.GetRealClientIP(c),
		UserAgent: observability.GetRealUserAgent(c),
		Referer:   c.GetHeader("Referer"),
		Viewer:    observability.GetViewerInfo(c),
		NoTrack:   c.GetHeader(NoTrackHeader) == "1",
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	writeRedirect(c, result.URL)
}

func (h *Handler) handleRoot(c *gin.Context) {
	if h.rootRedirectURL == "" {
		apierrors.RespondWithError(c, processor.ErrLinkNotFound)
		return
	}
	writeRedirect(c, h.rootRedirectURL)
}

func writeRedirect(c *gin.Context, location string) {
	c.Header("X-Powered-By", "Dub")
	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusFound, location)
}

func hostWithoutPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return strings.ToLower(h)
	}
	return strings.ToLower(host)
}
