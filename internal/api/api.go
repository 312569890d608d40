package api

import (
	"net/http"

	commissionHandler "dub-server/internal/commissions/handler"
	conversionHandler "dub-server/internal/conversions/handler"
	fraudHandler "dub-server/internal/fraud/handler"
	stripeHandler "dub-server/internal/integrations/stripe/handler"
	linkHandler "dub-server/internal/links/handler"
	"dub-server/internal/observability"
	payoutHandler "dub-server/internal/payouts/handler"
	"dub-server/internal/ratelimit"
	redirectHandler "dub-server/internal/redirect/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router            *gin.Engine
	redirectHandler   redirectHandler.Handler
	linkHandler       linkHandler.Handler
	conversionHandler conversionHandler.Handler
	commissionHandler commissionHandler.Handler
	payoutHandler     payoutHandler.Handler
	fraudHandler      fraudHandler.Handler
	stripeHandler     stripeHandler.Handler
	rateLimiter       *ratelimit.Service
}

func New(
	router *gin.Engine,
	redirectHandler redirectHandler.Handler,
	linkHandler linkHandler.Handler,
	conversionHandler conversionHandler.Handler,
	commissionHandler commissionHandler.Handler,
	payoutHandler payoutHandler.Handler,
	fraudHandler fraudHandler.Handler,
	stripeHandler stripeHandler.Handler,
	rateLimiter *ratelimit.Service,
) API {
	return API{
		router:            router,
		redirectHandler:   redirectHandler,
		linkHandler:       linkHandler,
		conversionHandler: conversionHandler,
		commissionHandler: commissionHandler,
		payoutHandler:     payoutHandler,
		fraudHandler:      fraudHandler,
		stripeHandler:     stripeHandler,
		rateLimiter:       rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(observability.MetricsHandler()))

	apiGroup := a.router.Group("/api")
	{
		linksGroup := apiGroup.Group("/links")
		linksGroup.POST("", a.linkHandler.HandleCreateLink)
		linksGroup.GET("/:id", a.linkHandler.HandleGetLink)
		linksGroup.PATCH("/:id", a.linkHandler.HandleUpdateLink)
		linksGroup.DELETE("/:id", a.linkHandler.HandleDeleteLink)
		linksGroup.GET("/:id/stats", a.linkHandler.HandleGetLinkStats)
	}
	{
		trackGroup := apiGroup.Group("/track", a.rateLimiter.Middleware("track"))
		trackGroup.POST("/lead", a.conversionHandler.HandleTrackLead)
		trackGroup.POST("/sale", a.conversionHandler.HandleTrackSale)
	}
	{
		programGroup := apiGroup.Group("/programs/:program_id")
		programGroup.GET("/commissions", a.commissionHandler.HandleListCommissions)
		programGroup.GET("/payouts", a.payoutHandler.HandleListPayouts)
		programGroup.POST("/payouts/aggregate", a.payoutHandler.HandleAggregatePayouts)
		programGroup.POST("/payouts/send", a.payoutHandler.HandleSendPayouts)
		programGroup.POST("/partners/:partner_id/ban", a.fraudHandler.HandleBanPartner)
		programGroup.POST("/partners/:partner_id/unban", a.fraudHandler.HandleUnbanPartner)
		programGroup.GET("/fraud-events", a.fraudHandler.HandleListFraudEvents)
	}
	apiGroup.POST("/fraud-events/:id/resolve", a.fraudHandler.HandleResolveFraudEvent)
	apiGroup.POST("/stripe/webhook", a.stripeHandler.HandleWebhook)

	// Everything else is a short link
	a.router.NoRoute(a.redirectHandler.HandleRedirect)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
