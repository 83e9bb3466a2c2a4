package routes

import (
	"campushub/analytics"
	"campushub/auth"
	"campushub/events"
	"campushub/inbox"
	"campushub/livefeed"
	"campushub/middleware"
	"campushub/organizers"
	"campushub/proposals"
	"campushub/ratelim"
	"campushub/signups"
	"campushub/suggestions"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, api *auth.API, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/signup", rl.Limit(api.Signup))
	router.POST("/api/auth/login", rl.Limit(api.Login))
	router.GET("/api/auth/me", middleware.Authenticate(api.Me))
}

func AddEventRoutes(router *httprouter.Router, api *events.API) {
	router.GET("/api/events/events", api.GetEvents)
	router.GET("/api/events/events/count", api.GetEventsCount)
	router.GET("/api/events/events/mine", middleware.Authenticate(api.MyEvents))
	router.GET("/api/events/event/:slug", api.GetEvent)
	router.POST("/api/events/event", middleware.Authenticate(api.CreateEvent))
}

func AddSignupRoutes(router *httprouter.Router, api *signups.API, rl *ratelim.RateLimiter) {
	router.POST("/api/events/event/:slug/register", rl.Limit(api.Register))
	router.POST("/api/events/event/:slug/volunteer", rl.Limit(api.Volunteer))
	router.GET("/api/events/event/:slug/registrations", middleware.Authenticate(api.ListRegistrations))
	router.GET("/api/events/event/:slug/volunteers", middleware.Authenticate(api.ListVolunteers))
	router.GET("/api/events/event/:slug/pass", rl.Limit(api.DownloadPass))
}

func AddSuggestionRoutes(router *httprouter.Router, api *suggestions.API, rl *ratelim.RateLimiter) {
	router.POST("/api/events/event/:slug/suggestions", rl.Limit(middleware.OptionalAuth(api.AddSuggestion)))
	router.GET("/api/events/event/:slug/suggestions", middleware.Authenticate(api.ListSuggestions))
}

func AddOrganizerRoutes(router *httprouter.Router, api *organizers.API) {
	router.POST("/api/events/event/:slug/organizers", middleware.Authenticate(api.AddOrganizer))
	router.GET("/api/events/event/:slug/organizers", middleware.Authenticate(api.ListOrganizers))
}

func AddAnalyticsRoutes(router *httprouter.Router, api *analytics.API) {
	router.GET("/api/events/event/:slug/analytics", middleware.Authenticate(api.EventAnalytics))
}

func AddInboxRoutes(router *httprouter.Router, api *inbox.API, rl *ratelim.RateLimiter) {
	router.POST("/api/messages", rl.Limit(api.AddMessage))
	router.GET("/api/messages", middleware.Authenticate(api.ListMessages))
}

func AddProposalRoutes(router *httprouter.Router, api *proposals.API, rl *ratelim.RateLimiter) {
	router.POST("/api/proposals", rl.Limit(middleware.OptionalAuth(api.AddProposal)))
	router.GET("/api/proposals", middleware.Authenticate(api.ListProposals))
}

func AddLiveFeedRoutes(router *httprouter.Router, hub *livefeed.Hub) {
	router.GET("/ws/livefeed", livefeed.WebSocketHandler(hub))
}
