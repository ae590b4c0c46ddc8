package routes

import (
	"voyago/middleware"
	"voyago/ratelim"
	"voyago/trips"

	"github.com/julienschmidt/httprouter"
)

func AddTripRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/trips/generate", rateLimiter.Limit(trips.GenerateTrip))
	router.POST("/api/trips", rateLimiter.Limit(middleware.Authenticate(trips.SaveTrip)))
	router.GET("/api/trips", middleware.Authenticate(trips.GetUserTrips))
	router.DELETE("/api/trips/:tripid", middleware.Authenticate(trips.DeleteTrip))

	router.POST("/api/trips/export/ics", rateLimiter.Limit(trips.ExportICS))
	router.POST("/api/trips/export/pdf", rateLimiter.Limit(trips.ExportPDF))

	router.POST("/api/trips/activity/alternatives", rateLimiter.Limit(trips.SuggestAlternatives))
	router.POST("/api/trips/activity/replace", rateLimiter.Limit(trips.ReplaceActivity))
}

func AddCatalogRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/catalog/categories", trips.GetCategories)
}
