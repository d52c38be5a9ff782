// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelgenie/internal/http/handlers"
	"travelgenie/internal/http/middleware"
	"travelgenie/internal/modules/account"
	"travelgenie/internal/modules/chat"
	"travelgenie/internal/modules/geo"
	"travelgenie/internal/modules/trip"
)

type RouterDeps struct {
	Trips           *trip.Service
	TripStore       *trip.Store
	Chat            *chat.Service
	Accounts        *account.Service
	Geo             *geo.Cache
	GenerateTimeout time.Duration
	ChatTimeout     time.Duration
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	accountHandler := handlers.NewAccountHandler(deps.Accounts)
	r.POST("/api/auth/register", accountHandler.Register)
	r.POST("/api/auth/login", accountHandler.Login)
	r.POST("/api/auth/logout", accountHandler.Logout)
	r.GET("/api/profile", accountHandler.Profile)
	r.GET("/api/settings/language", accountHandler.GetLanguage)
	r.PUT("/api/settings/language", accountHandler.SetLanguage)

	tripHandler := handlers.NewTripHandler(deps.Trips, deps.TripStore, deps.Accounts, deps.GenerateTimeout)
	r.POST("/api/trips/generate", tripHandler.Generate)
	r.GET("/api/trips", tripHandler.List)
	r.GET("/api/trips/current", tripHandler.Current)
	r.POST("/api/trips/:id/select", tripHandler.Select)
	r.DELETE("/api/trips/:id", tripHandler.Delete)
	r.POST("/api/trips/items", tripHandler.AddItem)
	r.POST("/api/trips/items/:id/toggle", tripHandler.ToggleItem)
	r.DELETE("/api/trips/items/:id", tripHandler.RemoveItem)

	chatHandler := handlers.NewChatHandler(deps.Chat, deps.ChatTimeout)
	r.POST("/api/chat", chatHandler.Send)
	r.GET("/api/chat/history", chatHandler.History)

	geoHandler := handlers.NewGeoHandler(deps.Geo)
	r.GET("/api/countries", geoHandler.Countries)
	r.GET("/api/countries/:code/cities", geoHandler.Cities)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
