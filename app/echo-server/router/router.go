package router

import (
	"github.com/labstack/echo/v4"

	"quiverArcade/internal/rest"
)

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
}

func SetupSessionRoutes(api *echo.Group, handler *rest.SessionHandler) {
	sessions := api.Group("/sessions")

	sessions.POST("", handler.CreateSession)
	sessions.GET("/:id", handler.GetSession)
	sessions.DELETE("/:id", handler.DeleteSession)
	sessions.POST("/:id/levels", handler.StartLevel)
	sessions.POST("/:id/tick", handler.Tick)
	sessions.POST("/:id/orders", handler.PlaceOrder)
	sessions.POST("/:id/quiver", handler.EnableQuiver)
	sessions.GET("/:id/quiver/:skuID", handler.QuiverMetrics)
	sessions.GET("/:id/scores", handler.GetScores)
	sessions.POST("/:id/scores/claim", handler.ClaimScore)
}

func SetupReplayRoutes(api *echo.Group, sessionHandler *rest.ReplayHandler) {
	api.POST("/replay", sessionHandler.IssueCode)
	api.GET("/replay/:code", sessionHandler.DecodeCode)
	api.POST("/sessions/replay", sessionHandler.CreateFromCode)
}
