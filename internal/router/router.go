package router

import (
	"net/http"

	"mondaymagic/backend/internal/auth"
	"mondaymagic/backend/internal/handler"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// New assembles the gin engine with all routes. Kept out of main so tests can
// serve the exact production routing.
func New() *gin.Engine {
	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
			authRoutes.GET("/me", auth.AuthMiddleware(), handler.GetMe)
		}

		// User search (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("", handler.SearchUsers)
		}

		// Playgroup routes (protected)
		playgroupRoutes := apiV1.Group("/playgroups")
		playgroupRoutes.Use(auth.AuthMiddleware())
		{
			playgroupRoutes.GET("", handler.GetMyPlaygroups)
			playgroupRoutes.POST("", handler.CreatePlaygroup)
			playgroupRoutes.GET("/:id", handler.GetPlaygroup)
			playgroupRoutes.GET("/:id/members", handler.GetPlaygroupMembers)
			playgroupRoutes.POST("/:id/members/:userId", handler.AddMember)
			playgroupRoutes.DELETE("/:id/members/:userId", handler.RemoveMember)
		}

		// Game routes
		gameRoutes := apiV1.Group("/games")
		{
			// Stats for an arbitrary user are readable without a token and
			// without any membership check.
			gameRoutes.GET("/stats/:userId", auth.OptionalAuthMiddleware(), handler.GetPlayerStats)

			protected := gameRoutes.Group("")
			protected.Use(auth.AuthMiddleware())
			{
				protected.GET("/stats", handler.GetMyStats) // Must be before /:id
				protected.GET("/playgroup/:playgroupId", handler.GetPlaygroupGames)
				protected.GET("/:id", handler.GetGame)
				protected.POST("", handler.CreateGame)
				protected.PUT("/:id/complete", handler.CompleteGame)
			}
		}

		// Commander catalog (protected)
		commanderRoutes := apiV1.Group("/commanders")
		commanderRoutes.Use(auth.AuthMiddleware())
		{
			commanderRoutes.GET("", handler.GetCommanders)
		}
	}

	return router
}
