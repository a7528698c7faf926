package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"questhub.backend/internal/interfaces/http/handlers"
	"questhub.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	questHandler    *handlers.QuestHandler
	rouletteHandler *handlers.RouletteHandler
	walletHandler   *handlers.WalletHandler
	adminHandler    *handlers.AdminHandler
	authMiddleware  gin.HandlerFunc
	adminMiddleware gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Dashboard and quests (protected)
		api.GET("/dashboard", d.authMiddleware, d.questHandler.Dashboard)
		quests := api.Group("/quests")
		quests.Use(d.authMiddleware)
		{
			quests.GET("", d.questHandler.ListQuests)
			quests.POST("/:id/complete", d.questHandler.CompleteQuest)
		}

		// Roulette (protected)
		api.POST("/roulette/play", d.authMiddleware, d.rouletteHandler.Play)

		// Wallet (protected); money-moving requests honor Idempotency-Key
		wallet := api.Group("/wallet")
		wallet.Use(d.authMiddleware)
		{
			wallet.POST("/deposit", middleware.IdempotencyMiddleware(), d.walletHandler.Deposit)
			wallet.POST("/withdraw", middleware.IdempotencyMiddleware(), d.walletHandler.Withdraw)
			wallet.GET("/history", d.walletHandler.History)
		}

		// Admin moderation queue (role checked against the balance row)
		admin := api.Group("/admin")
		admin.Use(d.authMiddleware, d.adminMiddleware)
		{
			admin.GET("/transactions/pending", d.adminHandler.ListPending)
			admin.POST("/transactions/:id/approve", d.adminHandler.Approve)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "questhub-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
