package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/bot"
)

type Deps struct {
	Bot *bot.HTTPHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(securityHeaders())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "HackAgent is running! Visit /hackathon-hackagent for the main application.")
	})
	r.GET("/hackathon-hackagent", func(c *gin.Context) {
		c.String(http.StatusOK, "HackAgent is running! This bot helps manage the AI Agent Building Hackathon for Biotech R&D.")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sl := r.Group("/hackathon-hackagent/slack")
	{
		sl.POST("/commands", deps.Bot.Commands)
		sl.POST("/interactions", deps.Bot.Interactions)
		sl.POST("/events", deps.Bot.Events)
	}
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Next()
	}
}
