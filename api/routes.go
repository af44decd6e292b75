package api

import (
	"net/http"

	handlers "skyit_builder/internal/api"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *handlers.APIHandler) {
	router.Use(handlers.RequestID())

	// --- Website Generation ---
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/generate-website", h.GenerateWebsite) // Generate, or modify existingCode, from a prompt
		apiGroup.POST("/edit-website", h.EditWebsite)         // Apply follow-up changes to a generated site
	}

	// --- Example Gallery ---
	examplesGroup := router.Group("/api/examples")
	{
		examplesGroup.GET("", h.ListExamples)
		examplesGroup.GET("/categories", h.ListCategories)
		examplesGroup.GET("/:id", h.GetExample)
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
