package api

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"skyit_builder/internal/examples"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerationFailedMessage is the only error text clients see when generation fails.
const GenerationFailedMessage = "Failed to generate website"

const requestIDHeader = "X-Request-ID"

// WebsiteGenerator is what the handlers need from the generation gateway.
type WebsiteGenerator interface {
	GenerateWebsite(ctx context.Context, userPrompt, existingCode string) (string, error)
	EditWebsite(ctx context.Context, originalPrompt, changes, existingCode string) (string, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator WebsiteGenerator
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(generator WebsiteGenerator) *APIHandler {
	return &APIHandler{generator: generator}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	Prompt       string `json:"prompt" binding:"required,min=1"`
	ExistingCode string `json:"existingCode"`
}

type EditRequest struct {
	Prompt       string `json:"prompt" binding:"required"`
	Changes      string `json:"changes" binding:"required"`
	ExistingCode string `json:"existingCode"`
}

type GenerateResponse struct {
	Code string `json:"code"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// --- Middleware ---

// RequestID tags every request with an ID, reusing the caller's header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString("request_id")
}

func badRequest(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: details})
}

// --- API Handlers ---

// POST /api/generate-website
func (h *APIHandler) GenerateWebsite(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		badRequest(c, "prompt must not be blank")
		return
	}

	log.Printf("[%s] Received generation request (existing code: %d bytes)", requestID(c), len(req.ExistingCode))

	code, err := h.generator.GenerateWebsite(c.Request.Context(), req.Prompt, req.ExistingCode)
	if err != nil {
		log.Printf("[%s] Website generation failed: %v", requestID(c), err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: GenerationFailedMessage})
		return
	}

	log.Printf("[%s] Website generation successful (%d bytes)", requestID(c), len(code))
	c.JSON(http.StatusOK, GenerateResponse{Code: code})
}

// POST /api/edit-website
func (h *APIHandler) EditWebsite(c *gin.Context) {
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Prompt) == "" || strings.TrimSpace(req.Changes) == "" {
		badRequest(c, "prompt and changes must not be blank")
		return
	}

	log.Printf("[%s] Received edit request (existing code: %d bytes)", requestID(c), len(req.ExistingCode))

	code, err := h.generator.EditWebsite(c.Request.Context(), req.Prompt, req.Changes, req.ExistingCode)
	if err != nil {
		log.Printf("[%s] Website edit failed: %v", requestID(c), err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: GenerationFailedMessage})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Code: code})
}

// GET /api/examples?category=Business
func (h *APIHandler) ListExamples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"examples": examples.ByCategory(c.Query("category"))})
}

// GET /api/examples/:id
func (h *APIHandler) GetExample(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Example ID must be a number"})
		return
	}
	ex, ok := examples.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Example not found"})
		return
	}
	c.JSON(http.StatusOK, ex)
}

// GET /api/examples/categories
func (h *APIHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": examples.Categories()})
}
