package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shortforge/video"
)

// Server exposes the render pipeline over HTTP.
type Server struct {
	processor *video.Processor
}

func NewServer(processor *video.Processor) *Server {
	return &Server{processor: processor}
}

// RenderResponse is the JSON shape for all render endpoint replies.
type RenderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewRouter constructs a Gin engine with registered routes.
func (s *Server) NewRouter() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	r.GET("/health", s.handleHealth)
	r.POST("/api/render", s.handleRender)
	return r
}

// handleRender accepts a render job and starts it in the background. The
// response acknowledges the job; rendering takes long enough that callers
// should not hold the connection open.
func (s *Server) handleRender(c *gin.Context) {
	var job video.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, RenderResponse{
			Success: false,
			Message: "Invalid JSON payload",
			Error:   err.Error(),
		})
		return
	}

	if job.Audio == "" {
		c.JSON(http.StatusBadRequest, RenderResponse{
			Success: false,
			Message: "Audio source is required",
		})
		return
	}

	log.Printf("📥 Received render request: %s", job.Title)

	go func() {
		if err := s.processor.Process(job); err != nil {
			log.Printf("❌ Render failed for %q: %v", job.Title, err)
		}
	}()

	c.JSON(http.StatusOK, RenderResponse{
		Success: true,
		Message: "Render started",
		Output:  job.Output,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
