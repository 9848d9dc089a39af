package internal

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SummarizeRequest is the inbound payload of POST /api/summarize.
type SummarizeRequest struct {
	VideoURL string `json:"videoUrl"`
}

// errorResponse is the JSON envelope for every non-200 response.
type errorResponse struct {
	Error string `json:"error"`
}

// Caller-facing error messages. Internal detail stays in the logs.
const (
	msgURLRequired           = "YouTube URL is required"
	msgInvalidURL            = "Invalid YouTube URL provided."
	msgTranscriptUnavailable = "Could not fetch a transcript for this video. Captions may be disabled, the video may be private, or it may be a live stream."
	msgMethodNotAllowed      = "Method Not Allowed"
	msgInternalError         = "Failed to process video. Please check the server logs."
)

// NewRouter constructs the Gin engine with the summarize endpoint
// registered.
func NewRouter(summarizer *Summarizer, log *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse{Error: msgMethodNotAllowed})
	})

	h := &summarizeHandler{summarizer: summarizer, log: log.WithField("component", "http")}
	r.POST("/api/summarize", h.handleSummarize)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// requestLogger logs one line per request with method, path, status, and
// duration.
func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request handled")
	}
}

type summarizeHandler struct {
	summarizer *Summarizer
	log        *logrus.Entry
}

func (h *summarizeHandler) handleSummarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgURLRequired})
		return
	}
	if req.VideoURL == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgURLRequired})
		return
	}

	result, err := h.summarizer.Summarize(c.Request.Context(), req.VideoURL)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidVideoURL):
			c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidURL})
		case errors.Is(err, ErrTranscriptUnavailable):
			c.JSON(http.StatusBadRequest, errorResponse{Error: msgTranscriptUnavailable})
		default:
			h.log.WithError(err).WithField("video_url", req.VideoURL).Error("pipeline failed")
			c.JSON(http.StatusInternalServerError, errorResponse{Error: msgInternalError})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
