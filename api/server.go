package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/feedback-api/feedback"
	"github.com/bitmark-inc/feedback-api/store"
)

// Server is the HTTP surface of the feedback intake service.
type Server struct {
	server *http.Server

	feedback   *feedback.Service
	mongoStore store.MongoStore

	traceMode bool
}

func NewServer(feedbackService *feedback.Service, mongoStore store.MongoStore, traceMode bool) *Server {
	return &Server{
		feedback:   feedbackService,
		mongoStore: mongoStore,
		traceMode:  traceMode,
	}
}

// Run starts the server and blocks until it is shut down.
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.setupRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.RequestLog)
	r.Use(s.DumpRequest)

	r.POST("/feedback", s.createFeedback)
	r.GET("/feedback", s.listFeedback)
	r.GET("/feedback/recent", s.recentFeedback)
	r.GET("/feedback/stats", s.feedbackStats)
	r.GET("/feedback/:id", s.getFeedback)
	r.DELETE("/feedback/:id", s.deleteFeedback)

	r.GET("/healthz", s.healthz)

	return r
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Shutdown stops accepting new requests and drains in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
