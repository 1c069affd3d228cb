package api

import (
	"net/http/httputil"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RequestLog tags each request with an id and logs its outcome.
func (s *Server) RequestLog(c *gin.Context) {
	start := time.Now()
	requestID := uuid.New().String()
	c.Set("request_id", requestID)

	c.Next()

	log.WithFields(log.Fields{
		"prefix":  "gin",
		"id":      requestID,
		"status":  c.Writer.Status(),
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"client":  c.ClientIP(),
		"elapsed": time.Since(start).String(),
	}).Info("request handled")
}

// DumpRequest is a middleware to dump incoming http requests if the
// trace mode is enabled.
func (s *Server) DumpRequest(c *gin.Context) {
	if s.traceMode {
		dump, err := httputil.DumpRequest(c.Request, false)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": "gin",
				"status": c.Writer.Status(),
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).Error("fail to dump request")
		}

		log.WithFields(log.Fields{
			"prefix": "gin",
			"req":    string(dump),
		}).Debug("incoming request")
	}

	c.Next()
}
