package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/feedback-api/feedback"
	"github.com/bitmark-inc/feedback-api/store"
)

const (
	errorInvalidParameters = "invalid parameters"
	errorInternalServer    = "internal server error"
	errorUnauthorized      = "unauthorized"
	errorFeedbackNotFound  = "Feedback not found"
	errorDuplicateFeedback = "You have already submitted feedback recently. Please try again later."
)

// abortWithEncoding writes the uniform failure envelope and aborts the
// request. details, when present, carries the full per-field violation
// list.
func abortWithEncoding(c *gin.Context, code int, message string, details ...[]string) {
	body := gin.H{
		"success": false,
		"error":   message,
	}
	if len(details) > 0 && len(details[0]) > 0 {
		body["details"] = details[0]
	}

	c.AbortWithStatusJSON(code, body)
}

// abortWithError maps a lifecycle error onto the HTTP error taxonomy.
// Unrecognized errors are persistence faults: logged in full, served with
// a generic message in release mode.
func abortWithError(c *gin.Context, err error) {
	var validationErr *feedback.ValidationError

	switch {
	case errors.As(err, &validationErr):
		abortWithEncoding(c, http.StatusBadRequest, validationErr.Message, validationErr.Details)
	case errors.Is(err, feedback.ErrDuplicateSubmission):
		abortWithEncoding(c, http.StatusTooManyRequests, errorDuplicateFeedback)
	case errors.Is(err, feedback.ErrUnauthorized):
		abortWithEncoding(c, http.StatusUnauthorized, errorUnauthorized)
	case errors.Is(err, store.ErrFeedbackNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorFeedbackNotFound)
	case errors.Is(err, store.ErrInvalidFeedbackID):
		abortWithEncoding(c, http.StatusBadRequest, "Invalid feedback id")
	default:
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("store operation failed")

		message := errorInternalServer
		if gin.Mode() != gin.ReleaseMode {
			message = err.Error()
		}
		abortWithEncoding(c, http.StatusInternalServerError, message)
	}
}
