package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/feedback-api/feedback"
	"github.com/bitmark-inc/feedback-api/schema"
	"github.com/bitmark-inc/feedback-api/store"
)

const adminSecretHeader = "X-Admin-Secret"

// publicFeedbackView is the only shape ever served to untrusted callers:
// no id, no email, no submission metadata.
type publicFeedbackView struct {
	Name          string                  `json:"name"`
	Message       string                  `json:"message"`
	Tags          []string                `json:"tags"`
	Priority      schema.FeedbackPriority `json:"priority"`
	CreatedAt     time.Time               `json:"createdAt"`
	FormattedDate string                  `json:"formattedDate"`
	TimeAgo       string                  `json:"timeAgo"`
}

// feedbackDetailView adds the read-time display fields on top of the
// stored record. IPAddress and UserAgent never serialize.
type feedbackDetailView struct {
	schema.Feedback
	FormattedDate string `json:"formattedDate"`
	TimeAgo       string `json:"timeAgo"`
}

type paginationView struct {
	Page        int64 `json:"page"`
	Limit       int64 `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

func toPublicFeedback(f schema.Feedback, now time.Time) publicFeedbackView {
	return publicFeedbackView{
		Name:          f.Name,
		Message:       f.Message,
		Tags:          f.Tags,
		Priority:      f.Priority,
		CreatedAt:     f.CreatedAt,
		FormattedDate: feedback.FormatFeedbackDate(f.CreatedAt),
		TimeAgo:       feedback.TimeAgo(f.CreatedAt, now),
	}
}

func toFeedbackDetail(f schema.Feedback, now time.Time) feedbackDetailView {
	return feedbackDetailView{
		Feedback:      f,
		FormattedDate: feedback.FormatFeedbackDate(f.CreatedAt),
		TimeAgo:       feedback.TimeAgo(f.CreatedAt, now),
	}
}

func toPagination(p *store.FeedbackPage) paginationView {
	totalPages := int64(0)
	if p.PageSize > 0 {
		totalPages = (p.Total + p.PageSize - 1) / p.PageSize
	}

	return paginationView{
		Page:        p.Page,
		Limit:       p.PageSize,
		Total:       p.Total,
		TotalPages:  totalPages,
		HasNextPage: p.HasNext,
		HasPrevPage: p.HasPrev,
	}
}

// createFeedback is the public submission endpoint.
func (s *Server) createFeedback(c *gin.Context) {
	var params feedback.SubmissionParams

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	entry, err := s.feedback.Submit(params, feedback.SubmissionMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for your feedback!",
		"data": gin.H{
			"id":          entry.ID.Hex(),
			"name":        entry.Name,
			"message":     entry.Message,
			"submittedAt": entry.CreatedAt,
			"status":      entry.Status,
		},
	})
}

// listFeedback serves the paged listing. publicOnly defaults to true;
// passing publicOnly=false is how the admin surface reads the full
// records.
func (s *Server) listFeedback(c *gin.Context) {
	var params struct {
		Page       int64  `form:"page,default=1"`
		Limit      int64  `form:"limit,default=10"`
		Status     string `form:"status"`
		Priority   string `form:"priority"`
		PublicOnly *bool  `form:"publicOnly"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Status != "" && !schema.ValidFeedbackStatus(schema.FeedbackStatus(params.Status)) {
		abortWithEncoding(c, http.StatusBadRequest, "Invalid status value")
		return
	}
	if params.Priority != "" && !schema.ValidFeedbackPriority(schema.FeedbackPriority(params.Priority)) {
		abortWithEncoding(c, http.StatusBadRequest, "Invalid priority value")
		return
	}

	publicOnly := true
	if params.PublicOnly != nil {
		publicOnly = *params.PublicOnly
	}

	page, err := s.feedback.List(store.FeedbackFilter{
		Status:     schema.FeedbackStatus(params.Status),
		Priority:   schema.FeedbackPriority(params.Priority),
		PublicOnly: publicOnly,
	}, params.Page, params.Limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	now := time.Now().UTC()
	data := make([]interface{}, 0, len(page.Items))
	for _, item := range page.Items {
		if publicOnly {
			data = append(data, toPublicFeedback(item, now))
		} else {
			data = append(data, toFeedbackDetail(item, now))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"pagination": toPagination(page),
	})
}

// recentFeedback serves the latest public entries without pagination
// metadata.
func (s *Server) recentFeedback(c *gin.Context) {
	var params struct {
		Limit int64 `form:"limit,default=5"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	items, err := s.feedback.Recent(params.Limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	now := time.Now().UTC()
	data := make([]publicFeedbackView, 0, len(items))
	for _, item := range items {
		data = append(data, toPublicFeedback(item, now))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

func (s *Server) feedbackStats(c *gin.Context) {
	stats, err := s.feedback.Stats()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total":                  stats.Total,
			"new":                    stats.New,
			"read":                   stats.Read,
			"responded":              stats.Responded,
			"highPriority":           stats.HighPriority,
			"urgent":                 stats.Urgent,
			"averageRating":          stats.AverageRating,
			"highRatingCount":        stats.HighRatingCount,
			"satisfactionPercentage": stats.SatisfactionPercentage,
			"lastUpdated":            time.Now().UTC(),
		},
	})
}

func (s *Server) getFeedback(c *gin.Context) {
	entry, err := s.feedback.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toFeedbackDetail(*entry, time.Now().UTC()),
	})
}

// deleteFeedback is the admin endpoint. The shared secret travels in the
// X-Admin-Secret header and is checked before the store is touched.
func (s *Server) deleteFeedback(c *gin.Context) {
	err := s.feedback.Delete(c.Param("id"), c.GetHeader(adminSecretHeader))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Feedback deleted",
	})
}
