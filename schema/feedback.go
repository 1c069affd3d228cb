package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FeedbackCollection = "feedback"
)

type FeedbackStatus string

const (
	FeedbackStatusNew       FeedbackStatus = "new"
	FeedbackStatusRead      FeedbackStatus = "read"
	FeedbackStatusResponded FeedbackStatus = "responded"
	FeedbackStatusArchived  FeedbackStatus = "archived"
)

type FeedbackPriority string

const (
	FeedbackPriorityLow    FeedbackPriority = "low"
	FeedbackPriorityMedium FeedbackPriority = "medium"
	FeedbackPriorityHigh   FeedbackPriority = "high"
	FeedbackPriorityUrgent FeedbackPriority = "urgent"
)

// ValidFeedbackStatus reports whether s belongs to the closed set of
// feedback statuses.
func ValidFeedbackStatus(s FeedbackStatus) bool {
	switch s {
	case FeedbackStatusNew, FeedbackStatusRead, FeedbackStatusResponded, FeedbackStatusArchived:
		return true
	}
	return false
}

// ValidFeedbackPriority reports whether p belongs to the closed set of
// feedback priorities.
func ValidFeedbackPriority(p FeedbackPriority) bool {
	switch p {
	case FeedbackPriorityLow, FeedbackPriorityMedium, FeedbackPriorityHigh, FeedbackPriorityUrgent:
		return true
	}
	return false
}

// FeedbackResponse records an admin reply to a feedback entry.
type FeedbackResponse struct {
	Message     string    `json:"message" bson:"message"`
	RespondedBy string    `json:"responded_by" bson:"responded_by"`
	RespondedAt time.Time `json:"responded_at" bson:"responded_at"`
}

type Feedback struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	ContactNumber string             `json:"contact_number,omitempty" bson:"contact_number,omitempty"`
	Message       string             `json:"message" bson:"message"`
	Rating        int                `json:"rating" bson:"rating"`
	Status        FeedbackStatus     `json:"status" bson:"status"`
	Priority      FeedbackPriority   `json:"priority" bson:"priority"`
	IsPublic      bool               `json:"is_public" bson:"is_public"`
	Tags          []string           `json:"tags" bson:"tags"`
	IPAddress     string             `json:"-" bson:"ip_address,omitempty"`
	UserAgent     string             `json:"-" bson:"user_agent,omitempty"`
	Response      *FeedbackResponse  `json:"response,omitempty" bson:"response,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// FeedbackStats is a point-in-time aggregate over the whole feedback
// collection. The counts come from independent sub-queries and are not
// guaranteed to be mutually consistent.
type FeedbackStats struct {
	Total                  int64   `json:"total"`
	New                    int64   `json:"new"`
	Read                   int64   `json:"read"`
	Responded              int64   `json:"responded"`
	HighPriority           int64   `json:"highPriority"`
	Urgent                 int64   `json:"urgent"`
	AverageRating          float64 `json:"averageRating"`
	HighRatingCount        int64   `json:"highRatingCount"`
	SatisfactionPercentage int     `json:"satisfactionPercentage"`
}
