package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/feedback-api/schema"
)

var (
	ErrFeedbackNotFound  = fmt.Errorf("feedback not found")
	ErrInvalidFeedbackID = fmt.Errorf("invalid feedback id")
)

// FeedbackFilter narrows feedback listings. Zero values mean "no
// constraint". PublicOnly additionally forces is_public=true, hides
// archived entries and restricts the returned fields to the public
// subset.
type FeedbackFilter struct {
	Status     schema.FeedbackStatus
	Priority   schema.FeedbackPriority
	PublicOnly bool
}

// FeedbackPage is one page of a creation-time-descending listing.
type FeedbackPage struct {
	Items    []schema.Feedback
	Total    int64
	Page     int64
	PageSize int64
	HasNext  bool
	HasPrev  bool
}

type Feedback interface {
	CreateFeedback(feedback schema.Feedback) (*schema.Feedback, error)
	ListFeedback(filter FeedbackFilter, page, pageSize int64) (*FeedbackPage, error)
	GetFeedback(id string) (*schema.Feedback, error)
	RecentFeedback(limit int64) ([]schema.Feedback, error)
	DeleteFeedback(id string) error
	HasRecentFeedbackFrom(email string, since time.Time) (bool, error)
	FeedbackStats() (*schema.FeedbackStats, error)
}

// publicProjection is the safe field subset served to untrusted callers.
// The _id is excluded as well so public listings carry no handle back to
// the full record.
var publicProjection = bson.M{
	"_id":        0,
	"name":       1,
	"message":    1,
	"created_at": 1,
	"tags":       1,
	"priority":   1,
}

// restrictedProjection only hides the submission metadata captured at
// creation time.
var restrictedProjection = bson.M{
	"ip_address": 0,
	"user_agent": 0,
}

// CreateFeedback persists a new feedback entry and returns it with the
// store-assigned id and timestamps filled in.
func (m *mongoDB) CreateFeedback(feedback schema.Feedback) (*schema.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	r, err := c.InsertOne(ctx, &feedback)
	if err != nil {
		return nil, err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("incorrect inserted id")
	}
	feedback.ID = id

	return &feedback, nil
}

func feedbackListQuery(filter FeedbackFilter) bson.M {
	query := bson.M{}

	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}

	if filter.PublicOnly {
		query["is_public"] = true
		statusCond := bson.M{"$ne": schema.FeedbackStatusArchived}
		if filter.Status != "" {
			statusCond["$eq"] = filter.Status
		}
		query["status"] = statusCond
	} else if filter.Status != "" {
		query["status"] = filter.Status
	}

	return query
}

// ListFeedback returns one page of feedback ordered by creation time
// descending, together with the total match count.
func (m *mongoDB) ListFeedback(filter FeedbackFilter, page, pageSize int64) (*FeedbackPage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)
	query := feedbackListQuery(filter)

	total, err := c.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}

	projection := restrictedProjection
	if filter.PublicOnly {
		projection = publicProjection
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize).
		SetProjection(projection)

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	items := []schema.Feedback{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return &FeedbackPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasNext:  page*pageSize < total,
		HasPrev:  page > 1,
	}, nil
}

// GetFeedback returns a single publicly visible entry with submission
// metadata stripped. Private and archived entries are reported as not
// found so they are indistinguishable from nonexistent ones.
func (m *mongoDB) GetFeedback(id string) (*schema.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidFeedbackID
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	query := bson.M{
		"_id":       oid,
		"is_public": true,
		"status":    bson.M{"$ne": schema.FeedbackStatusArchived},
	}

	var feedback schema.Feedback
	err = c.FindOne(ctx, query, options.FindOne().SetProjection(restrictedProjection)).Decode(&feedback)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFeedbackNotFound
	} else if err != nil {
		return nil, err
	}

	return &feedback, nil
}

// RecentFeedback returns the latest publicly visible entries, newest
// first, capped at limit. The limit is caller-supplied and not bounded
// here.
func (m *mongoDB) RecentFeedback(limit int64) ([]schema.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	pipeline := mongo.Pipeline{
		AggregationMatch(bson.M{
			"is_public": true,
			"status":    bson.M{"$ne": schema.FeedbackStatusArchived},
		}),
		AggregationSort(bson.M{"created_at": -1}),
		AggregationLimit(limit),
		AggregationProject(publicProjection),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	items := []schema.Feedback{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// DeleteFeedback physically removes an entry. There is no soft delete.
func (m *mongoDB) DeleteFeedback(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidFeedbackID
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	r, err := c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if r.DeletedCount == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

// HasRecentFeedbackFrom reports whether the given email already submitted
// feedback at or after the given time. The email is expected to be
// normalized to lowercase beforehand.
func (m *mongoDB) HasRecentFeedbackFrom(email string, since time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	count, err := c.CountDocuments(ctx, bson.M{
		"email":      email,
		"created_at": bson.M{"$gte": since},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
