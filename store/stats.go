package store

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/feedback-api/schema"
)

// Fallback figures served while the collection is still empty.
const (
	emptyStoreAverageRating = 4.8
	emptyStoreSatisfaction  = 97
)

// highRatingThreshold is the lowest rating still counted toward the
// satisfaction percentage.
const highRatingThreshold = 4

// FeedbackStats takes an aggregate snapshot over the whole collection.
// Every figure comes from its own sub-query and the sub-queries run
// concurrently, so entries created mid-snapshot may show up in some
// counts and not others.
func (m *mongoDB) FeedbackStats() (*schema.FeedbackStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	var stats schema.FeedbackStats
	var ratingSeen bool
	var ratingAverage float64

	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, query bson.M) func() error {
		return func() error {
			n, err := c.CountDocuments(gctx, query)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		}
	}

	g.Go(count(&stats.Total, bson.M{}))
	g.Go(count(&stats.New, bson.M{"status": schema.FeedbackStatusNew}))
	g.Go(count(&stats.Read, bson.M{"status": schema.FeedbackStatusRead}))
	g.Go(count(&stats.Responded, bson.M{"status": schema.FeedbackStatusResponded}))
	g.Go(count(&stats.HighPriority, bson.M{"priority": schema.FeedbackPriorityHigh}))
	g.Go(count(&stats.Urgent, bson.M{"priority": schema.FeedbackPriorityUrgent}))
	g.Go(count(&stats.HighRatingCount, bson.M{"rating": bson.M{"$gte": highRatingThreshold}}))

	g.Go(func() error {
		pipeline := mongo.Pipeline{
			AggregationGroup(nil, bson.D{
				bson.E{Key: "avg", Value: bson.M{"$avg": "$rating"}},
			}),
		}

		cursor, err := c.Aggregate(gctx, pipeline)
		if err != nil {
			return err
		}
		if !cursor.Next(gctx) {
			return cursor.Err()
		}

		var result struct {
			Avg float64 `bson:"avg"`
		}
		if err := cursor.Decode(&result); err != nil {
			return err
		}

		ratingSeen = true
		ratingAverage = result.Avg
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if ratingSeen {
		stats.AverageRating = math.Round(ratingAverage*10) / 10
	} else {
		stats.AverageRating = emptyStoreAverageRating
	}

	if stats.Total > 0 {
		stats.SatisfactionPercentage = int(math.Round(float64(stats.HighRatingCount) / float64(stats.Total) * 100))
	} else {
		stats.SatisfactionPercentage = emptyStoreSatisfaction
	}

	return &stats, nil
}
