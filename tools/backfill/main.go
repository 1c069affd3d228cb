// Command backfill is a one-off migration that fills in defaults on
// feedback documents created before those fields existed. It is safe to
// run repeatedly: only documents missing a field are touched.
package main

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/feedback-api/schema"
)

func main() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("feedback")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("mongo.database", "feedback")

	connURI := viper.GetString("mongo.conn")
	if connURI == "" {
		log.Fatal("mongo connection uri is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("fail to connect mongodb")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.WithError(err).Error("fail to disconnect mongodb")
		}
	}()

	c := client.Database(viper.GetString("mongo.database")).Collection(schema.FeedbackCollection)

	defaults := []struct {
		field string
		value interface{}
	}{
		{"rating", 5},
		{"status", schema.FeedbackStatusNew},
		{"priority", schema.FeedbackPriorityMedium},
		{"is_public", true},
		{"tags", []string{}},
	}

	for _, d := range defaults {
		r, err := c.UpdateMany(ctx,
			bson.M{d.field: bson.M{"$exists": false}},
			bson.M{"$set": bson.M{d.field: d.value}},
		)
		if err != nil {
			log.WithError(err).WithField("field", d.field).Fatal("fail to backfill field")
		}

		log.WithFields(log.Fields{
			"field":    d.field,
			"modified": r.ModifiedCount,
		}).Info("backfilled default")
	}
}
