package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/feedback-api/api"
	"github.com/bitmark-inc/feedback-api/feedback"
	"github.com/bitmark-inc/feedback-api/schema"
	"github.com/bitmark-inc/feedback-api/store"
)

func initConfig() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("feedback")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("mongo.database", "feedback")
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("log.level", "info")
}

func initLog() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)
}

func initMongoClient(connURI string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client, nil
}

func main() {
	initConfig()
	initLog()

	connURI := viper.GetString("mongo.conn")
	if connURI == "" {
		log.Fatal("mongo connection uri is not configured")
	}

	adminSecret := viper.GetString("admin.secret")
	if adminSecret == "" {
		log.Fatal("admin secret is not configured")
	}

	database := viper.GetString("mongo.database")

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("fail to create mongodb indexes")
	}

	client, err := initMongoClient(connURI)
	if err != nil {
		log.WithError(err).Fatal("fail to connect mongodb")
	}

	mongoStore := store.NewMongoStore(client, database)
	feedbackService := feedback.NewService(mongoStore, adminSecret)
	server := api.NewServer(feedbackService, mongoStore, viper.GetBool("server.trace"))

	go func() {
		listen := viper.GetString("server.listen")
		log.WithField("listen", listen).Info("starting feedback api server")
		if err := server.Run(listen); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server stopped unexpectedly")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("fail to shutdown the server gracefully")
	}

	if err := mongoStore.Close(ctx); err != nil {
		log.WithError(err).Error("fail to disconnect mongodb")
	}
}
