package database

import (
	"context"
	"time"

	"agendly/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

const connectAttempts = 3

// InitDB connects to MongoDB, retrying a few times while the server comes up.
func InitDB(logger *zap.Logger) {
	clientOptions := options.Client().
		ApplyURI(config.AppConfig.DatabaseURL).
		SetAppName("agendly").
		SetServerSelectionTimeout(5 * time.Second)

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := connect(clientOptions)
		if err == nil {
			MongoClient = client
			logger.Info("Connected to MongoDB", zap.String("database", config.AppConfig.DatabaseName))
			return
		}
		lastErr = err
		logger.Warn("MongoDB not reachable", zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	logger.Fatal("failed to connect to MongoDB", zap.Error(lastErr))
}

func connect(opts *options.ClientOptions) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// DB returns the application database handle.
func DB() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}

// Close disconnects the global client.
func Close(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}
