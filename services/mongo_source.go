package services

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names for the Mongo-hosted document source
const (
	termsCollection = "financial_terms"
	tipsCollection  = "saving_tips"
	scamsCollection = "scam_alerts"
)

// LoadStoreFromMongo reads the three record families from MongoDB and builds
// the in-memory store. The connection is used for this one read and closed;
// nothing is written back during request handling.
func LoadStoreFromMongo(ctx context.Context, uri, databaseName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, &DataLoadError{Source: uri, Err: err}
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		return nil, &DataLoadError{Source: uri, Err: err}
	}

	db := client.Database(databaseName)

	var terms []TermRecord
	if err := readAll(ctx, db, termsCollection, &terms); err != nil {
		return nil, &DataLoadError{Source: uri, Err: err}
	}

	var tips []TipRecord
	if err := readAll(ctx, db, tipsCollection, &tips); err != nil {
		return nil, &DataLoadError{Source: uri, Err: err}
	}

	var scams []ScamRecord
	if err := readAll(ctx, db, scamsCollection, &scams); err != nil {
		return nil, &DataLoadError{Source: uri, Err: err}
	}

	store := NewStore(terms, tips, scams)

	slog.Info("Document store loaded from MongoDB",
		"database", databaseName,
		"documents", store.Len(),
	)

	return store, nil
}

func readAll(ctx context.Context, db *mongo.Database, collection string, out interface{}) error {
	cursor, err := db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}
