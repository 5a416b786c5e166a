package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UserCollection = "users"
	BlogCollection = "blogs"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initUserCollection(db); err != nil {
		return nil, err
	}

	if err := initBlogCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initUserCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	exists, err := collectionExists(ctx, db, UserCollection)
	if err != nil || exists {
		return err
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"email", "password", "name", "created_at"},
			"properties": bson.M{
				"email":      bson.M{"bsonType": "string", "minLength": 1},
				"password":   bson.M{"bsonType": "string", "minLength": 1},
				"name":       bson.M{"bsonType": "string", "minLength": 1},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	})

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, UserCollection, collOpts); err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(UserCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return err
}

func initBlogCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	exists, err := collectionExists(ctx, db, BlogCollection)
	if err != nil || exists {
		return err
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"title", "content", "author_id", "views", "likes", "liked_by", "created_at", "updated_at"},
			"properties": bson.M{
				"title":        bson.M{"bsonType": "string", "minLength": 1},
				"content":      bson.M{"bsonType": "string", "minLength": 1},
				"author_id":    bson.M{"bsonType": "string", "minLength": 1},
				"author_name":  bson.M{"bsonType": "string"},
				"author_email": bson.M{"bsonType": "string"},
				"media": bson.M{
					"bsonType": []string{"object", "null"},
					"properties": bson.M{
						"url":           bson.M{"bsonType": "string"},
						"public_id":     bson.M{"bsonType": "string"},
						"format":        bson.M{"bsonType": "string"},
						"resource_type": bson.M{"enum": []string{"image", "video"}},
						"width":         bson.M{"bsonType": "int"},
						"height":        bson.M{"bsonType": "int"},
					},
				},
				"views":      bson.M{"bsonType": "long", "minimum": 0},
				"likes":      bson.M{"bsonType": "long", "minimum": 0},
				"liked_by":   bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				"created_at": bson.M{"bsonType": "date"},
				"updated_at": bson.M{"bsonType": "date"},
			},
		},
	})

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, BlogCollection, collOpts); err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(BlogCollection)
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})

	return err
}

func collectionExists(ctx context.Context, db *Database, name string) (bool, error) {
	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}

	return len(collections) > 0, nil
}

func (db *Database) Stop() error {
	return db.Client.Disconnect(context.Background())
}
