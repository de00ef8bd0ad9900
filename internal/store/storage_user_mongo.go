// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/MKhiriev/user-management/internal/config"
	"github.com/MKhiriev/user-management/internal/logger"
	"github.com/MKhiriev/user-management/models"
)

// userDocument is the BSON shape of a user in the users collection.
type userDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Username     string        `bson:"username"`
	FirstName    string        `bson:"first_name"`
	LastName     string        `bson:"last_name"`
	Email        string        `bson:"email"`
	PasswordHash []byte        `bson:"password_hash"`
	PasswordSalt []byte        `bson:"password_salt"`
	CreatedAt    time.Time     `bson:"created_at"`
}

// mongoUserStorage is the MongoDB implementation of [UserStorage].
type mongoUserStorage struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewConnectMongo connects to MongoDB and pings the primary.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during mongo connection")
		return nil, fmt.Errorf("error occurred during mongo connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("connected to mongo successfully")

	return client, nil
}

// newMongoUserStorage constructs a [UserStorage] over the configured
// database and collection.
func newMongoUserStorage(client *mongo.Client, cfg config.Mongo, log *logger.Logger) *mongoUserStorage {
	log.Debug().Msg("creating mongo user storage")
	return &mongoUserStorage{
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		logger:     log,
	}
}

// EnsureIndexes creates the unique username and email indexes. It is
// idempotent.
func (m *mongoUserStorage) EnsureIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateMany(ctx, userIndexModels())
	if err != nil {
		return fmt.Errorf("error creating user indexes: %w", err)
	}
	return nil
}

// InsertUser stores user as a new document; the generated ObjectID is
// written back to user.ID in hex form.
func (m *mongoUserStorage) InsertUser(ctx context.Context, user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	doc := toUserDocument(*user)
	doc.ID = bson.NewObjectID()

	if _, err := m.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.ID = doc.ID.Hex()
	return nil
}

func (m *mongoUserStorage) FindUserByID(ctx context.Context, id string) (models.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidUserID, err)
	}
	return m.findOne(ctx, bson.D{{Key: "_id", Value: objectID}})
}

func (m *mongoUserStorage) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (m *mongoUserStorage) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (m *mongoUserStorage) findOne(ctx context.Context, filter bson.D) (models.User, error) {
	var doc userDocument
	err := m.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return fromUserDocument(doc), nil
}

func userIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_username_uindex"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_uindex"),
		},
	}
}

func toUserDocument(user models.User) userDocument {
	doc := userDocument{
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		PasswordSalt: user.PasswordSalt,
		CreatedAt:    user.CreatedAt,
	}
	if id, err := bson.ObjectIDFromHex(user.ID); err == nil {
		doc.ID = id
	}
	return doc
}

func fromUserDocument(doc userDocument) models.User {
	user := models.User{
		Username:     doc.Username,
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		PasswordSalt: doc.PasswordSalt,
		CreatedAt:    doc.CreatedAt,
	}
	if !doc.ID.IsZero() {
		user.ID = doc.ID.Hex()
	}
	return user
}
