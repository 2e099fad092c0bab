package userRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert sets the given fields on the user keyed by email, inserting it if needed.
func (r *MongoUserRepo) Upsert(ctx context.Context, email string, fields bson.M) (*models.UpsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"email": email}
	for k, v := range fields {
		set[k] = v
	}
	filter := bson.M{"email": email}
	update := bson.M{"$set": set}

	res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", email, err)
	}
	return &models.UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// SetRole changes the role of an existing user; it never creates one.
func (r *MongoUserRepo) SetRole(ctx context.Context, email, role string) (*models.UpsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"role": role}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to set role for user %s: %w", email, err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}
	return &models.UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
