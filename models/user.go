package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

// User is a portal account keyed by email. Any profile fields the client sent
// are kept in Profile and flattened back out in JSON.
type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Email   string             `bson:"email"`
	Role    string             `bson:"role,omitempty"`
	Profile bson.M             `bson:",inline"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Profile)+3)
	for k, v := range u.Profile {
		out[k] = v
	}
	if !u.ID.IsZero() {
		out["_id"] = u.ID
	}
	out["email"] = u.Email
	if u.Role != "" {
		out["role"] = u.Role
	}
	return json.Marshal(out)
}

// UpsertResult mirrors the write result returned to clients of PUT /user/:email.
type UpsertResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}
