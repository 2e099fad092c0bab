package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes on the bookings collection. The unique
// (date, patientName) index is what actually enforces one booking per patient
// per day; the service-level pre-check alone races under concurrent requests.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "patientName", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_date_patient"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "treatmentName", Value: 1}},
			Options: options.Index().SetName("date_treatment_idx"),
		},
		{
			Keys:    bson.D{{Key: "patientEmail", Value: 1}},
			Options: options.Index().SetName("patient_email_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
