package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's reservation of one slot of a treatment on a date.
// At most one booking exists per (Date, PatientName).
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitzero"`
	TreatmentName string             `bson:"treatmentName" json:"treatmentName" binding:"required"`
	Date          string             `bson:"date" json:"date" binding:"required"`
	Slot          string             `bson:"slot" json:"slot" binding:"required"`
	PatientName   string             `bson:"patientName" json:"patientName" binding:"required"`
	PatientEmail  string             `bson:"patientEmail" json:"patientEmail" binding:"required,email"`
}
