package entities

import "go.mongodb.org/mongo-driver/bson/primitive"

const RegistrationStatusRegistered = "registered"

type EventRegistration struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	EventID    string             `bson:"eventId,omitempty" json:"eventId,omitempty"`
	UserEmail  string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	UserName   string             `bson:"userName,omitempty" json:"userName,omitempty"`
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
	RegisterAt string             `bson:"registerAt,omitempty" json:"registerAt,omitempty"`
}
