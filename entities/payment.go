package entities

import "go.mongodb.org/mongo-driver/bson/primitive"

const PaymentTypeMembership = "membership"

type Payment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PaymentID   string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	ClubID      string             `bson:"clubId,omitempty" json:"clubId,omitempty"`
	ClubName    string             `bson:"club,omitempty" json:"club,omitempty"`
	MemberEmail string             `bson:"memberEmail,omitempty" json:"memberEmail,omitempty"`
	Type        string             `bson:"type,omitempty" json:"type,omitempty"`
	Amount      float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt   string             `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
