package entities

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	MembershipStatusActive  = "active"
	MembershipStatusPending = "pending"
	MembershipStatusExpired = "expired"
)

// Membership.PaymentID carries the checkout provider's transaction id and is
// the dedup key for the payment completion flow (unique index, see migrations).
type Membership struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClubID      string             `bson:"clubId,omitempty" json:"clubId,omitempty"`
	MemberEmail string             `bson:"memberEmail,omitempty" json:"memberEmail,omitempty"`
	MemberName  string             `bson:"memberName,omitempty" json:"memberName,omitempty"`
	PaymentID   string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
	JoinedAt    string             `bson:"joinedAt,omitempty" json:"joinedAt,omitempty"`
	ExpiryDate  string             `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
}
