package entities

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ClubStatusPending  = "pending"
	ClubStatusApproved = "approved"
	ClubStatusRejected = "rejected"
)

type Club struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	BannerImage   string             `bson:"bannerImage,omitempty" json:"bannerImage,omitempty"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	MembershipFee float64            `bson:"membershipFee,omitempty" json:"membershipFee,omitempty"`
	ManagerEmail  string             `bson:"managerEmail,omitempty" json:"managerEmail,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt     string             `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     string             `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
}

// ClubWithMembers is a Club plus its active member count, for listing pages.
type ClubWithMembers struct {
	Club         `bson:",inline"`
	MembersCount int64 `json:"membersCount"`
}
