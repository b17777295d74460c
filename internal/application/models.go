package application

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application is an intern's request to be considered for a posting. Company
// and title are denormalized from the posting at apply time, so they survive
// the posting's deletion.
type Application struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InternshipID primitive.ObjectID `bson:"internship_id" json:"internship_id"`
	Company      string             `bson:"company" json:"company"`
	Title        string             `bson:"title" json:"title"`
	UserID       string             `bson:"user_id" json:"user_id"`
	Status       string             `bson:"status" json:"status"`
}
