package posting

import "go.mongodb.org/mongo-driver/bson/primitive"

// Posting represents an internship opening published by a recruiter. The
// company string is the only ownership marker; there is no recruiter foreign
// key in the document.
type Posting struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Company     string             `bson:"company" json:"company"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    string             `bson:"duration" json:"duration"`
	Experience  string             `bson:"experience" json:"experience"`
	Img         string             `bson:"img" json:"img"`
	Location    string             `bson:"location" json:"location"`
	Mode        string             `bson:"mode" json:"mode"`
	Skills      []string           `bson:"skills" json:"skills"` // three fixed slots
	Stipend     string             `bson:"stipend" json:"stipend"`
}
