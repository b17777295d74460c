package profile

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{collection: db.Collection("intern")}
}

// FindByID fetches the profile by direct id lookup, excluding the password
// hash from the projection.
func (r *ProfileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Profile, error) {
	opts := options.FindOne().SetProjection(bson.M{"password_hash": 0})
	var profile Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateContactInfo partially updates the editable subset only.
func (r *ProfileRepository) UpdateContactInfo(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) error {
	filter := bson.M{"_id": id}
	set := bson.M{
		"$set": bson.M{
			"dob":     update.DOB,
			"address": update.Address,
			"contact": update.Contact,
		},
	}
	res, err := r.collection.UpdateOne(ctx, filter, set)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
