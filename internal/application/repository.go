package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ApplicationRepository struct {
	collection *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{collection: db.Collection("apply")}
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Application, error) {
	var app Application
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByApplicantAndInternship(ctx context.Context, userID string, internshipID primitive.ObjectID) (*Application, error) {
	var app Application
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "internship_id": internshipID}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, userID string) ([]*Application, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var apps []*Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepository) ListPendingByInternship(ctx context.Context, internshipID primitive.ObjectID) ([]*Application, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"internship_id": internshipID, "status": StatusPending})
	if err != nil {
		return nil, err
	}
	var apps []*Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Create inserts a new application. The unique index on
// (user_id, internship_id) turns a double submit into ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, app *Application) error {
	res, err := r.collection.InsertOne(ctx, app)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyApplied
		}
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		app.ID = id
	}
	return nil
}

// UpdateStatus flips a pending application to its final status. The filter
// includes the pending status so a decision can never reverse.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	filter := bson.M{"_id": id, "status": StatusPending}
	update := bson.M{"$set": bson.M{"status": status}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotPending
	}
	return nil
}
