package posting

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PostingRepository struct {
	collection *mongo.Collection
}

func NewPostingRepository(db *mongo.Database) *PostingRepository {
	return &PostingRepository{collection: db.Collection("internships")}
}

func (r *PostingRepository) FindAll(ctx context.Context) ([]*Posting, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var postings []*Posting
	if err := cursor.All(ctx, &postings); err != nil {
		return nil, err
	}
	return postings, nil
}

func (r *PostingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Posting, error) {
	var posting Posting
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&posting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &posting, nil
}

func (r *PostingRepository) FindByCompany(ctx context.Context, company string) ([]*Posting, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"company": company})
	if err != nil {
		return nil, err
	}
	var postings []*Posting
	if err := cursor.All(ctx, &postings); err != nil {
		return nil, err
	}
	return postings, nil
}

func (r *PostingRepository) Create(ctx context.Context, posting *Posting) error {
	_, err := r.collection.InsertOne(ctx, posting)
	return err
}

func (r *PostingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("posting not found")
	}
	return nil
}
