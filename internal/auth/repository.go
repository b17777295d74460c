package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type IdentityRepository struct {
	interns    *mongo.Collection
	recruiters *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{
		interns:    db.Collection("intern"),
		recruiters: db.Collection("recruiter"),
	}
}

// ListInterns loads the whole intern collection. Login works by scanning it,
// so attempts cost O(collection size).
func (r *IdentityRepository) ListInterns(ctx context.Context) ([]*Intern, error) {
	cursor, err := r.interns.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var interns []*Intern
	if err := cursor.All(ctx, &interns); err != nil {
		return nil, err
	}
	return interns, nil
}

func (r *IdentityRepository) ListRecruiters(ctx context.Context) ([]*Recruiter, error) {
	cursor, err := r.recruiters.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var recruiters []*Recruiter
	if err := cursor.All(ctx, &recruiters); err != nil {
		return nil, err
	}
	return recruiters, nil
}

func (r *IdentityRepository) CreateIntern(ctx context.Context, intern *Intern) error {
	_, err := r.interns.InsertOne(ctx, intern)
	return err
}

func (r *IdentityRepository) CreateRecruiter(ctx context.Context, recruiter *Recruiter) error {
	_, err := r.recruiters.InsertOne(ctx, recruiter)
	return err
}
