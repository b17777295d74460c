package profile

import (
	"context"
	"errors"

	"InternLink/internal/application"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("profile not found")

// ProfileStore is the repository surface the service depends on.
type ProfileStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*Profile, error)
	UpdateContactInfo(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) error
}

// ApplicationLister supplies the viewer's own application rows.
type ApplicationLister interface {
	ListForApplicant(ctx context.Context, userID string) ([]*application.Application, error)
}

// View is everything the profile page shows: the profile document plus the
// viewer's application history.
type View struct {
	Profile      *Profile                   `json:"profile"`
	Applications []*application.Application `json:"applications"`
}

type ProfileService struct {
	store        ProfileStore
	applications ApplicationLister
}

func NewProfileService(store ProfileStore, applications ApplicationLister) *ProfileService {
	return &ProfileService{store: store, applications: applications}
}

func (s *ProfileService) Get(ctx context.Context, id primitive.ObjectID) (*View, error) {
	profile, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	apps, err := s.applications.ListForApplicant(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	return &View{Profile: profile, Applications: apps}, nil
}

func (s *ProfileService) Update(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) (*Profile, error) {
	if err := s.store.UpdateContactInfo(ctx, id, update); err != nil {
		return nil, err
	}
	profile, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}
