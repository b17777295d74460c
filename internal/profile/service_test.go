package profile

import (
	"context"
	"errors"
	"testing"

	"InternLink/internal/application"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProfileStore struct {
	profiles map[primitive.ObjectID]*Profile
}

func (s *fakeProfileStore) FindByID(ctx context.Context, id primitive.ObjectID) (*Profile, error) {
	return s.profiles[id], nil
}

func (s *fakeProfileStore) UpdateContactInfo(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) error {
	profile, ok := s.profiles[id]
	if !ok {
		return ErrNotFound
	}
	profile.DOB = update.DOB
	profile.Address = update.Address
	profile.Contact = update.Contact
	return nil
}

type fakeApplicationLister struct {
	apps map[string][]*application.Application
}

func (l *fakeApplicationLister) ListForApplicant(ctx context.Context, userID string) ([]*application.Application, error) {
	return l.apps[userID], nil
}

func TestGetReturnsProfileAndOwnApplications(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeProfileStore{profiles: map[primitive.ObjectID]*Profile{
		id: {ID: id, UserID: "anna@rajagiri.edu.in", Name: "Anna", Department: "CS", Year: 3},
	}}
	lister := &fakeApplicationLister{apps: map[string][]*application.Application{
		"anna@rajagiri.edu.in": {
			{Company: "Acme", Title: "Backend Intern", Status: application.StatusPending},
		},
		"other@rajagiri.edu.in": {
			{Company: "Globex", Title: "Design Intern", Status: application.StatusApproved},
		},
	}}
	service := NewProfileService(store, lister)

	view, err := service.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Profile.Name != "Anna" {
		t.Fatalf("unexpected profile: %+v", view.Profile)
	}
	if len(view.Applications) != 1 || view.Applications[0].Company != "Acme" {
		t.Fatalf("expected only the viewer's applications, got %+v", view.Applications)
	}
}

func TestGetMissingProfile(t *testing.T) {
	service := NewProfileService(&fakeProfileStore{profiles: map[primitive.ObjectID]*Profile{}}, &fakeApplicationLister{})

	_, err := service.Get(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTouchesEditableSubsetOnly(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeProfileStore{profiles: map[primitive.ObjectID]*Profile{
		id: {ID: id, UserID: "anna@rajagiri.edu.in", Name: "Anna", Department: "CS", Year: 3},
	}}
	service := NewProfileService(store, &fakeApplicationLister{})

	updated, err := service.Update(context.Background(), id, ProfileUpdate{
		DOB:     "2004-05-01",
		Address: "Hostel B",
		Contact: "9876543210",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DOB != "2004-05-01" || updated.Address != "Hostel B" || updated.Contact != "9876543210" {
		t.Fatalf("editable fields not updated: %+v", updated)
	}
	if updated.Name != "Anna" || updated.Department != "CS" || updated.Year != 3 {
		t.Fatalf("read-only fields must not change: %+v", updated)
	}
}
