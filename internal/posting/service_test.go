package posting

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakePostingStore struct {
	postings map[primitive.ObjectID]*Posting
}

func newFakePostingStore() *fakePostingStore {
	return &fakePostingStore{postings: make(map[primitive.ObjectID]*Posting)}
}

func (s *fakePostingStore) FindAll(ctx context.Context) ([]*Posting, error) {
	var all []*Posting
	for _, p := range s.postings {
		all = append(all, p)
	}
	return all, nil
}

func (s *fakePostingStore) FindByID(ctx context.Context, id primitive.ObjectID) (*Posting, error) {
	return s.postings[id], nil
}

func (s *fakePostingStore) FindByCompany(ctx context.Context, company string) ([]*Posting, error) {
	var owned []*Posting
	for _, p := range s.postings {
		if p.Company == company {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (s *fakePostingStore) Create(ctx context.Context, posting *Posting) error {
	posting.ID = primitive.NewObjectID()
	s.postings[posting.ID] = posting
	return nil
}

func (s *fakePostingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := s.postings[id]; !ok {
		return errors.New("posting not found")
	}
	delete(s.postings, id)
	return nil
}

func TestCreateForCompanyRequiresCompany(t *testing.T) {
	service := NewPostingService(newFakePostingStore(), zap.NewNop())

	err := service.CreateForCompany(context.Background(), "", &Posting{Title: "Backend Intern"})
	if !errors.Is(err, ErrMissingCompany) {
		t.Fatalf("expected ErrMissingCompany, got %v", err)
	}
}

func TestCreateForCompanyStampsOwnerAndSkillSlots(t *testing.T) {
	store := newFakePostingStore()
	service := NewPostingService(store, zap.NewNop())

	posting := &Posting{Title: "Backend Intern", Skills: []string{"Go"}}
	if err := service.CreateForCompany(context.Background(), "Acme", posting); err != nil {
		t.Fatalf("create: %v", err)
	}

	stored := store.postings[posting.ID]
	if stored.Company != "Acme" {
		t.Fatalf("expected company Acme, got %q", stored.Company)
	}
	if len(stored.Skills) != 3 {
		t.Fatalf("expected 3 skill slots, got %d", len(stored.Skills))
	}
	if stored.Skills[0] != "Go" || stored.Skills[1] != "" || stored.Skills[2] != "" {
		t.Fatalf("unexpected skills: %v", stored.Skills)
	}
}

func TestRemoveChecksOwnership(t *testing.T) {
	store := newFakePostingStore()
	service := NewPostingService(store, zap.NewNop())

	posting := &Posting{Title: "Backend Intern"}
	if err := service.CreateForCompany(context.Background(), "Acme", posting); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := service.Remove(context.Background(), posting.ID, "Globex"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := store.postings[posting.ID]; !ok {
		t.Fatal("posting must survive a forbidden delete")
	}

	if err := service.Remove(context.Background(), posting.ID, "Acme"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, ok := store.postings[posting.ID]; ok {
		t.Fatal("posting not deleted")
	}
}

func TestRemoveMissingPosting(t *testing.T) {
	service := NewPostingService(newFakePostingStore(), zap.NewNop())

	err := service.Remove(context.Background(), primitive.NewObjectID(), "Acme")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetMissingPosting(t *testing.T) {
	service := NewPostingService(newFakePostingStore(), zap.NewNop())

	_, err := service.Get(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
