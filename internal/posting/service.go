package posting

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrNotFound       = errors.New("posting not found")
	ErrMissingCompany = errors.New("company is required")
	// ErrForbidden means the posting belongs to another company. The original
	// console deleted blindly; the ownership check is enforced here on purpose.
	ErrForbidden = errors.New("posting belongs to another company")
)

const skillSlots = 3

// PostingStore is the repository surface the service depends on.
type PostingStore interface {
	FindAll(ctx context.Context) ([]*Posting, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Posting, error)
	FindByCompany(ctx context.Context, company string) ([]*Posting, error)
	Create(ctx context.Context, posting *Posting) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PostingService struct {
	store PostingStore
	log   *zap.Logger
}

func NewPostingService(store PostingStore, log *zap.Logger) *PostingService {
	return &PostingService{store: store, log: log}
}

// List loads the full collection and filters it in memory. There is no
// pagination and no server-side filtering; the collection is campus-sized.
func (s *PostingService) List(ctx context.Context, filter Filter) ([]*Posting, error) {
	postings, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(postings), nil
}

func (s *PostingService) Get(ctx context.Context, id primitive.ObjectID) (*Posting, error) {
	posting, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if posting == nil {
		return nil, ErrNotFound
	}
	return posting, nil
}

func (s *PostingService) ListForCompany(ctx context.Context, company string) ([]*Posting, error) {
	return s.store.FindByCompany(ctx, company)
}

// CreateForCompany publishes a posting owned by the caller's company. Only
// the company is validated; every other field is accepted as given.
func (s *PostingService) CreateForCompany(ctx context.Context, company string, posting *Posting) error {
	if company == "" {
		return ErrMissingCompany
	}
	posting.ID = primitive.NilObjectID
	posting.Company = company
	posting.Skills = normalizeSkills(posting.Skills)
	return s.store.Create(ctx, posting)
}

// Remove hard-deletes a posting after verifying it belongs to the caller's
// company. Applications that reference it are left in place.
func (s *PostingService) Remove(ctx context.Context, id primitive.ObjectID, company string) error {
	posting, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if posting == nil {
		return ErrNotFound
	}
	if posting.Company != company {
		return ErrForbidden
	}
	return s.store.Delete(ctx, id)
}

func normalizeSkills(skills []string) []string {
	fixed := make([]string, skillSlots)
	copy(fixed, skills)
	return fixed
}
