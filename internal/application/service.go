package application

import (
	"context"
	"errors"
	"fmt"

	"InternLink/internal/posting"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrNotFound       = errors.New("application not found")
	ErrAlreadyApplied = errors.New("already applied to this internship")
	// ErrNotPending means the application already carries a final status;
	// approved and rejected never reverse.
	ErrNotPending    = errors.New("application is not pending")
	ErrInvalidStatus = errors.New("status must be approved or rejected")
)

// ApplicationStore is the repository surface the service depends on.
type ApplicationStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*Application, error)
	FindByApplicantAndInternship(ctx context.Context, userID string, internshipID primitive.ObjectID) (*Application, error)
	ListByApplicant(ctx context.Context, userID string) ([]*Application, error)
	ListPendingByInternship(ctx context.Context, internshipID primitive.ObjectID) ([]*Application, error)
	Create(ctx context.Context, app *Application) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// PostingFinder resolves the posting an application targets.
type PostingFinder interface {
	Get(ctx context.Context, id primitive.ObjectID) (*posting.Posting, error)
}

// Mailer delivers the decision notification. A no-op implementation is fine.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

type ApplicationService struct {
	store    ApplicationStore
	postings PostingFinder
	mailer   Mailer
	log      *zap.Logger
}

func NewApplicationService(store ApplicationStore, postings PostingFinder, mailer Mailer, log *zap.Logger) *ApplicationService {
	return &ApplicationService{store: store, postings: postings, mailer: mailer, log: log}
}

// Apply creates a pending application for the viewer, denormalizing company
// and title from the posting. A second application for the same pair fails
// with ErrAlreadyApplied, whether it is caught by the pre-check or by the
// unique index underneath.
func (s *ApplicationService) Apply(ctx context.Context, userID string, internshipID primitive.ObjectID) (*Application, error) {
	p, err := s.postings.Get(ctx, internshipID)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.FindByApplicantAndInternship(ctx, userID, internshipID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	app := &Application{
		InternshipID: internshipID,
		Company:      p.Company,
		Title:        p.Title,
		UserID:       userID,
		Status:       StatusPending,
	}
	if err := s.store.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Status returns the viewer's application status for a posting, or the empty
// string when no application exists.
func (s *ApplicationService) Status(ctx context.Context, userID string, internshipID primitive.ObjectID) (string, error) {
	app, err := s.store.FindByApplicantAndInternship(ctx, userID, internshipID)
	if err != nil {
		return "", err
	}
	if app == nil {
		return "", nil
	}
	return app.Status, nil
}

func (s *ApplicationService) ListForApplicant(ctx context.Context, userID string) ([]*Application, error) {
	return s.store.ListByApplicant(ctx, userID)
}

func (s *ApplicationService) PendingForInternship(ctx context.Context, internshipID primitive.ObjectID) ([]*Application, error) {
	return s.store.ListPendingByInternship(ctx, internshipID)
}

// Decide flips a pending application to approved or rejected and notifies
// the applicant by email. Email failure is logged, never surfaced: the
// status change already happened.
func (s *ApplicationService) Decide(ctx context.Context, id primitive.ObjectID, status string) (*Application, error) {
	if status != StatusApproved && status != StatusRejected {
		return nil, ErrInvalidStatus
	}

	app, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}

	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	app.Status = status

	subject := fmt.Sprintf("Your application for %s", app.Title)
	body := fmt.Sprintf("Your application to %s for the position %s has been %s.", app.Company, app.Title, status)
	if err := s.mailer.SendEmail(app.UserID, subject, body); err != nil {
		s.log.Error("Failed to send decision email", zap.String("to", app.UserID), zap.Error(err))
	}

	return app, nil
}
