package auth

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type fakeIdentityStore struct {
	interns    []*Intern
	recruiters []*Recruiter
}

func (s *fakeIdentityStore) ListInterns(ctx context.Context) ([]*Intern, error) {
	return s.interns, nil
}

func (s *fakeIdentityStore) ListRecruiters(ctx context.Context) ([]*Recruiter, error) {
	return s.recruiters, nil
}

func (s *fakeIdentityStore) CreateIntern(ctx context.Context, intern *Intern) error {
	s.interns = append(s.interns, intern)
	return nil
}

func (s *fakeIdentityStore) CreateRecruiter(ctx context.Context, recruiter *Recruiter) error {
	s.recruiters = append(s.recruiters, recruiter)
	return nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func newTestService(t *testing.T, store IdentityStore) *AuthService {
	t.Helper()
	return NewAuthService(store, zap.NewNop())
}

func TestAuthenticateUnknownCredentials(t *testing.T) {
	store := &fakeIdentityStore{}
	service := newTestService(t, store)

	_, err := service.Authenticate(context.Background(), Credential{UserID: "nobody@rajagiri.edu.in", Password: "pw"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	store := &fakeIdentityStore{
		interns: []*Intern{{UserID: "anna@rajagiri.edu.in", PasswordHash: mustHash(t, "secret")}},
	}
	service := newTestService(t, store)

	_, err := service.Authenticate(context.Background(), Credential{UserID: "anna@rajagiri.edu.in", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateInternBadDomain(t *testing.T) {
	store := &fakeIdentityStore{
		interns: []*Intern{{UserID: "anna@gmail.com", PasswordHash: mustHash(t, "secret")}},
		// A recruiter with the same credentials must not be reached: the
		// intern scan already matched and rejected the attempt.
		recruiters: []*Recruiter{{UserID: "anna@gmail.com", PasswordHash: mustHash(t, "secret"), Company: "Acme"}},
	}
	service := newTestService(t, store)

	_, err := service.Authenticate(context.Background(), Credential{UserID: "anna@gmail.com", Password: "secret"})
	if !errors.Is(err, ErrInvalidDomain) {
		t.Fatalf("expected ErrInvalidDomain, got %v", err)
	}
}

func TestAuthenticateInternWinsCollision(t *testing.T) {
	store := &fakeIdentityStore{
		interns:    []*Intern{{UserID: "sam@rajagiri.edu.in", PasswordHash: mustHash(t, "secret"), Name: "Sam"}},
		recruiters: []*Recruiter{{UserID: "sam@rajagiri.edu.in", PasswordHash: mustHash(t, "secret"), Company: "Acme"}},
	}
	service := newTestService(t, store)

	identity, err := service.Authenticate(context.Background(), Credential{UserID: "sam@rajagiri.edu.in", Password: "secret"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if identity.Class != ClassIntern {
		t.Fatalf("expected intern class to win the collision, got %q", identity.Class)
	}
}

func TestAuthenticateRecruiter(t *testing.T) {
	store := &fakeIdentityStore{
		recruiters: []*Recruiter{{UserID: "hr@acme.com", PasswordHash: mustHash(t, "secret"), Company: "Acme"}},
	}
	service := newTestService(t, store)

	identity, err := service.Authenticate(context.Background(), Credential{UserID: "hr@acme.com", Password: "secret"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if identity.Class != ClassRecruiter || identity.Company != "Acme" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestRegisterRecruiterRequiresCompany(t *testing.T) {
	store := &fakeIdentityStore{}
	service := newTestService(t, store)

	err := service.Register(context.Background(), RegisterRequest{Role: "recruiter", UserID: "hr@acme.com", Password: "secret"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRegisterInternHashesPassword(t *testing.T) {
	store := &fakeIdentityStore{}
	service := newTestService(t, store)

	err := service.Register(context.Background(), RegisterRequest{
		Role:     "Intern",
		UserID:   "anna@rajagiri.edu.in",
		Password: "secret",
		Name:     "Anna",
		Year:     3,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(store.interns) != 1 {
		t.Fatalf("expected one intern, got %d", len(store.interns))
	}
	if store.interns[0].PasswordHash == "secret" {
		t.Fatal("password stored in plaintext")
	}
	if !CheckPasswordHash("secret", store.interns[0].PasswordHash) {
		t.Fatal("stored hash does not verify")
	}
}

func TestRegisterAllowsDuplicateLoginIDs(t *testing.T) {
	store := &fakeIdentityStore{}
	service := newTestService(t, store)

	req := RegisterRequest{Role: "intern", UserID: "anna@rajagiri.edu.in", Password: "secret"}
	if err := service.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := service.Register(context.Background(), req); err != nil {
		t.Fatalf("second register: %v", err)
	}
	if len(store.interns) != 2 {
		t.Fatalf("expected both signups stored, got %d", len(store.interns))
	}
}
