package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials means no identity in either class matched.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidDomain means an intern's credentials matched but the login id
	// is not an institutional address. Distinct from not-found on purpose.
	ErrInvalidDomain = errors.New("invalid email domain for intern account")
	ErrValidation    = errors.New("missing required field")
)

const defaultInternDomain = "@rajagiri.edu.in"

// IdentityStore is the slice of the identity collections the service needs.
type IdentityStore interface {
	ListInterns(ctx context.Context) ([]*Intern, error)
	ListRecruiters(ctx context.Context) ([]*Recruiter, error)
	CreateIntern(ctx context.Context, intern *Intern) error
	CreateRecruiter(ctx context.Context, recruiter *Recruiter) error
}

type AuthService struct {
	store  IdentityStore
	domain string
	log    *zap.Logger
}

func NewAuthService(store IdentityStore, log *zap.Logger) *AuthService {
	domain := os.Getenv("INTERN_EMAIL_DOMAIN")
	if domain == "" {
		domain = defaultInternDomain
	}
	return &AuthService{store: store, domain: domain, log: log}
}

// Authenticate scans the intern collection first, then the recruiter
// collection. An intern match always wins a cross-class login id collision,
// and a matched intern with a non-institutional login id is rejected without
// ever consulting the recruiter collection.
func (s *AuthService) Authenticate(ctx context.Context, cred Credential) (*Identity, error) {
	interns, err := s.store.ListInterns(ctx)
	if err != nil {
		return nil, err
	}
	for _, intern := range interns {
		if intern.UserID != cred.UserID || !CheckPasswordHash(cred.Password, intern.PasswordHash) {
			continue
		}
		if !strings.HasSuffix(intern.UserID, s.domain) {
			return nil, ErrInvalidDomain
		}
		return &Identity{
			ID:     intern.ID.Hex(),
			UserID: intern.UserID,
			Name:   intern.Name,
			Class:  ClassIntern,
		}, nil
	}

	recruiters, err := s.store.ListRecruiters(ctx)
	if err != nil {
		return nil, err
	}
	for _, recruiter := range recruiters {
		if recruiter.UserID != cred.UserID || !CheckPasswordHash(cred.Password, recruiter.PasswordHash) {
			continue
		}
		return &Identity{
			ID:      recruiter.ID.Hex(),
			UserID:  recruiter.UserID,
			Name:    recruiter.Company,
			Company: recruiter.Company,
			Class:   ClassRecruiter,
		}, nil
	}

	return nil, ErrInvalidCredentials
}

// Login authenticates and issues the session token the client carries.
func (s *AuthService) Login(ctx context.Context, cred Credential) (string, *Identity, error) {
	identity, err := s.Authenticate(ctx, cred)
	if err != nil {
		return "", nil, err
	}
	token, err := GenerateJWT(identity, time.Hour*24)
	if err != nil {
		s.log.Error("Token not generated", zap.Error(err))
		return "", nil, errors.New("token not generated")
	}
	return token, identity, nil
}

// Register writes straight into the class collection. Login ids are not
// checked for uniqueness across signups; the scan order of Authenticate
// decides which duplicate wins.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	if req.UserID == "" || req.Password == "" {
		return fmt.Errorf("%w: user_id and password", ErrValidation)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	switch strings.ToLower(req.Role) {
	case ClassIntern:
		return s.store.CreateIntern(ctx, &Intern{
			UserID:       req.UserID,
			PasswordHash: hash,
			Name:         req.Name,
			Department:   req.Department,
			UID:          req.UID,
			Year:         req.Year,
		})
	case ClassRecruiter:
		if req.Company == "" {
			return fmt.Errorf("%w: company", ErrValidation)
		}
		return s.store.CreateRecruiter(ctx, &Recruiter{
			UserID:       req.UserID,
			PasswordHash: hash,
			Company:      req.Company,
		})
	default:
		return fmt.Errorf("%w: role must be intern or recruiter", ErrValidation)
	}
}
