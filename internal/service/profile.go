package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/hogpulse/internal/auth"
	"github.com/guttosm/hogpulse/internal/domain/errs"
	"github.com/guttosm/hogpulse/internal/domain/models"
	"github.com/guttosm/hogpulse/internal/identity"
	"github.com/guttosm/hogpulse/internal/storage"
)

// ErrUnknownProvider is returned when an exchange names a provider with no adapter.
var ErrUnknownProvider = errors.New("unknown identity provider")

// Session is the outcome of an identity exchange.
type Session struct {
	Token     string
	ExpiresIn time.Duration
	Profile   models.Profile
}

// ProfileService manages user profiles and identity-provider logins.
type ProfileService interface {
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id string, patch models.ProfilePatch) (*models.Profile, error)
	ExchangeIdentity(ctx context.Context, provider string, raw []byte) (*Session, error)
}

type profileService struct {
	repo     storage.ProfileRepository
	registry *identity.Registry
	issuer   *auth.Issuer
}

// NewProfileService builds a ProfileService.
func NewProfileService(repo storage.ProfileRepository, registry *identity.Registry, issuer *auth.Issuer) ProfileService {
	return &profileService{repo: repo, registry: registry, issuer: issuer}
}

func (s *profileService) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Storage("get profile", err)
	}
	if p == nil {
		return nil, fmt.Errorf("profile %s: %w", id, errs.ErrNotFound)
	}
	return p, nil
}

// UpdateProfile applies the non-nil fields of patch.
// An empty patch is a ValidationError; an email owned by another profile is a Conflict.
func (s *profileService) UpdateProfile(ctx context.Context, id string, patch models.ProfilePatch) (*models.Profile, error) {
	if patch.Empty() {
		return nil, errs.Invalid("body", "at least one field must be provided")
	}
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, errs.Storage("update profile", err)
	}
	if p == nil {
		return nil, fmt.Errorf("profile %s: %w", id, errs.ErrNotFound)
	}
	return p, nil
}

// ExchangeIdentity maps a provider payload, upserts the profile by email and issues a token for it.
func (s *profileService) ExchangeIdentity(ctx context.Context, provider string, raw []byte) (*Session, error) {
	adapter, ok := s.registry.Lookup(provider)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	ext, err := adapter.Map(raw)
	if err != nil {
		return nil, errs.Invalid("payload", err.Error())
	}

	p, err := s.repo.UpsertExternal(ctx, models.Profile{
		ID:          uuid.NewString(),
		FirstName:   optional(ext.FirstName),
		LastName:    optional(ext.LastName),
		DisplayName: optional(ext.DisplayName),
		Email:       ext.Email,
		Provider:    optional(ext.Provider),
		ProviderID:  optional(ext.ProviderID),
		AvatarURL:   optional(ext.AvatarURL),
	})
	if err != nil {
		return nil, errs.Storage("upsert profile", err)
	}

	token, err := s.issuer.Issue(p.ID, p.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: token, ExpiresIn: s.issuer.TTL(), Profile: *p}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
