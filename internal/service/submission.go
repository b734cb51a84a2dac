package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/hogpulse/internal/domain/errs"
	"github.com/guttosm/hogpulse/internal/domain/models"
	"github.com/guttosm/hogpulse/internal/events"
	"github.com/guttosm/hogpulse/internal/logger"
	"github.com/guttosm/hogpulse/internal/storage"
)

// Paging bounds for submission history.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SubmissionPage is one page of a user's submission history.
type SubmissionPage struct {
	Items []models.PriceObservation
	Total int64
	Page  int
	Limit int
}

// SubmissionService handles price intake and the caller's own history.
type SubmissionService interface {
	SubmitPrice(ctx context.Context, userID *string, draft models.PriceDraft) (*models.PriceObservation, error)
	ListUserSubmissions(ctx context.Context, userID string, page, limit int) (*SubmissionPage, error)
	GetUserSubmission(ctx context.Context, userID, id string) (*models.PriceObservation, error)
}

type submissionService struct {
	repo      storage.PriceRepository
	publisher events.Publisher
	now       func() time.Time
}

// NewSubmissionService builds a SubmissionService. A nil publisher drops events.
func NewSubmissionService(repo storage.PriceRepository, publisher events.Publisher) SubmissionService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &submissionService{repo: repo, publisher: publisher, now: time.Now}
}

// SubmitPrice validates the draft, stores it as unverified and announces it.
//
// Returns:
//   - *models.PriceObservation: the stored row with server timestamps.
//   - error: ValidationError listing every failing field (nothing is written),
//     or StorageError when the insert fails.
//
// A failed event publish is logged; the committed row is still returned.
func (s *submissionService) SubmitPrice(ctx context.Context, userID *string, draft models.PriceDraft) (*models.PriceObservation, error) {
	obs, err := BuildObservation(draft, userID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.repo.InsertObservation(ctx, &obs); err != nil {
		return nil, errs.Storage("insert observation", err)
	}

	if err := s.publisher.PublishPriceSubmitted(ctx, events.NewPriceSubmitted(obs)); err != nil {
		logger.L().Warn().Err(err).Str("observation_id", obs.ID).Msg("failed to publish price.submitted")
	}
	return &obs, nil
}

// ListUserSubmissions pages through userID's rows, newest first.
// page must be >= 1 and limit within 1..MaxPageSize; zero values take the defaults.
func (s *submissionService) ListUserSubmissions(ctx context.Context, userID string, page, limit int) (*SubmissionPage, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	v := &errs.ValidationError{}
	if page < 1 {
		v.Add("page", "must be at least 1")
	}
	if limit < 1 || limit > MaxPageSize {
		v.Add("limit", fmt.Sprintf("must be between 1 and %d", MaxPageSize))
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	rows, total, err := s.repo.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, errs.Storage("list submissions", err)
	}
	return &SubmissionPage{Items: rows, Total: total, Page: page, Limit: limit}, nil
}

// GetUserSubmission returns one row owned by userID. Rows owned by someone else are reported as not found.
func (s *submissionService) GetUserSubmission(ctx context.Context, userID, id string) (*models.PriceObservation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errs.Invalid("id", "must be a valid UUID")
	}
	obs, err := s.repo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, errs.Storage("get submission", err)
	}
	if obs == nil {
		return nil, fmt.Errorf("submission %s: %w", id, errs.ErrNotFound)
	}
	return obs, nil
}
