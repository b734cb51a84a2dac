package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/hogpulse/internal/domain/dto"
	"github.com/guttosm/hogpulse/internal/domain/errs"
	"github.com/guttosm/hogpulse/internal/middleware"
	"github.com/guttosm/hogpulse/internal/service"
)

const msgSubmitted = "Price submitted successfully!"

// Handler provides HTTP handlers for the price, user and auth endpoints.
//
// Responsibilities:
//   - Read query parameters, path parameters and JSON bodies
//   - Delegate to the service layer with the request context
//   - Translate results into response DTOs
//   - Push service errors to middleware.ErrorHandler via c.Error
type Handler struct {
	prices      service.AggregateService
	submissions service.SubmissionService
	profiles    service.ProfileService

	// requireUserForSubmit rejects anonymous submissions when set.
	requireUserForSubmit bool
}

// Option customises a Handler.
type Option func(*Handler)

// WithRequireUserForSubmit makes POST /prices/submit reject anonymous callers.
func WithRequireUserForSubmit(required bool) Option {
	return func(h *Handler) { h.requireUserForSubmit = required }
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - prices: aggregation engine and regional listing.
//   - submissions: price intake and submission history.
//   - profiles: profile management and identity exchange.
//   - opts: optional behaviour switches.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(prices service.AggregateService, submissions service.SubmissionService, profiles service.ProfileService, opts ...Option) *Handler {
	h := &Handler{prices: prices, submissions: submissions, profiles: profiles}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GetAggregatedPrices handles GET /api/v1/prices/aggregated.
//
// Query Parameters:
//   - region (string, required): exact region name.
//   - city (string, required): exact city name.
//
// Responses:
//   - 200 OK: per-status averages; both null plus a message when the location has no rows.
//   - 400 Bad Request: region or city missing.
//   - 500 Internal Server Error: datastore failure.
//
// GetAggregatedPrices godoc
// @Summary      Aggregated prices for a location
// @Description  Mean price per kg, sample size and last update for verified and unverified observations of one region and city
// @Tags         prices
// @Produce      json
// @Param        region  query     string  true  "Region" example(Region III)
// @Param        city    query     string  true  "City" example(San Fernando)
// @Success      200     {object}  dto.AggregatedPricesResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse             "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse             "Internal Error"
// @Router       /api/v1/prices/aggregated [get]
func (h *Handler) GetAggregatedPrices(c *gin.Context) {
	agg, err := h.prices.GetAggregatedPrices(c.Request.Context(), c.Query("region"), c.Query("city"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromLocationAggregate(*agg))
}

// GetRegionalPrices handles GET /api/v1/prices/regional.
//
// GetRegionalPrices godoc
// @Summary      Regional price listing
// @Description  Per-region verified and unverified averages, optionally filtered by a case-insensitive region substring and sorted
// @Tags         prices
// @Produce      json
// @Param        sort    query     string  false  "Sort key" Enums(region, verifiedAverage, unverifiedAverage, lastUpdated)
// @Param        order   query     string  false  "Sort direction" Enums(asc, desc)
// @Param        search  query     string  false  "Region substring" example(iii)
// @Success      200     {object}  dto.RegionalPricesResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse           "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse           "Internal Error"
// @Router       /api/v1/prices/regional [get]
func (h *Handler) GetRegionalPrices(c *gin.Context) {
	listing, err := h.prices.GetRegionalPrices(c.Request.Context(), service.RegionalQuery{
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
		Search: c.Query("search"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRegionalListing(*listing))
}

// SubmitPrice handles POST /api/v1/prices/submit.
//
// The caller identity, when present, is taken from the bearer token; the stored
// row is always unverified whatever the body says.
//
// SubmitPrice godoc
// @Summary      Submit a price observation
// @Description  Validates and stores a new unverified price observation
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SubmitPriceRequest   true  "Observation"
// @Success      201   {object}  dto.SubmitPriceResponse  "Created"
// @Failure      400   {object}  dto.ErrorResponse        "Bad Request"
// @Failure      401   {object}  dto.ErrorResponse        "Unauthorized"
// @Failure      500   {object}  dto.ErrorResponse        "Internal Error"
// @Security     BearerAuth
// @Router       /api/v1/prices/submit [post]
func (h *Handler) SubmitPrice(c *gin.Context) {
	var userID *string
	if id, ok := middleware.UserFromContext(c); ok {
		userID = &id.UserID
	} else if h.requireUserForSubmit {
		_ = c.Error(errs.ErrUnauthorized)
		return
	}

	var req dto.SubmitPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errs.Invalid("body", "must be a valid JSON object"))
		return
	}

	obs, err := h.submissions.SubmitPrice(c.Request.Context(), userID, req.Draft())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitPriceResponse{
		Success: true,
		Message: msgSubmitted,
		Data:    dto.FromObservation(*obs),
	})
}
