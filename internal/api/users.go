package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/hogpulse/internal/domain/dto"
	"github.com/guttosm/hogpulse/internal/domain/errs"
	"github.com/guttosm/hogpulse/internal/middleware"
	"github.com/guttosm/hogpulse/internal/service"
)

const msgProfileUpdated = "Profile updated successfully"

// GetProfile handles GET /api/v1/users/profile.
//
// GetProfile godoc
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse  "Success"
// @Failure      401  {object}  dto.ErrorResponse    "Unauthorized"
// @Failure      404  {object}  dto.ErrorResponse    "Not Found"
// @Security     BearerAuth
// @Router       /api/v1/users/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	id, _ := middleware.UserFromContext(c)
	p, err := h.profiles.GetProfile(c.Request.Context(), id.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromProfile(*p))
}

// UpdateProfile handles PATCH /api/v1/users/profile.
//
// UpdateProfile godoc
// @Summary      Update current user profile
// @Description  Only the provided fields change. userRoles entries must be hog_raiser, midman, trader or buyer.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateProfileRequest   true  "Fields to change"
// @Success      200   {object}  dto.UpdateProfileResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse          "Bad Request"
// @Failure      401   {object}  dto.ErrorResponse          "Unauthorized"
// @Failure      404   {object}  dto.ErrorResponse          "Not Found"
// @Failure      409   {object}  dto.ErrorResponse          "Email already in use"
// @Security     BearerAuth
// @Router       /api/v1/users/profile [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	id, _ := middleware.UserFromContext(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errs.Invalid("body", "must be a valid JSON object"))
		return
	}
	if err := service.ValidateStruct(req); err != nil {
		_ = c.Error(err)
		return
	}

	p, err := h.profiles.UpdateProfile(c.Request.Context(), id.UserID, req.Patch())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UpdateProfileResponse{
		Success: true,
		Message: msgProfileUpdated,
		User:    dto.FromProfile(*p),
	})
}

// ListSubmissions handles GET /api/v1/users/submissions.
//
// ListSubmissions godoc
// @Summary      Current user's submissions
// @Description  Newest first. page starts at 1; limit is 1..100 (default 20).
// @Tags         users
// @Produce      json
// @Param        page   query     int  false  "Page"  default(1)
// @Param        limit  query     int  false  "Page size"  default(20)
// @Success      200    {object}  dto.SubmissionsResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse        "Bad Request"
// @Failure      401    {object}  dto.ErrorResponse        "Unauthorized"
// @Security     BearerAuth
// @Router       /api/v1/users/submissions [get]
func (h *Handler) ListSubmissions(c *gin.Context) {
	id, _ := middleware.UserFromContext(c)

	v := &errs.ValidationError{}
	page := intQuery(c, "page", 1, v)
	limit := intQuery(c, "limit", service.DefaultPageSize, v)
	if err := v.OrNil(); err != nil {
		_ = c.Error(err)
		return
	}

	out, err := h.submissions.ListUserSubmissions(c.Request.Context(), id.UserID, page, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SubmissionsResponse{
		Submissions: dto.FromObservations(out.Items),
		Pagination:  dto.Pagination{Total: out.Total, Page: out.Page, Limit: out.Limit},
	})
}

// GetSubmission handles GET /api/v1/users/submissions/{id}.
//
// GetSubmission godoc
// @Summary      One of the current user's submissions
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Submission id (UUID)"
// @Success      200  {object}  dto.PriceObservationDTO  "Success"
// @Failure      400  {object}  dto.ErrorResponse        "Bad Request"
// @Failure      401  {object}  dto.ErrorResponse        "Unauthorized"
// @Failure      404  {object}  dto.ErrorResponse        "Not Found"
// @Security     BearerAuth
// @Router       /api/v1/users/submissions/{id} [get]
func (h *Handler) GetSubmission(c *gin.Context) {
	id, _ := middleware.UserFromContext(c)
	obs, err := h.submissions.GetUserSubmission(c.Request.Context(), id.UserID, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromObservation(*obs))
}

// intQuery reads an optional integer query parameter, recording a field error when it does not parse.
func intQuery(c *gin.Context, key string, def int, v *errs.ValidationError) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		v.Add(key, "must be an integer")
		return def
	}
	return n
}
