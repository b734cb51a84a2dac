package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/hogpulse/internal/domain/dto"
	"github.com/guttosm/hogpulse/internal/domain/errs"
	"github.com/guttosm/hogpulse/internal/middleware"
	"github.com/guttosm/hogpulse/internal/service"
)

// ExchangeIdentity handles POST /api/v1/auth/{provider}/exchange.
//
// The body is the provider's raw user document (Google userinfo, Facebook /me).
// Only trusted callers holding the internal key reach this handler.
//
// ExchangeIdentity godoc
// @Summary      Exchange a provider identity for a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        provider        path      string  true  "Identity provider" Enums(google, facebook)
// @Param        X-Internal-Key  header    string  true  "Internal caller key"
// @Param        body            body      object  true  "Provider user document"
// @Success      200             {object}  dto.TokenResponse  "Success"
// @Failure      400             {object}  dto.ErrorResponse  "Bad Request"
// @Failure      401             {object}  dto.ErrorResponse  "Unauthorized"
// @Failure      404             {object}  dto.ErrorResponse  "Unknown provider"
// @Router       /api/v1/auth/{provider}/exchange [post]
func (h *Handler) ExchangeIdentity(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		_ = c.Error(errs.Invalid("body", "must be a provider user document"))
		return
	}

	sess, err := h.profiles.ExchangeIdentity(c.Request.Context(), c.Param("provider"), raw)
	if errors.Is(err, service.ErrUnknownProvider) {
		middleware.AbortWithError(c, http.StatusNotFound, "unknown identity provider", nil)
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:     sess.Token,
		ExpiresIn: int64(sess.ExpiresIn.Seconds()),
		Profile:   dto.FromProfile(sess.Profile),
	})
}
