package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_HeaderIsSet(t *testing.T) {
	cases := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{name: "generated"},
		{name: "inbound uuid reused", inbound: "123e4567-e89b-12d3-a456-426614174000", keep: true},
		{name: "inbound garbage replaced", inbound: "<script>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RequestID())
			var seen string
			r.GET("/", func(c *gin.Context) {
				seen = c.GetString(RequestIDKey)
				c.String(200, "ok")
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.inbound != "" {
				req.Header.Set(RequestIDHeader, tc.inbound)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == "" || got != seen {
				t.Fatalf("header %q context %q", got, seen)
			}
			if (got == tc.inbound) != tc.keep {
				t.Fatalf("inbound %q handled wrongly, got %q", tc.inbound, got)
			}
		})
	}
}
