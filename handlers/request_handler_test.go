package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spikenet-labs/serverdesk/services"
	"github.com/stretchr/testify/assert"
)

func TestSubmitBindingMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/request-server", NewRequestHandler(&services.RequestService{}).Submit)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"invalid email", `{"email":"not-an-email","servername":"Hub"}`, "valid email address"},
		{"missing email", `{"servername":"Hub"}`, "valid email address"},
		{"email too long", `{"email":"` + strings.Repeat("a", 50) + `@example.com","servername":"Hub"}`, "Email must be 50 characters or less"},
		{"missing server name", `{"email":"player@example.com"}`, "enter a server name"},
		{"server name too long", `{"email":"player@example.com","servername":"` + strings.Repeat("x", 21) + `"}`, "Server name must be 20 characters or less"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/request-server", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}
