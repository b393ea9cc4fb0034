package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCheckUserPermission(t *testing.T) {
	tests := []struct {
		name           string
		scopesHeader   string
		requiredScope  string
		expectedStatus int
	}{
		{
			name:           "ScopePresent",
			scopesHeader:   "servers:read,servers:start",
			requiredScope:  "servers:start",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "ScopeMissing",
			scopesHeader:   "servers:read",
			requiredScope:  "servers:start",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "EmptyHeader",
			scopesHeader:   "",
			requiredScope:  "servers:start",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.scopesHeader != "" {
				c.Request.Header.Set("X-User-Scopes", tt.scopesHeader)
			}

			handled := false
			m := NewAuthMiddleware()
			m.CheckUserPermission(tt.requiredScope)(c)
			if !c.IsAborted() {
				handled = true
			}

			if tt.expectedStatus == http.StatusOK {
				assert.True(t, handled)
			} else {
				assert.True(t, c.IsAborted())
				assert.Equal(t, tt.expectedStatus, w.Code)
			}
		})
	}
}
