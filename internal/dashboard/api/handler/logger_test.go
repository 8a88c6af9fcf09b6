package handler

import (
	"errors"
	"net/http"
	"testing"

	"ritual/internal/dashboard/api/middleware"
	"ritual/internal/dashboard/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_LoggingError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name      string
		claims    interface{}
		hasUserID bool
	}{
		{
			name:      "With claims",
			claims:    jwt.MapClaims{"user_id": "1", "permission": model.PermissionAdmin},
			hasUserID: true,
		},
		{
			name:   "Without claims",
			claims: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			l := NewLogger(zap.New(core))

			_, c := setupTestContext(t, http.MethodGet, "/servers", nil)
			if tc.claims != nil {
				c.Set(middleware.JWTClaimsContextKey, tc.claims)
			}

			l.LoggingError(c, errors.New("db down"), "failed to list servers", zap.ErrorLevel)

			entries := logs.All()
			assert.Len(t, entries, 1)
			assert.Equal(t, "failed to list servers", entries[0].Message)

			fields := entries[0].ContextMap()
			assert.Equal(t, "db down", fields["error"])
			assert.Equal(t, http.MethodGet, fields["http_method"])
			assert.Equal(t, "/servers", fields["http_path"])
			if tc.hasUserID {
				assert.Equal(t, "1", fields["user_id"])
			} else {
				assert.NotContains(t, fields, "user_id")
			}
		})
	}
}
