package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockhandler "ritual/internal/dashboard/mocks/api/handler"
	mockmiddleware "ritual/internal/dashboard/mocks/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetUpAuthRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockAuthHandler(ctrl)
	mockMiddleware := mockmiddleware.NewMockAuthMiddleware(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}
	nextMiddleware := func(c *gin.Context) {
		c.Next()
	}
	mockMiddleware.EXPECT().ValidateAndExtractJwt().Return(nextMiddleware).AnyTimes()
	mockHandler.EXPECT().Login().Return(emptySuccessHandler)
	mockHandler.EXPECT().Logout().Return(emptySuccessHandler)
	mockHandler.EXPECT().Refresh().Return(emptySuccessHandler)

	SetUpAuthRoutes(r, mockHandler, mockMiddleware)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Login Route",
			method:         http.MethodPost,
			path:           "/auth/login",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Logout Route",
			method:         http.MethodPost,
			path:           "/auth/logout",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Refresh Route",
			method:         http.MethodPost,
			path:           "/auth/refresh",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
