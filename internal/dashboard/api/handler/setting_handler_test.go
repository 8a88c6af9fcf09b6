package handler

import (
	"errors"
	"net/http"
	"testing"

	mockservice "ritual/internal/dashboard/mocks/service"
	"ritual/internal/dashboard/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSettingHandler_GetConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockSettingService(ctrl)

	config := make(map[string]string, len(model.RedactOptions))
	for _, option := range model.RedactOptions {
		config[option.Key] = option.Default
	}
	config["redact_email"] = model.RedactBlock
	mockService.EXPECT().GetConfig(gomock.Any()).Return(config, nil)

	h := NewSettingHandler(NewLogger(zap.NewNop()), mockService)
	w, c := setupTestContext(t, http.MethodGet, "/settings", nil)

	h.GetConfig()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"key":"redact_email","name":"Email","value":"BLOCK"}`)
	assert.Contains(t, w.Body.String(), `{"key":"redact_name","name":"Name","value":"PASSTHROUGH"}`)
}

func TestSettingHandler_UpdateConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockSettingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: map[string]string{"redact_email": model.RedactBlock},
			setupMocks: func(mockService *mockservice.MockSettingService) {
				mockService.EXPECT().UpdateConfig(gomock.Any(), map[string]string{"redact_email": model.RedactBlock}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Config updated successfully"`,
		},
		{
			name:           "Error Invalid JSON body",
			body:           `{"redact_email":`,
			setupMocks:     func(mockService *mockservice.MockSettingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request body"`,
		},
		{
			name: "Error Internal server error",
			body: map[string]string{"redact_email": model.RedactBlock},
			setupMocks: func(mockService *mockservice.MockSettingService) {
				mockService.EXPECT().UpdateConfig(gomock.Any(), map[string]string{"redact_email": model.RedactBlock}).Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockSettingService(ctrl)
			tc.setupMocks(mockService)

			h := NewSettingHandler(NewLogger(zap.NewNop()), mockService)
			w, c := setupTestContext(t, http.MethodPut, "/settings", jsonBody(t, tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			h.UpdateConfig()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}
