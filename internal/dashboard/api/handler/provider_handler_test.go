package handler

import (
	"errors"
	"net/http"
	"testing"

	"ritual/internal/dashboard/api/dto/request"
	apperrors "ritual/internal/dashboard/errors"
	mockservice "ritual/internal/dashboard/mocks/service"
	"ritual/internal/dashboard/service"
	"ritual/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestProviderHandler_GetKeys(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockProviderService(ctrl)
	mockService.EXPECT().GetAllKeys(gomock.Any()).Return(map[string]service.ProviderKeys{
		"PAPERSPACE": {Key: "ps-key", Email: "owner@ritual.com"},
	}, nil)

	h := NewProviderHandler(NewLogger(zap.NewNop()), mockService)
	w, c := setupTestContext(t, http.MethodGet, "/providers/keys", nil)

	h.GetKeys()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"PAPERSPACE":{"key":"ps-key","email":"owner@ritual.com"}`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestProviderHandler_UpdateKeys(t *testing.T) {
	gin.SetMode(gin.TestMode)

	updateReq := request.UpdateKeysRequest{
		"PAPERSPACE": {Key: "new-key", Email: "owner@ritual.com", Password: "hunter2"},
	}
	expectedKeys := map[string]service.ProviderKeys{
		"PAPERSPACE": {Key: "new-key", Email: "owner@ritual.com", Password: "hunter2"},
	}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockProviderService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: updateReq,
			setupMocks: func(mockService *mockservice.MockProviderService) {
				mockService.EXPECT().UpdateKeys(gomock.Any(), expectedKeys).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Provider keys updated successfully"`,
		},
		{
			name: "Error No key data provided",
			body: updateReq,
			setupMocks: func(mockService *mockservice.MockProviderService) {
				mockService.EXPECT().UpdateKeys(gomock.Any(), expectedKeys).Return(apperrors.ErrNoKeyDataProvided)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"No new key data provided"`,
		},
		{
			name: "Error Provider not supported",
			body: updateReq,
			setupMocks: func(mockService *mockservice.MockProviderService) {
				mockService.EXPECT().UpdateKeys(gomock.Any(), expectedKeys).Return(apperrors.ErrProviderNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Provider not supported"`,
		},
		{
			name: "Error Provider in use",
			body: updateReq,
			setupMocks: func(mockService *mockservice.MockProviderService) {
				mockService.EXPECT().UpdateKeys(gomock.Any(), expectedKeys).Return(apperrors.ErrProviderInUse)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"message":"Provider has provisioned servers`,
		},
		{
			name: "Error Invalid credentials",
			body: updateReq,
			setupMocks: func(mockService *mockservice.MockProviderService) {
				mockService.EXPECT().UpdateKeys(gomock.Any(), expectedKeys).Return(apperrors.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Provider rejected the supplied credentials"`,
		},
		{
			name:           "Error Invalid JSON body",
			body:           `{"PAPERSPACE":`,
			setupMocks:     func(mockService *mockservice.MockProviderService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request body"`,
		},
		{
			name: "Error Internal server error",
			body: updateReq,
			setupMocks: func(mockService *mockservice.MockProviderService) {
				mockService.EXPECT().UpdateKeys(gomock.Any(), expectedKeys).Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockProviderService(ctrl)
			tc.setupMocks(mockService)

			h := NewProviderHandler(NewLogger(zap.NewNop()), mockService)
			w, c := setupTestContext(t, http.MethodPut, "/providers/keys", jsonBody(t, tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			h.UpdateKeys()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestProviderHandler_GetConfigurations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockProviderService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			setupMocks: func(mockService *mockservice.MockProviderService) {
				mockService.EXPECT().GetConfigurations(gomock.Any()).Return(map[string][]provider.Configuration{
					"PAPERSPACE": {{ID: "aqsmaiwp", Gpu: provider.GPUSpecifications{Model: "A4000", Count: 1}}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"aqsmaiwp"`,
		},
		{
			name: "Error Internal server error",
			setupMocks: func(mockService *mockservice.MockProviderService) {
				mockService.EXPECT().GetConfigurations(gomock.Any()).Return(nil, errors.New("provider down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockProviderService(ctrl)
			tc.setupMocks(mockService)

			h := NewProviderHandler(NewLogger(zap.NewNop()), mockService)
			w, c := setupTestContext(t, http.MethodGet, "/providers/configurations", nil)

			h.GetConfigurations()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}
