package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"ritual/internal/dashboard/api/dto/request"
	"ritual/internal/dashboard/api/middleware"
	apperrors "ritual/internal/dashboard/errors"
	mockservice "ritual/internal/dashboard/mocks/service"
	"ritual/internal/dashboard/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func adminClaims() jwt.MapClaims {
	return jwt.MapClaims{"user_id": "1", "permission": model.PermissionAdmin}
}

func TestUserHandler_GetUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockUserService(ctrl)
	mockService.EXPECT().GetAllUsers(gomock.Any()).Return([]model.User{
		{ID: "1", Email: "admin@ritual.com", Name: "Admin", Permission: model.PermissionAdmin, CreatedAt: time.Now()},
		{ID: "2", Email: "reader@ritual.com", Name: "Reader", Permission: model.PermissionRead, CreatedAt: time.Now()},
	}, nil)

	h := NewUserHandler(NewLogger(zap.NewNop()), mockService)
	w, c := setupTestContext(t, http.MethodGet, "/users", nil)

	h.GetUsers()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"admin@ritual.com"`)
	assert.Contains(t, w.Body.String(), `"email":"reader@ritual.com"`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUserHandler_GetMe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().GetUserById(gomock.Any(), "1").Return(model.User{ID: "1", Email: "admin@ritual.com", Permission: model.PermissionAdmin}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"email":"admin@ritual.com"`,
		},
		{
			name: "Error User not found",
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().GetUserById(gomock.Any(), "1").Return(model.User{}, apperrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"User not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockUserService(ctrl)
			tc.setupMocks(mockService)

			h := NewUserHandler(NewLogger(zap.NewNop()), mockService)
			w, c := setupTestContext(t, http.MethodGet, "/users/me", nil)
			c.Set(middleware.JWTClaimsContextKey, adminClaims())

			h.GetMe()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestUserHandler_InviteUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	inviteReq := request.InviteUserRequest{
		Email:      "new@ritual.com",
		Permission: model.PermissionRead,
	}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: inviteReq,
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().InviteUser(gomock.Any(), "1", "new@ritual.com", model.PermissionRead).
					Return(model.User{ID: "3", Email: "new@ritual.com", Name: "new@ritual.com", Permission: model.PermissionRead}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"email":"new@ritual.com"`,
		},
		{
			name:           "Error Invalid email",
			body:           request.InviteUserRequest{Email: "not-an-email", Permission: model.PermissionRead},
			setupMocks:     func(mockService *mockservice.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Email field is not a valid email"`,
		},
		{
			name: "Error Invalid permission",
			body: request.InviteUserRequest{Email: "new@ritual.com", Permission: "SUPERUSER"},
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().InviteUser(gomock.Any(), "1", "new@ritual.com", "SUPERUSER").Return(model.User{}, apperrors.ErrInvalidPermission)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid permission"`,
		},
		{
			name: "Error User already exists",
			body: inviteReq,
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().InviteUser(gomock.Any(), "1", "new@ritual.com", model.PermissionRead).Return(model.User{}, apperrors.ErrUserAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"message":"User already exists"`,
		},
		{
			name: "Error Internal server error",
			body: inviteReq,
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().InviteUser(gomock.Any(), "1", "new@ritual.com", model.PermissionRead).Return(model.User{}, errors.New("smtp down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockUserService(ctrl)
			tc.setupMocks(mockService)

			h := NewUserHandler(NewLogger(zap.NewNop()), mockService)
			w, c := setupTestContext(t, http.MethodPost, "/users", jsonBody(t, tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Set(middleware.JWTClaimsContextKey, adminClaims())

			h.InviteUser()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestUserHandler_ChangePermission(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: request.ChangePermissionRequest{Permission: model.PermissionWrite},
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().ChangePermission(gomock.Any(), "2", model.PermissionWrite).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Permission updated successfully"`,
		},
		{
			name: "Error Last admin",
			body: request.ChangePermissionRequest{Permission: model.PermissionRead},
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().ChangePermission(gomock.Any(), "2", model.PermissionRead).Return(apperrors.ErrOnlyAdmin)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"message":"Cannot demote the only admin"`,
		},
		{
			name: "Error Permission unchanged",
			body: request.ChangePermissionRequest{Permission: model.PermissionWrite},
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().ChangePermission(gomock.Any(), "2", model.PermissionWrite).Return(apperrors.ErrPermissionUnchanged)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"message":"User already has this permission"`,
		},
		{
			name: "Error User not found",
			body: request.ChangePermissionRequest{Permission: model.PermissionWrite},
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().ChangePermission(gomock.Any(), "2", model.PermissionWrite).Return(apperrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"User not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockUserService(ctrl)
			tc.setupMocks(mockService)

			h := NewUserHandler(NewLogger(zap.NewNop()), mockService)
			w, c := setupTestContext(t, http.MethodPut, "/users/2/permission", jsonBody(t, tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = gin.Params{{Key: "id", Value: "2"}}

			h.ChangePermission()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestUserHandler_UpdateMe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Name and password",
			body: request.UpdateUserRequest{Name: "New Name", Password: "n3w-password"},
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().UpdateName(gomock.Any(), "1", "New Name").Return(nil)
				mockService.EXPECT().SetPassword(gomock.Any(), "1", "n3w-password").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"User updated successfully"`,
		},
		{
			name: "Success Name only",
			body: request.UpdateUserRequest{Name: "New Name"},
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().UpdateName(gomock.Any(), "1", "New Name").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"User updated successfully"`,
		},
		{
			name:           "Error Empty update",
			body:           request.UpdateUserRequest{},
			setupMocks:     func(mockService *mockservice.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Nothing to update"`,
		},
		{
			name:           "Error Name too short",
			body:           request.UpdateUserRequest{Name: "ab"},
			setupMocks:     func(mockService *mockservice.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Name field must have at least 3 characters"`,
		},
		{
			name:           "Error Password too short",
			body:           request.UpdateUserRequest{Password: "short"},
			setupMocks:     func(mockService *mockservice.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Password field must have at least 8 characters"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockUserService(ctrl)
			tc.setupMocks(mockService)

			h := NewUserHandler(NewLogger(zap.NewNop()), mockService)
			w, c := setupTestContext(t, http.MethodPatch, "/users/me", jsonBody(t, tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Set(middleware.JWTClaimsContextKey, adminClaims())

			h.UpdateMe()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().DeleteUser(gomock.Any(), "2").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"User deleted successfully"`,
		},
		{
			name: "Error Last admin",
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().DeleteUser(gomock.Any(), "2").Return(apperrors.ErrOnlyAdmin)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"message":"Cannot delete the only admin"`,
		},
		{
			name: "Error User not found",
			setupMocks: func(mockService *mockservice.MockUserService) {
				mockService.EXPECT().DeleteUser(gomock.Any(), "2").Return(apperrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"User not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockUserService(ctrl)
			tc.setupMocks(mockService)

			h := NewUserHandler(NewLogger(zap.NewNop()), mockService)
			w, c := setupTestContext(t, http.MethodDelete, "/users/2", nil)
			c.Params = gin.Params{{Key: "id", Value: "2"}}

			h.DeleteUser()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}
