package handler

import (
	"errors"
	"fmt"
	"net/http"

	"ritual/internal/dashboard/api/dto/request"
	"ritual/internal/dashboard/api/dto/response"
	"ritual/internal/dashboard/api/middleware"
	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/model"
	"ritual/internal/dashboard/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

type UserHandler interface {
	GetUsers() gin.HandlerFunc
	GetMe() gin.HandlerFunc
	InviteUser() gin.HandlerFunc
	ChangePermission() gin.HandlerFunc
	UpdateMe() gin.HandlerFunc
	DeleteUser() gin.HandlerFunc
}

type userHandler struct {
	logger      Logger
	userService service.UserService
}

func (*userHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "min":
		return fmt.Sprintf("The %s field must have at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("The %s field must not exceed %s characters", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func toUserResponse(user model.User) response.UserResponse {
	return response.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Permission: user.Permission,
		CreatedAt:  user.CreatedAt,
	}
}

func (u *userHandler) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := u.userService.GetAllUsers(c)
		if err != nil {
			err = fmt.Errorf("UserHandler.GetUsers: %w", err)
			u.logger.LoggingError(c, err, "failed to list users", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		usersRes := make([]response.UserResponse, 0, len(users))
		for _, user := range users {
			usersRes = append(usersRes, toUserResponse(user))
		}
		c.JSON(http.StatusOK, usersRes)
	}
}

func (u *userHandler) GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := c.Value(middleware.JWTClaimsContextKey).(jwt.MapClaims)
		userID := claims["user_id"].(string)
		user, err := u.userService.GetUserById(c, userID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrUserNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "User not found",
				})
			default:
				err = fmt.Errorf("UserHandler.GetMe: %w", err)
				u.logger.LoggingError(c, err, "failed to get user by id", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, toUserResponse(user))
	}
}

func (u *userHandler) InviteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.InviteUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: u.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		claims := c.Value(middleware.JWTClaimsContextKey).(jwt.MapClaims)
		inviterID := claims["user_id"].(string)
		user, err := u.userService.InviteUser(c, inviterID, req.Email, req.Permission)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrUserAlreadyExists):
				c.JSON(http.StatusConflict, response.Response{
					Message: "User already exists",
				})
			case errors.Is(err, apperrors.ErrInvalidPermission):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid permission",
				})
			default:
				err = fmt.Errorf("UserHandler.InviteUser: %w", err)
				u.logger.LoggingError(c, err, fmt.Sprintf("failed to invite %s", req.Email), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, toUserResponse(user))
	}
}

func (u *userHandler) ChangePermission() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req request.ChangePermissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: u.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		err := u.userService.ChangePermission(c, id, req.Permission)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrUserNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "User not found",
				})
			case errors.Is(err, apperrors.ErrInvalidPermission):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid permission",
				})
			case errors.Is(err, apperrors.ErrPermissionUnchanged):
				c.JSON(http.StatusConflict, response.Response{
					Message: "User already has this permission",
				})
			case errors.Is(err, apperrors.ErrOnlyAdmin):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Cannot demote the only admin",
				})
			default:
				err = fmt.Errorf("UserHandler.ChangePermission: %w", err)
				u.logger.LoggingError(c, err, fmt.Sprintf("failed to change permission of user %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Permission updated successfully",
		})
	}
}

func (u *userHandler) UpdateMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: u.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		if req.Name == "" && req.Password == "" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Nothing to update",
			})
			return
		}
		claims := c.Value(middleware.JWTClaimsContextKey).(jwt.MapClaims)
		userID := claims["user_id"].(string)
		if req.Name != "" {
			if err := u.userService.UpdateName(c, userID, req.Name); err != nil {
				u.handleUpdateError(c, err, "failed to update name")
				return
			}
		}
		if req.Password != "" {
			if err := u.userService.SetPassword(c, userID, req.Password); err != nil {
				u.handleUpdateError(c, err, "failed to update password")
				return
			}
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "User updated successfully",
		})
	}
}

func (u *userHandler) handleUpdateError(c *gin.Context, err error, errDescription string) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.Response{
			Message: "User not found",
		})
	default:
		err = fmt.Errorf("UserHandler.UpdateMe: %w", err)
		u.logger.LoggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
	}
}

func (u *userHandler) DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := u.userService.DeleteUser(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrUserNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "User not found",
				})
			case errors.Is(err, apperrors.ErrOnlyAdmin):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Cannot delete the only admin",
				})
			default:
				err = fmt.Errorf("UserHandler.DeleteUser: %w", err)
				u.logger.LoggingError(c, err, fmt.Sprintf("failed to delete user %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "User deleted successfully",
		})
	}
}

func NewUserHandler(logger Logger, userService service.UserService) UserHandler {
	return &userHandler{
		logger:      logger,
		userService: userService,
	}
}
