package service

import (
	"context"
	"fmt"
	"time"

	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/jwt"
	"ritual/internal/dashboard/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthenticationResponse struct {
	AccessToken     string
	RefreshToken    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type AuthUserInfo struct {
	UserID     string
	Permission string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (AuthenticationResponse, error)
	Logout(ctx context.Context, userID string) error
	Refresh(ctx context.Context, refreshToken string) (AuthenticationResponse, error)
	VerifyToken(ctx context.Context, token string) (AuthUserInfo, error)
}

type authService struct {
	userService    UserService
	jwt            jwt.Utils
	tokenRepo      repository.RefreshTokenRepository
	userSessionTTL time.Duration
}

func (a *authService) Login(ctx context.Context, email, password string) (AuthenticationResponse, error) {
	user, err := a.userService.GetUserByEmail(ctx, email)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Login: %w", err)
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Login: %w", apperrors.ErrInvalidPassword)
	}
	accessToken, err := a.jwt.CreateAccessToken(user.ID, user.Permission)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Login: %w", err)
	}
	refreshToken, err := a.jwt.CreateRefreshToken(user.ID)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Login: %w", err)
	}
	err = a.tokenRepo.SetRefreshTokenID(ctx, user.ID, refreshToken.JTI, a.userSessionTTL)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Login: %w", err)
	}
	return AuthenticationResponse{
		AccessToken:     accessToken.Token,
		RefreshToken:    refreshToken.Token,
		AccessTokenTTL:  accessToken.TTL,
		RefreshTokenTTL: refreshToken.TTL,
	}, nil
}

func (a *authService) Logout(ctx context.Context, userID string) error {
	err := a.tokenRepo.DeleteRefreshToken(ctx, userID)
	if err != nil {
		return fmt.Errorf("authService.Logout: %w", err)
	}
	return nil
}

func (a *authService) Refresh(ctx context.Context, refreshToken string) (AuthenticationResponse, error) {
	claims, err := a.jwt.VerifyToken(refreshToken)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
	}
	userID, _ := claims["user_id"].(string)
	savedJTI, err := a.tokenRepo.GetRefreshTokenID(ctx, userID)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
	}
	if jti, _ := claims["jti"].(string); savedJTI != jti {
		// A mismatched JTI means the token was rotated elsewhere; kill the
		// session entirely.
		if err = a.tokenRepo.DeleteRefreshToken(ctx, userID); err != nil {
			return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
		}
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", apperrors.ErrInvalidToken)
	}
	user, err := a.userService.GetUserById(ctx, userID)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
	}
	accessToken, err := a.jwt.CreateAccessToken(user.ID, user.Permission)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
	}
	newRefreshToken, err := a.jwt.CreateRefreshToken(user.ID)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
	}
	err = a.tokenRepo.SetRefreshTokenID(ctx, user.ID, newRefreshToken.JTI, -1)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
	}
	return AuthenticationResponse{
		AccessToken:     accessToken.Token,
		RefreshToken:    newRefreshToken.Token,
		AccessTokenTTL:  accessToken.TTL,
		RefreshTokenTTL: newRefreshToken.TTL,
	}, nil
}

func (a *authService) VerifyToken(ctx context.Context, token string) (AuthUserInfo, error) {
	claims, err := a.jwt.VerifyToken(token)
	if err != nil {
		return AuthUserInfo{}, fmt.Errorf("authService.VerifyToken: %w", err)
	}
	userID, _ := claims["user_id"].(string)
	permission, _ := claims["permission"].(string)
	return AuthUserInfo{
		UserID:     userID,
		Permission: permission,
	}, nil
}

func NewAuthService(userService UserService, jwtUtils jwt.Utils, tokenRepo repository.RefreshTokenRepository, userSessionTTL time.Duration) AuthService {
	return &authService{
		userService:    userService,
		jwt:            jwtUtils,
		tokenRepo:      tokenRepo,
		userSessionTTL: userSessionTTL,
	}
}
