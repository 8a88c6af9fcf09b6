package handler

import (
	"errors"
	"fmt"
	"net/http"

	"ritual/internal/dashboard/api/dto/request"
	"ritual/internal/dashboard/api/dto/response"
	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProviderHandler interface {
	GetKeys() gin.HandlerFunc
	UpdateKeys() gin.HandlerFunc
	GetConfigurations() gin.HandlerFunc
}

type providerHandler struct {
	logger          Logger
	providerService service.ProviderService
}

func (p *providerHandler) GetKeys() gin.HandlerFunc {
	return func(c *gin.Context) {
		keys, err := p.providerService.GetAllKeys(c)
		if err != nil {
			err = fmt.Errorf("ProviderHandler.GetKeys: %w", err)
			p.logger.LoggingError(c, err, "failed to get provider keys", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		keysRes := make(map[string]response.ProviderKeysResponse, len(keys))
		for providerType, providerKeys := range keys {
			keysRes[providerType] = response.ProviderKeysResponse{
				Key:   providerKeys.Key,
				Email: providerKeys.Email,
			}
		}
		c.JSON(http.StatusOK, keysRes)
	}
}

func (p *providerHandler) UpdateKeys() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateKeysRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		keys := make(map[string]service.ProviderKeys, len(req))
		for providerType, providerKeys := range req {
			keys[providerType] = service.ProviderKeys{
				Key:      providerKeys.Key,
				Email:    providerKeys.Email,
				Password: providerKeys.Password,
			}
		}
		err := p.providerService.UpdateKeys(c, keys)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNoKeyDataProvided):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "No new key data provided",
				})
			case errors.Is(err, apperrors.ErrProviderNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Provider not supported",
				})
			case errors.Is(err, apperrors.ErrProviderInUse):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Provider has provisioned servers, delete them before changing keys",
				})
			case errors.Is(err, apperrors.ErrInvalidCredentials):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Provider rejected the supplied credentials",
				})
			default:
				err = fmt.Errorf("ProviderHandler.UpdateKeys: %w", err)
				p.logger.LoggingError(c, err, "failed to update provider keys", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Provider keys updated successfully",
		})
	}
}

func (p *providerHandler) GetConfigurations() gin.HandlerFunc {
	return func(c *gin.Context) {
		configurations, err := p.providerService.GetConfigurations(c)
		if err != nil {
			err = fmt.Errorf("ProviderHandler.GetConfigurations: %w", err)
			p.logger.LoggingError(c, err, "failed to get provider configurations", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, configurations)
	}
}

func NewProviderHandler(logger Logger, providerService service.ProviderService) ProviderHandler {
	return &providerHandler{
		logger:          logger,
		providerService: providerService,
	}
}
