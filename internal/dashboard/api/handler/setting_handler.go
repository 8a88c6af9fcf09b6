package handler

import (
	"fmt"
	"net/http"

	"ritual/internal/dashboard/api/dto/response"
	"ritual/internal/dashboard/model"
	"ritual/internal/dashboard/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingHandler interface {
	GetConfig() gin.HandlerFunc
	UpdateConfig() gin.HandlerFunc
}

type settingHandler struct {
	logger         Logger
	settingService service.SettingService
}

func (s *settingHandler) GetConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		config, err := s.settingService.GetConfig(c)
		if err != nil {
			err = fmt.Errorf("SettingHandler.GetConfig: %w", err)
			s.logger.LoggingError(c, err, "failed to get redaction config", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		configRes := make([]response.ConfigOptionResponse, 0, len(model.RedactOptions))
		for _, option := range model.RedactOptions {
			configRes = append(configRes, response.ConfigOptionResponse{
				Key:   option.Key,
				Name:  option.Name,
				Value: config[option.Key],
			})
		}
		c.JSON(http.StatusOK, configRes)
	}
}

func (s *settingHandler) UpdateConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req map[string]string
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		if err := s.settingService.UpdateConfig(c, req); err != nil {
			err = fmt.Errorf("SettingHandler.UpdateConfig: %w", err)
			s.logger.LoggingError(c, err, "failed to update redaction config", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Config updated successfully",
		})
	}
}

func NewSettingHandler(logger Logger, settingService service.SettingService) SettingHandler {
	return &settingHandler{
		logger:         logger,
		settingService: settingService,
	}
}
