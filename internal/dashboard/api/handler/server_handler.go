package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"ritual/internal/dashboard/api/dto/request"
	"ritual/internal/dashboard/api/dto/response"
	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/service"
	"ritual/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ServerHandler interface {
	GetServers() gin.HandlerFunc
	GetServer() gin.HandlerFunc
	GetServerNames() gin.HandlerFunc
	CreateServer() gin.HandlerFunc
	ToggleServer() gin.HandlerFunc
	DeleteServer() gin.HandlerFunc
	GetServerUptimePercentage() gin.HandlerFunc
	ExportServersToExcelFile() gin.HandlerFunc
	ReportFleetHealth() gin.HandlerFunc
}

type serverHandler struct {
	logger        Logger
	serverService service.ServerService
}

func (*serverHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", err.Field())
	case "max":
		return fmt.Sprintf("The %s field must not exceed %s characters", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// providerErrorMessage extracts the user-facing message carried by provider
// errors, falling back to a generic one.
func providerErrorMessage(err error) string {
	var pe *provider.Error
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message
	}
	return "Internal server error"
}

func toServerDetailsResponse(server service.ServerDetails) response.ServerDetailsResponse {
	return response.ServerDetailsResponse{
		ID:          server.ID,
		Name:        server.Name,
		Description: server.Description,
		Model:       server.Model,
		Provider:    string(server.Provider),
		Ip:          server.Ip,
		Os:          server.Os,
		Status:      string(server.Status),
		Price:       server.Price,
		Specs:       server.Specs,
		CreatedAt:   server.CreatedAt,
	}
}

func (s *serverHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		servers, err := s.serverService.ListServers(c)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServers: %w", err)
			s.logger.LoggingError(c, err, "failed to list servers", zap.ErrorLevel)
			if provider.IsKind(err, provider.KindUpstream) || provider.IsKind(err, provider.KindAuthentication) {
				c.JSON(http.StatusBadGateway, response.Response{
					Message: providerErrorMessage(err),
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		serversRes := make([]response.ServerDetailsResponse, 0, len(servers))
		for _, server := range servers {
			serversRes = append(serversRes, toServerDetailsResponse(server))
		}
		c.JSON(http.StatusOK, serversRes)
	}
}

func (s *serverHandler) GetServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		server, err := s.serverService.GetServer(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			case provider.IsKind(err, provider.KindValidation):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: providerErrorMessage(err),
				})
			case provider.IsKind(err, provider.KindUpstream), provider.IsKind(err, provider.KindAuthentication):
				err = fmt.Errorf("ServerHandler.GetServer: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to get server %s", id), zap.ErrorLevel)
				c.JSON(http.StatusBadGateway, response.Response{
					Message: providerErrorMessage(err),
				})
			default:
				err = fmt.Errorf("ServerHandler.GetServer: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to get server %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, toServerDetailsResponse(server))
	}
}

func (s *serverHandler) GetServerNames() gin.HandlerFunc {
	return func(c *gin.Context) {
		servers, err := s.serverService.GetServerNames(c)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServerNames: %w", err)
			s.logger.LoggingError(c, err, "failed to get server names", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		namesRes := make([]response.ServerNameResponse, 0, len(servers))
		for _, server := range servers {
			namesRes = append(namesRes, response.ServerNameResponse{
				ID:   server.ID,
				Name: server.Name,
			})
		}
		c.JSON(http.StatusOK, namesRes)
	}
}

func (s *serverHandler) CreateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		serverConfig := provider.ServerConfig{
			Instance:    req.Instance,
			Name:        req.Name,
			Description: req.Description,
			Provider:    provider.Type(req.Provider),
			Region:      req.Region,
			Os:          req.Os,
			Size:        req.Size,
		}
		id, err := s.serverService.CreateServer(c, serverConfig, req.RunConfig)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNameAlreadyExists):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server name already exists",
				})
			case errors.Is(err, apperrors.ErrProviderNotFound):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Unknown provider",
				})
			case provider.IsKind(err, provider.KindValidation):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: providerErrorMessage(err),
				})
			case provider.IsKind(err, provider.KindUpstream), provider.IsKind(err, provider.KindAuthentication):
				err = fmt.Errorf("ServerHandler.CreateServer: %w", err)
				s.logger.LoggingError(c, err, "failed to create server", zap.ErrorLevel)
				c.JSON(http.StatusBadGateway, response.Response{
					Message: providerErrorMessage(err),
				})
			default:
				err = fmt.Errorf("ServerHandler.CreateServer: %w", err)
				s.logger.LoggingError(c, err, "failed to create server", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, response.CreateServerResponse{
			ID: id,
		})
	}
}

func (s *serverHandler) ToggleServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req request.ToggleServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		err := s.serverService.ToggleServer(c, id, service.ServerAction(req.Action))
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			case errors.Is(err, apperrors.ErrServerRunning):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server is already running",
				})
			case errors.Is(err, apperrors.ErrServerStopped):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server is already stopped",
				})
			case errors.Is(err, apperrors.ErrServerTransitional):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server is busy, wait for the current transition to finish",
				})
			case provider.IsKind(err, provider.KindUpstream), provider.IsKind(err, provider.KindAuthentication):
				err = fmt.Errorf("ServerHandler.ToggleServer: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to %s server %s", req.Action, id), zap.ErrorLevel)
				c.JSON(http.StatusBadGateway, response.Response{
					Message: providerErrorMessage(err),
				})
			default:
				err = fmt.Errorf("ServerHandler.ToggleServer: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to %s server %s", req.Action, id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Server toggled successfully",
		})
	}
}

func (s *serverHandler) DeleteServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := s.serverService.DeleteServer(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			case provider.IsKind(err, provider.KindUpstream), provider.IsKind(err, provider.KindAuthentication):
				err = fmt.Errorf("ServerHandler.DeleteServer: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to delete server %s", id), zap.ErrorLevel)
				c.JSON(http.StatusBadGateway, response.Response{
					Message: providerErrorMessage(err),
				})
			default:
				err = fmt.Errorf("ServerHandler.DeleteServer: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to delete server %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Server deleted successfully",
		})
	}
}

func (s *serverHandler) GetServerUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		startDate := c.Query("start_date")
		startTime, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endDate := c.Query("end_date")
		endTime, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		if endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		endTimeFinal := endTime.AddDate(0, 0, 1)
		res, err := s.serverService.GetServerUptimePercentage(c, id, startTime, endTimeFinal)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServerUptimePercentage: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to get uptime percentage of server %s from %s to %s", id, startTime, endTime), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			UptimePercentage: res,
		})
	}
}

func (s *serverHandler) ExportServersToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		servers, err := s.serverService.ListServers(c)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.logger.LoggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		file, err := s.generateExcelFile(servers)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.logger.LoggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("servers-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.logger.LoggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (s *serverHandler) generateExcelFile(servers []service.ServerDetails) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Servers"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"id", "name", "model", "provider", "ip", "status", "gpu", "gpu_count", "price_hourly", "created_at"}
	err = f.SetSheetRow(sheetName, "A1", &headers)
	if err != nil {
		return nil, err
	}
	for i, server := range servers {
		rowData := []interface{}{
			server.ID,
			server.Name,
			server.Model,
			string(server.Provider),
			server.Ip,
			string(server.Status),
			server.Specs.Gpu.Model,
			server.Specs.Gpu.Count,
			server.Price.Hourly,
			server.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		startCell := fmt.Sprintf("A%d", i+2)
		err = f.SetSheetRow(sheetName, startCell, &rowData)
		if err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func (s *serverHandler) ReportFleetHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		startTime, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endTime, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		if endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		endTimeFinal := endTime.AddDate(0, 0, 1)
		err = s.serverService.ReportFleetHealth(c, startTime, endTimeFinal, req.Email)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ReportFleetHealth: %w", err)
			s.logger.LoggingError(c, err, "failed to report fleet health", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func NewServerHandler(logger Logger, serverService service.ServerService) ServerHandler {
	return &serverHandler{
		logger:        logger,
		serverService: serverService,
	}
}
