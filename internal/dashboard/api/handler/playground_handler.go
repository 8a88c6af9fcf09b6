package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"ritual/internal/dashboard/api/dto/request"
	"ritual/internal/dashboard/api/dto/response"
	"ritual/internal/dashboard/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type PlaygroundHandler interface {
	GetModels() gin.HandlerFunc
	CheckServerHealth() gin.HandlerFunc
	GenerateStream() gin.HandlerFunc
}

type playgroundHandler struct {
	logger            Logger
	playgroundService service.PlaygroundService
}

func (*playgroundHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "ipv4":
		return fmt.Sprintf("The %s field is not a valid IPv4 address", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (p *playgroundHandler) GetModels() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, p.playgroundService.GetModels())
	}
}

func (p *playgroundHandler) CheckServerHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.Query("ip")
		if ip == "" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "The ip query parameter is required",
			})
			return
		}
		c.JSON(http.StatusOK, response.HealthResponse{
			Healthy: p.playgroundService.CheckServerHealth(c, ip),
		})
	}
}

// GenerateStream relays the model's server-sent event stream to the client
// unchanged, flushing after every chunk.
func (p *playgroundHandler) GenerateStream() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.GenerateStreamRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: p.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		stream, err := p.playgroundService.OpenCompletionStream(c, req.Ip, req.Prompt, req.Parameters)
		if err != nil {
			err = fmt.Errorf("PlaygroundHandler.GenerateStream: %w", err)
			p.logger.LoggingError(c, err, fmt.Sprintf("failed to open completion stream against %s", req.Ip), zap.ErrorLevel)
			c.JSON(http.StatusBadGateway, response.Response{
				Message: "Inference server is unreachable",
			})
			return
		}
		defer stream.Close()

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Status(http.StatusOK)

		buf := make([]byte, 4096)
		for {
			n, readErr := stream.Read(buf)
			if n > 0 {
				if _, writeErr := c.Writer.Write(buf[:n]); writeErr != nil {
					return
				}
				c.Writer.Flush()
			}
			if readErr != nil {
				if !errors.Is(readErr, io.EOF) {
					readErr = fmt.Errorf("PlaygroundHandler.GenerateStream: %w", readErr)
					p.logger.LoggingError(c, readErr, "completion stream interrupted", zap.WarnLevel)
				}
				return
			}
		}
	}
}

func NewPlaygroundHandler(logger Logger, playgroundService service.PlaygroundService) PlaygroundHandler {
	return &playgroundHandler{
		logger:            logger,
		playgroundService: playgroundService,
	}
}
