package handler

import (
	"errors"
	"fmt"
	"net/http"

	"GSLM_Microservice/internal/server-starter/api/dto/request"
	"GSLM_Microservice/internal/server-starter/api/dto/response"
	"GSLM_Microservice/internal/server-starter/bootstrap"
	apperrors "GSLM_Microservice/internal/server-starter/errors"
	"GSLM_Microservice/internal/server-starter/orchestrator"
	"GSLM_Microservice/pkg/lifecycle"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type StartHandler interface {
	StartServer() gin.HandlerFunc
}

type startHandler struct {
	logger       *zap.Logger
	orchestrator orchestrator.Orchestrator
	validator    *validator.Validate
}

func (h *startHandler) StartServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.StartServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		if err := h.validator.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "The id and server_state fields are required",
			})
			return
		}
		result, err := h.orchestrator.StartServer(c, orchestrator.StartRequest{
			ID:            *req.ID,
			ObservedState: *req.ServerState,
		})
		if err != nil {
			err = fmt.Errorf("StartHandler.StartServer: %w", err)
			switch {
			case errors.Is(err, lifecycle.ErrStatePrecondition) || errors.Is(err, lifecycle.ErrStateConflict):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server state does not permit starting",
				})
			case errors.Is(err, lifecycle.ErrUnknownServerState):
				c.JSON(http.StatusUnprocessableEntity, response.Response{
					Message: "Server state is not a known lifecycle state",
				})
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			case errors.Is(err, bootstrap.ErrInvalidConfiguration):
				h.logger.Error("bootstrap configuration rejected", zap.Error(err))
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Service configuration is invalid",
				})
			default:
				h.logger.Error("failed to start server", zap.Error(err),
					zap.String("http_method", c.Request.Method), zap.String("http_path", c.Request.URL.Path))
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal Server Error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.StartServerResponse{
			Status:         result.Status,
			SpotRequestID:  result.SpotRequestID,
			UserData:       result.UserData,
			UserDataBase64: result.UserDataBase64,
		})
	}
}

func NewStartHandler(logger *zap.Logger, orch orchestrator.Orchestrator) StartHandler {
	return &startHandler{
		logger:       logger,
		orchestrator: orch,
		validator:    validator.New(),
	}
}
