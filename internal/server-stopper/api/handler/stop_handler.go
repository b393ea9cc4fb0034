package handler

import (
	"errors"
	"fmt"
	"net/http"

	"GSLM_Microservice/internal/server-stopper/api/dto/request"
	"GSLM_Microservice/internal/server-stopper/api/dto/response"
	apperrors "GSLM_Microservice/internal/server-stopper/errors"
	"GSLM_Microservice/internal/server-stopper/orchestrator"
	"GSLM_Microservice/pkg/lifecycle"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type StopHandler interface {
	StopServer() gin.HandlerFunc
}

type stopHandler struct {
	logger       *zap.Logger
	orchestrator orchestrator.Orchestrator
	validator    *validator.Validate
}

func (h *stopHandler) StopServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.StopServerRequest
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
		result, err := h.orchestrator.StopServer(c, orchestrator.StopRequest{
			ID:            *req.ID,
			ObservedState: *req.ServerState,
		})
		if err != nil {
			err = fmt.Errorf("StopHandler.StopServer: %w", err)
			switch {
			case errors.Is(err, lifecycle.ErrStatePrecondition) || errors.Is(err, lifecycle.ErrStateConflict):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server state does not permit stopping",
				})
			case errors.Is(err, lifecycle.ErrUnknownServerState):
				c.JSON(http.StatusUnprocessableEntity, response.Response{
					Message: "Server state is not a known lifecycle state",
				})
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			case errors.Is(err, apperrors.ErrMissingInstanceID):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server record has no instance to stop",
				})
			default:
				h.logger.Error("failed to stop server", zap.Error(err),
					zap.String("http_method", c.Request.Method), zap.String("http_path", c.Request.URL.Path))
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal Server Error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.StopServerResponse{
			Status:    result.Status,
			CommandID: result.CommandID,
		})
	}
}

func NewStopHandler(logger *zap.Logger, orch orchestrator.Orchestrator) StopHandler {
	return &stopHandler{
		logger:       logger,
		orchestrator: orch,
		validator:    validator.New(),
	}
}
