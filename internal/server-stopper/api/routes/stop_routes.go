package routes

import (
	"GSLM_Microservice/internal/server-stopper/api/handler"
	"GSLM_Microservice/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const ScopeServersStop = "servers:stop"

func AddStopRoutes(r *gin.Engine, handler handler.StopHandler, m middleware.AuthMiddleware) {
	r.POST("/stop", m.CheckUserPermission(ScopeServersStop), handler.StopServer())
}
