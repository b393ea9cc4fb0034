package routes

import (
	"GSLM_Microservice/internal/server-starter/api/handler"
	"GSLM_Microservice/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const ScopeServersStart = "servers:start"

func AddStartRoutes(r *gin.Engine, handler handler.StartHandler, m middleware.AuthMiddleware) {
	r.POST("/start", m.CheckUserPermission(ScopeServersStart), handler.StartServer())
}
