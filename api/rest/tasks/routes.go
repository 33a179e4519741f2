package tasks

import (
	"github.com/daytask/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers the task routes, all behind the full-resolution gate
func RegisterRoutes(
	router *gin.RouterGroup,
	store TaskStore,
	tokens *auth.TokenService,
	finder auth.UserFinder,
) {
	taskGroup := router.Group("/tasks", auth.RequireUser(tokens, finder))
	{
		taskGroup.GET("/my", MyTasksHandler(store))
		taskGroup.POST("/create", CreateTaskHandler(store))
		taskGroup.GET("/:id", GetTaskHandler(store))
		taskGroup.PUT("/:id", UpdateTaskHandler(store))
		taskGroup.PATCH("/:id/complete", CompleteTaskHandler(store))
		taskGroup.DELETE("/:id", DeleteTaskHandler(store))
	}
}
