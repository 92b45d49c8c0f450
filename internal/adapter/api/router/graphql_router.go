package router

import (
	"blooddonor/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupGraphQLRouter(e *echo.Echo) {
	graphQLHandler := handler.GetGraphQLHandler()
	e.GET("/graphql", graphQLHandler.Serve)
	e.POST("/graphql", graphQLHandler.Serve)
}
