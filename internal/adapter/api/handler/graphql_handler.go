package handler

import (
	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"
	"github.com/labstack/echo/v4"
)

// GraphQLHandler serves queries over GET and POST and, when enabled, the
// GraphiQL explorer to browsers.
type GraphQLHandler struct {
	handler *gqlhandler.Handler
}

func NewGraphQLHandler(schema *graphql.Schema, graphiql bool) *GraphQLHandler {
	return &GraphQLHandler{
		handler: gqlhandler.New(&gqlhandler.Config{
			Schema:   schema,
			Pretty:   true,
			GraphiQL: graphiql,
		}),
	}
}

func (h *GraphQLHandler) Serve(c echo.Context) error {
	h.handler.ContextHandler(c.Request().Context(), c.Response(), c.Request())
	return nil
}
