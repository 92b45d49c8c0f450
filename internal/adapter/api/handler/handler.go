package handler

import (
	"github.com/graphql-go/graphql"

	"blooddonor/internal/infrastructure/metrics"
)

var (
	graphQLHandler *GraphQLHandler
	healthHandler  *HealthHandler
	metricsHandler *MetricsHandler
)

func Setup(schema *graphql.Schema, graphiql bool, store Pinger, recorder *metrics.Recorder) {
	graphQLHandler = NewGraphQLHandler(schema, graphiql)
	healthHandler = NewHealthHandler(store)
	metricsHandler = NewMetricsHandler(recorder)
}

func GetGraphQLHandler() *GraphQLHandler {
	return graphQLHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetMetricsHandler() *MetricsHandler {
	return metricsHandler
}
