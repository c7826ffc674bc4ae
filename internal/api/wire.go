//go:build wireinject

package api

import (
	"testing"

	"github.com/google/wire"

	"github/uniagent/go-broker/internal/config"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewClock,
	NewMetrics,
	NewResolver,
	NewPendingStore,
	NewBrokerService,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewEngineClient, NoTest)
	return new(Server), nil
}

// InitNewServerWithEngine returns a new Server instance with the given engine client.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithEngine(
	_ config.Server,
	_ EngineClient,
	t ...*testing.T,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
