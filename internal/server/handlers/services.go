// Defines shared service dependencies for handlers.

package handlers

import (
	"github.com/maruel/showcase/internal/ai"
	"github.com/maruel/showcase/internal/catalog"
	"github.com/maruel/showcase/internal/config"
	"github.com/maruel/showcase/internal/storage"
)

// Services holds all service dependencies for handlers.
type Services struct {
	Store   *storage.Store
	Engine  *catalog.Engine
	Analyst *ai.Analyst
}

// Config holds configuration values needed by handlers.
type Config struct {
	Version string
	Server  config.ServerConfig
}
