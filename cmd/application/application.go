// Package application provides the application interface for modelatlas commands.
//
// The Application interface defines the contract between the application layer
// and command implementations, enabling dependency injection and testability.
//
// Design principles:
//   - Accept interfaces, return structs (Go proverb)
//   - Define interfaces where they're used, not where they're implemented
//   - Keep interfaces small and focused
//
// Usage in commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            atlas, err := app.Atlas()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use atlas
//	            return nil
//	        },
//	    }
//	}
//
// Testing with mocks:
//
//	mock := &application.Mock{
//	    AtlasFunc: func() (*modelatlas.Atlas, error) {
//	        return testAtlas, nil
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/modelatlas/modelatlas"
)

// Application provides the application interface that commands need.
// The App struct from cmd/modelatlas/app automatically implements this
// interface, providing dependency injection for commands while keeping
// them testable with mock implementations.
type Application interface {
	// Atlas returns the shared atlas instance, loading the catalog on
	// first use.
	Atlas() (*modelatlas.Atlas, error)

	// Logger returns the application logger.
	Logger() *zerolog.Logger

	// Version returns the application version string.
	Version() string
}

// Mock implements Application for testing. Unset function fields fall
// back to inert defaults.
type Mock struct {
	AtlasFunc   func() (*modelatlas.Atlas, error)
	LoggerFunc  func() *zerolog.Logger
	VersionFunc func() string
}

// Atlas implements Application.
func (m *Mock) Atlas() (*modelatlas.Atlas, error) {
	if m.AtlasFunc != nil {
		return m.AtlasFunc()
	}
	return modelatlas.New()
}

// Logger implements Application.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// Version implements Application.
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}
