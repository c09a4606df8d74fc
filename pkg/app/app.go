// Package app defines the runtime contract shared by the cmd/* entrypoints.
//
// cmd/arka starts the API server through Runner without depending on how it is wired.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
