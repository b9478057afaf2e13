// Package registry maps game IDs to factories. Simulations register in
// init() so the CLI, TUI and SSH server can create them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is what the platform drives. Implementations hold no terminal or
// Bubble Tea state; the platform maps keys to actions, drives frames and
// displays the screen buffer.
type Game interface {
	// ID returns the identifier used on the command line and in storage.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh run with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step runs one frame with the actions collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score and pause status.
	State() core.GameState
}

// Inspector is implemented by games that expose a debug panel.
type Inspector interface {
	Inspect() []string
}

// Faulter is implemented by games that can halt on an internal error.
type Faulter interface {
	Fault() error
}

// Summarizer is implemented by games that report a run summary for the
// session history.
type Summarizer interface {
	Summary() core.Summary
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
