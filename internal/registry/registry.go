// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dome-defender/internal/core"
)

// Game is the interface every engine hosted by the platform implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform polls input, measures time and rasterizes the draw calls.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "domedefender").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for the window or terminal title.
	Title() string

	// Width and Height return the playfield size in world units.
	Width() float64
	Height() float64

	// Reset initializes the game state.
	// Called once before the first frame.
	Reset(cfg core.RuntimeConfig)

	// Tic advances the simulation by one frame using the elapsed time
	// reported by the timer. Returning false ends the run loop.
	Tic(kb core.Keyboard, timer core.Timer) bool

	// Draw issues the draw calls of one frame.
	Draw(dst core.Screen)
}

// Playfield limits applied by the host to Width and Height.
const (
	MinSize = 64.0
	MaxSize = 2048.0
)

// DefaultTitle is used when a game reports an empty title.
const DefaultTitle = "EzGame"

// Dimensions returns the playfield size of g clamped to [MinSize, MaxSize].
func Dimensions(g Game) (w, h float64) {
	return core.ClampF(g.Width(), MinSize, MaxSize), core.ClampF(g.Height(), MinSize, MaxSize)
}

// TitleOf returns the title of g, or DefaultTitle when it is empty.
func TitleOf(g Game) string {
	if t := g.Title(); t != "" {
		return t
	}
	return DefaultTitle
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = TitleOf(f())
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
