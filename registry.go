package accel

import (
	"errors"
	"sync"

	"github.com/gogpu/accel/canvas"
)

// Renderer name constants.
const (
	// RendererSoftware is the name of the CPU-based software renderer, which
	// delegates to the gg drawing library.
	RendererSoftware = "software"
)

// Registry errors.
var (
	// ErrRendererNotRegistered is returned when a requested renderer backend
	// has not been registered.
	ErrRendererNotRegistered = errors.New("accel: renderer not registered")
)

// RendererFactory creates a renderer instance on top of a canvas driver.
// The driver is supplied by the host: backends receive their underlying
// drawing library, they do not create one.
type RendererFactory func(drv canvas.Driver) (*Renderer, error)

// registry holds registered renderer factories.
var (
	registryMu sync.RWMutex
	renderers  = make(map[string]RendererFactory)
	// Priority order for default selection (first available wins).
	rendererPriority = []string{RendererSoftware}
)

// Register registers a renderer factory with the given name.
// This is typically called from init() functions in backend packages.
// If a renderer with the same name is already registered, it is replaced.
func Register(name string, factory RendererFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	renderers[name] = factory
}

// Unregister removes a renderer from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(renderers, name)
}

// Available returns a list of registered renderer names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a renderer with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := renderers[name]
	return ok
}

// Get returns the factory registered under name, or nil.
func Get(name string) RendererFactory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return renderers[name]
}

// New creates a renderer by name on top of drv.
// Returns ErrRendererNotRegistered if no such backend exists.
func New(name string, drv canvas.Driver) (*Renderer, error) {
	factory := Get(name)
	if factory == nil {
		return nil, ErrRendererNotRegistered
	}
	return factory(drv)
}

// NewDefault creates the best available renderer based on priority.
// Returns ErrRendererNotRegistered if no renderers are registered.
func NewDefault(drv canvas.Driver) (*Renderer, error) {
	registryMu.RLock()
	var factory RendererFactory
	for _, name := range rendererPriority {
		if f, ok := renderers[name]; ok {
			factory = f
			break
		}
	}
	if factory == nil {
		// Fallback: first available.
		for _, f := range renderers {
			factory = f
			break
		}
	}
	registryMu.RUnlock()

	if factory == nil {
		return nil, ErrRendererNotRegistered
	}
	return factory(drv)
}
