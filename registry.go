package svgnative

import (
	"fmt"
	"sort"
	"sync"
)

// RendererFactory creates a new renderer instance.
// Factories are registered via Register and called by NewRenderer.
type RendererFactory func() Renderer

var (
	registryMu sync.RWMutex
	factories  = make(map[string]RendererFactory)
)

// Register makes a backend available by name. It is typically called from
// init() in backend packages, following the database/sql driver pattern:
//
//	func init() {
//	    svgnative.Register("raster", func() svgnative.Renderer {
//	        return NewRenderer()
//	    })
//	}
//
// Register panics if factory is nil or if name is already registered.
func Register(name string, factory RendererFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("svgnative: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("svgnative: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend from the registry. It is a no-op for unknown
// names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// NewRenderer creates a renderer from the named backend.
//
//	import _ "github.com/gogpu/svgnative/backend/raster"
//
//	r, err := svgnative.NewRenderer("raster")
func NewRenderer(name string) (Renderer, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("svgnative: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustRenderer is like NewRenderer but panics on error.
func MustRenderer(name string) Renderer {
	r, err := NewRenderer(name)
	if err != nil {
		panic(err)
	}
	return r
}

// Renderers returns the sorted names of all registered backends.
func Renderers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
