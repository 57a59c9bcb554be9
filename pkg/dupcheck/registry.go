package dupcheck

import (
	"fmt"
	"sort"
	"sync"
)

// globalRegistry holds every known format, built-in or configured.
var globalRegistry = &Registry{
	formats: make(map[string]Format),
}

// Registry stores formats by name.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
}

// Register adds a format to the global registry, replacing any format with
// the same name.
func Register(f Format) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.formats[f.Name] = f
}

// Lookup returns a format by name.
func Lookup(name string) (Format, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	f, ok := globalRegistry.formats[name]
	return f, ok
}

// Resolve is like Lookup but returns an error wrapping ErrUnknownFormat.
func Resolve(name string) (Format, error) {
	f, ok := Lookup(name)
	if !ok {
		return Format{}, fmt.Errorf("%w %q (run 'dupcheck formats' to list them)", ErrUnknownFormat, name)
	}
	return f, nil
}

// All returns every registered format sorted by name.
func All() []Format {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	formats := make([]Format, 0, len(globalRegistry.formats))
	for _, f := range globalRegistry.formats {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool {
		return formats[i].Name < formats[j].Name
	})
	return formats
}

// Count returns the number of registered formats.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.formats)
}

// Clear removes all registered formats. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.formats = make(map[string]Format)
}

// Reset restores the registry to the built-in formats only.
func Reset() {
	Clear()
	registerBuiltins()
}
