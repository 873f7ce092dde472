package catalog

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownFramework is returned when no catalog exists for a framework.
var ErrUnknownFramework = errors.New("unknown framework")

// builders maps each framework to its catalog constructor. Construction is
// deferred so a process only pays for the catalogs it actually loads.
var builders = map[Framework]func() *Catalog{
	FrameworkEU:            euCatalog,
	FrameworkInternational: internationalCatalog,
	FrameworkUK:            ukCatalog,
	FrameworkUS:            usCatalog,
	FrameworkNIS2:          nis2Catalog,
}

var (
	loadMu sync.RWMutex
	loaded = make(map[Framework]*Catalog)
)

// Load returns the catalog for a framework. The catalog is built at most
// once per process and cached for the process lifetime; concurrent first
// callers are serialized on the write lock and every later caller reads the
// same immutable value without contention.
func Load(fw Framework) (*Catalog, error) {
	loadMu.RLock()
	c, ok := loaded[fw]
	loadMu.RUnlock()
	if ok {
		return c, nil
	}

	build, ok := builders[fw]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFramework, fw)
	}

	loadMu.Lock()
	defer loadMu.Unlock()
	// Double check: another goroutine may have populated while we waited.
	if c, ok := loaded[fw]; ok {
		return c, nil
	}
	c = build()
	loaded[fw] = c
	return c, nil
}

// MustLoad is Load for built-in frameworks known at compile time.
func MustLoad(fw Framework) *Catalog {
	c, err := Load(fw)
	if err != nil {
		panic(err)
	}
	return c
}
