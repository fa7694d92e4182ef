// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package classes is the explicit registry of types that can be constructed
// from markup. Modules register their classes at startup; the loader resolves
// the class names it reads from documents against it.
package classes

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/specialistvlad/uigraph/internal/uierr"
)

// DefaultCacheSize is the number of resolved class names kept in the lookup cache.
const DefaultCacheSize = 128

// Module is implemented by every package that contributes classes.
type Module interface {
	Register(r *Registry)
}

// Registry maps lookup symbols to classes.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class
	// cache maps class names as written in documents to resolved classes.
	cache *lru.Cache[string, *Class]
}

// New creates an empty registry. A cacheSize of zero disables the lookup cache.
func New(cacheSize int) *Registry {
	r := &Registry{classes: make(map[string]*Class)}
	if cacheSize > 0 {
		cache, err := lru.New[string, *Class](cacheSize)
		if err != nil {
			panic(fmt.Sprintf("classes: creating lookup cache: %v", err))
		}
		r.cache = cache
	}
	return r
}

// Register adds a class. It panics if the class is incomplete or its lookup
// symbol is already taken.
func (r *Registry) Register(c *Class) {
	if c == nil || c.Name == "" {
		panic("classes: class must have a name")
	}
	if c.New == nil {
		panic(fmt.Sprintf("classes: class '%s' has no constructor", c.Name))
	}
	if c.Roles == 0 {
		panic(fmt.Sprintf("classes: class '%s' declares no role", c.Name))
	}
	sym := Symbol(c.Name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, exists := r.classes[sym]; exists {
		panic(fmt.Sprintf("class '%s' already registered (symbol '%s' taken by '%s')", c.Name, sym, existing.Name))
	}
	slog.Debug("Registering class.", "name", c.Name, "symbol", sym, "roles", c.Roles.String())
	r.classes[sym] = c
}

// RegisterModules registers every module in order.
func (r *Registry) RegisterModules(modules ...Module) {
	for _, m := range modules {
		m.Register(r)
	}
}

// Resolve finds the class for a name written in a document.
func (r *Registry) Resolve(name string) (*Class, error) {
	if r.cache != nil {
		if c, ok := r.cache.Get(name); ok {
			return c, nil
		}
	}

	sym := Symbol(name)
	r.mu.RLock()
	c, ok := r.classes[sym]
	r.mu.RUnlock()
	if !ok {
		return nil, &uierr.Error{
			Kind:    uierr.ErrUnknownClass,
			Class:   name,
			Message: fmt.Sprintf("no class registered for %q (symbol %q)", name, sym),
		}
	}

	if r.cache != nil {
		r.cache.Add(name, c)
	}
	return c, nil
}

// Names returns the registered class names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.classes))
	for _, c := range r.classes {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

// CachedLookups returns the number of names held by the lookup cache.
func (r *Registry) CachedLookups() int {
	if r.cache == nil {
		return 0
	}
	return r.cache.Len()
}

// Symbol converts an external class name into its lookup symbol: namespace
// dots and dashes become underscores and CamelCase words are split, so
// "St.BoxLayout", "st-box-layout" and "st_box_layout" share one symbol.
func Symbol(name string) string {
	runes := []rune(name)
	var sb strings.Builder
	sb.Grow(len(runes) + 4)

	lastUnderscore := true
	for i, r := range runes {
		switch {
		case r == '.' || r == '-' || r == '_' || unicode.IsSpace(r):
			if !lastUnderscore {
				sb.WriteByte('_')
				lastUnderscore = true
			}
		case unicode.IsUpper(r):
			if i > 0 && !lastUnderscore {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					sb.WriteByte('_')
				}
			}
			sb.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		default:
			sb.WriteRune(r)
			lastUnderscore = false
		}
	}
	return strings.TrimSuffix(sb.String(), "_")
}
