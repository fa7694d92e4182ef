// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/uigraph/internal/ctxlog"
	"github.com/specialistvlad/uigraph/internal/engine"
	"github.com/specialistvlad/uigraph/internal/i18n"
	"github.com/specialistvlad/uigraph/internal/ir"
	"github.com/specialistvlad/uigraph/internal/object"
	"github.com/specialistvlad/uigraph/internal/uierr"
)

// Registry maps interface ids to validated interface trees.
type Registry struct {
	mu         sync.RWMutex
	classes    ir.Resolver
	translator i18n.Translator
	interfaces map[string]*ir.Interface
	// order lists interface ids in load order.
	order []string
}

// Option configures a Registry.
type Option func(*Registry)

// WithTranslator sets the translator used by every build.
func WithTranslator(t i18n.Translator) Option {
	return func(r *Registry) {
		if t != nil {
			r.translator = t
		}
	}
}

// New creates an empty registry resolving class names through classes.
func New(classes ir.Resolver, opts ...Option) *Registry {
	r := &Registry{
		classes:    classes,
		translator: i18n.Identity{},
		interfaces: make(map[string]*ir.Interface),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the validated tree registered under id.
func (r *Registry) Lookup(id string) (*ir.Interface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	iface, ok := r.interfaces[id]
	return iface, ok
}

// IDs returns the registered interface ids in load order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of registered interfaces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Build instantiates the interface registered under id into a new live
// object graph with all references resolved.
func (r *Registry) Build(ctx context.Context, id string) (object.Object, error) {
	iface, ok := r.Lookup(id)
	if !ok {
		return nil, &uierr.Error{
			Kind:    uierr.ErrNotFound,
			ID:      id,
			Message: fmt.Sprintf("no interface with id %q is registered", id),
		}
	}

	root, err := engine.Build(ctx, iface, engine.WithTranslator(r.translator))
	if err != nil {
		return nil, fmt.Errorf("failed to build interface %q: %w", id, err)
	}
	ctxlog.FromContext(ctx).Info("Interface built.", "interface", id, "root", root.ClassName())
	return root, nil
}

// add admits a validated interface.
func (r *Registry) add(iface *ir.Interface) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.interfaces[iface.ID]; exists {
		return &uierr.Error{
			Kind:     uierr.ErrDuplicateInterface,
			Document: iface.Document,
			Line:     iface.Pos.Line,
			Column:   iface.Pos.Column,
			ID:       iface.ID,
			Message:  fmt.Sprintf("interface %q is already registered from %s", iface.ID, prev.Document),
		}
	}
	r.interfaces[iface.ID] = iface
	r.order = append(r.order, iface.ID)
	return nil
}
