// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package engine turns a validated interface tree into a live object graph.
//
// A build runs in two phases. The first instantiates every object depth-first,
// links children, layouts and constraints to their owners, and records each
// reference property as a pending assignment. The second runs once the whole
// graph exists and points every pending reference at the live object declared
// with that id. This is what allows an object to refer to one declared later
// in the document.
//
// All state of a build (the id table, the pending assignments, the list of
// created objects) belongs to that build alone, so one interface can be built
// any number of times.
package engine

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/uigraph/internal/ctxlog"
	"github.com/specialistvlad/uigraph/internal/i18n"
	"github.com/specialistvlad/uigraph/internal/ir"
	"github.com/specialistvlad/uigraph/internal/object"
)

// Option configures a build.
type Option func(*options)

type options struct {
	translator i18n.Translator
}

// WithTranslator sets the translator applied to translatable literals.
func WithTranslator(t i18n.Translator) Option {
	return func(o *options) {
		if t != nil {
			o.translator = t
		}
	}
}

// build holds the state of one Build call.
type build struct {
	logger     *slog.Logger
	translator i18n.Translator
	iface      *ir.Interface

	// ids maps symbolic ids to the live objects declared with them.
	ids map[string]object.Object
	// pending collects reference assignments until the graph is complete.
	pending []assignment
	// created lists every constructed object in creation order.
	created []object.Object
}

// Build instantiates iface and resolves its references. On failure every
// object created by this call is destroyed and nil is returned.
func Build(ctx context.Context, iface *ir.Interface, opts ...Option) (object.Object, error) {
	o := options{translator: i18n.Identity{}}
	for _, opt := range opts {
		opt(&o)
	}

	b := &build{
		logger:     ctxlog.FromContext(ctx).With("interface", iface.ID, "build_id", uuid.New().String()[:8]),
		translator: o.translator,
		iface:      iface,
		ids:        make(map[string]object.Object),
	}
	b.logger.Debug("Building interface.")

	root, err := b.instantiate(iface.Root)
	if err == nil {
		// The interface id names the root object.
		if _, taken := b.ids[iface.ID]; !taken {
			b.ids[iface.ID] = root
		}
		err = b.resolve()
	}
	if err != nil {
		b.release()
		b.logger.Debug("Build failed.", "error", err, "released", len(b.created))
		return nil, err
	}

	b.logger.Debug("Built interface.", "objects", len(b.created), "references", len(b.pending))
	return root, nil
}

// release destroys everything this build created, newest first.
func (b *build) release() {
	for i := len(b.created) - 1; i >= 0; i-- {
		if obj := b.created[i]; !obj.Destroyed() {
			obj.Destroy()
		}
	}
}
