// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"fmt"

	"github.com/specialistvlad/uigraph/internal/ir"
	"github.com/specialistvlad/uigraph/internal/object"
	"github.com/specialistvlad/uigraph/internal/uierr"
)

// assignment is a reference property waiting for the whole graph to exist.
type assignment struct {
	owner  *ir.Object
	target object.Object
	prop   ir.Property
}

// String describes the pending assignment for logs and errors.
func (a assignment) String() string {
	return fmt.Sprintf("%s.%s -> %s", describe(a.owner), a.prop.Name, a.prop.Ref)
}

func describe(o *ir.Object) string {
	if o.ID != "" {
		return o.Class.Name + "#" + o.ID
	}
	return o.Class.Name
}

// resolve applies every pending assignment. A validated interface always
// declares the referenced ids; the lookup failure only guards trees that
// skipped validation.
func (b *build) resolve() error {
	for _, a := range b.pending {
		ref, ok := b.ids[a.prop.Ref]
		if !ok {
			return &uierr.Error{
				Kind:     uierr.ErrUnresolvableReference,
				Document: b.iface.Document,
				Line:     a.prop.Pos.Line,
				Column:   a.prop.Pos.Column,
				ID:       a.prop.Ref,
				Class:    a.owner.Class.Name,
				Message:  "no object declares id " + a.prop.Ref,
			}
		}
		if err := a.target.SetReference(a.prop.Name, ref); err != nil {
			return b.fail(a.owner, err, "cannot set reference %q", a.prop.Name)
		}
		b.logger.Debug("Resolved reference.", "assignment", a.String())
	}
	return nil
}
