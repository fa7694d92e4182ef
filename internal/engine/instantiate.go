// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"github.com/specialistvlad/uigraph/internal/ir"
	"github.com/specialistvlad/uigraph/internal/object"
	"github.com/specialistvlad/uigraph/internal/uierr"
)

// instantiate builds o and everything nested in it. Construction is pre-order:
// an object exists before its children, layout and constraints are built and
// attached to it.
func (b *build) instantiate(o *ir.Object) (object.Object, error) {
	props, refs, err := b.partition(o)
	if err != nil {
		return nil, err
	}

	live, err := o.Class.New(props)
	if err != nil {
		return nil, b.fail(o, err, "constructor failed")
	}
	if live == nil {
		return nil, b.fail(o, nil, "constructor returned no object")
	}
	b.created = append(b.created, live)
	if o.ID != "" {
		live.SetID(o.ID)
		b.ids[o.ID] = live
	}
	b.logger.Debug("Constructed object.", "class", o.Class.Name, "id", o.ID, "properties", len(props))

	for _, c := range o.Children {
		if err := b.attachChild(o, live, c); err != nil {
			return nil, err
		}
	}
	if o.Layout != nil {
		if err := b.attachLayout(o, live, o.Layout); err != nil {
			return nil, err
		}
	}
	for _, c := range o.Constraints {
		if err := b.attachConstraint(o, live, c); err != nil {
			return nil, err
		}
	}

	for _, p := range refs {
		b.pending = append(b.pending, assignment{owner: o, target: live, prop: p})
	}
	return live, nil
}

// partition converts the literal properties of o and returns the reference
// properties for later.
func (b *build) partition(o *ir.Object) (object.Props, []ir.Property, error) {
	props := make(object.Props, len(o.Properties))
	var refs []ir.Property

	for _, p := range o.Properties {
		spec, ok := o.Class.Property(p.Name)
		if !ok {
			return nil, nil, b.fail(o, nil, "class %s has no property %q", o.Class.Name, p.Name)
		}
		if p.IsReference() {
			if !spec.Reference {
				return nil, nil, b.fail(o, nil, "property %q takes a literal value, not a reference", p.Name)
			}
			refs = append(refs, p)
			continue
		}

		text := p.Value
		if p.Translatable {
			text = b.translator.Translate(text)
		}
		v, err := o.Class.Convert(p.Name, text)
		if err != nil {
			return nil, nil, b.fail(o, err, "invalid property %q", p.Name)
		}
		props[p.Name] = v
	}
	return props, refs, nil
}

func (b *build) attachChild(o *ir.Object, live object.Object, child *ir.Object) error {
	container, ok := live.(object.Container)
	if !ok {
		return b.fail(o, nil, "%s cannot hold children", o.Class.Name)
	}
	c, err := b.instantiate(child)
	if err != nil {
		return err
	}
	if err := container.AddChild(c); err != nil {
		return b.fail(o, err, "cannot add child %s", c.ClassName())
	}
	return nil
}

func (b *build) attachLayout(o *ir.Object, live object.Object, layout *ir.Object) error {
	host, ok := live.(object.LayoutHost)
	if !ok {
		return b.fail(o, nil, "%s cannot take a layout", o.Class.Name)
	}
	l, err := b.instantiate(layout)
	if err != nil {
		return err
	}
	strategy, ok := l.(object.Layout)
	if !ok {
		return b.fail(layout, nil, "%s did not build a layout strategy", layout.Class.Name)
	}
	if err := host.SetLayout(strategy); err != nil {
		return b.fail(o, err, "cannot set layout %s", l.ClassName())
	}
	return nil
}

func (b *build) attachConstraint(o *ir.Object, live object.Object, constraint *ir.Object) error {
	target, ok := live.(object.Constrainable)
	if !ok {
		return b.fail(o, nil, "%s does not accept constraints", o.Class.Name)
	}
	c, err := b.instantiate(constraint)
	if err != nil {
		return err
	}
	cc, ok := c.(object.Constraint)
	if !ok {
		return b.fail(constraint, nil, "%s did not build a constraint", constraint.Class.Name)
	}
	if err := target.AddConstraint(cc); err != nil {
		return b.fail(o, err, "cannot add constraint %s", c.ClassName())
	}
	return nil
}

// fail reports a construction failure originating at o.
func (b *build) fail(o *ir.Object, cause error, format string, args ...any) error {
	e := uierr.Construction(o.Class.Name, o.ID, cause, format, args...)
	e.Document = b.iface.Document
	e.Line, e.Column = o.Pos.Line, o.Pos.Column
	return e
}
