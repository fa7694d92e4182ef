// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file implements the parse-time builder. It receives markup events and
// assembles Object nodes using two stacks: one frame per open tag, and one
// entry per open <object>. A frame is converted into permanent data when its
// element closes and then discarded.
package ir

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/uigraph/internal/classes"
	"github.com/specialistvlad/uigraph/internal/ctxlog"
	"github.com/specialistvlad/uigraph/internal/grammar"
	"github.com/specialistvlad/uigraph/internal/markup"
	"github.com/specialistvlad/uigraph/internal/uierr"
)

// Resolver looks up the class for a name written in a document.
type Resolver interface {
	Resolve(name string) (*classes.Class, error)
}

// propertyFrame collects a <property> element until it closes.
type propertyFrame struct {
	name         string
	translatable bool
	ref          string
	hasRef       bool
	text         strings.Builder
	sawText      bool
}

// tagFrame is the builder's view of one open element.
type tagFrame struct {
	kind grammar.Kind
	pos  markup.Position
	// id is set for <interface> frames.
	id string
	// held is the single object a <interface>, <child>, <constraint> or
	// <layout> wrapper received.
	held *Object
	prop *propertyFrame
}

// builder implements markup.Handler.
type builder struct {
	ctx      context.Context
	resolver Resolver
	tags     []*tagFrame
	objects  []*Object
	result   *Interface
}

func newBuilder(ctx context.Context, resolver Resolver) *builder {
	return &builder{ctx: ctx, resolver: resolver}
}

func (b *builder) top() *tagFrame {
	if len(b.tags) == 0 {
		return nil
	}
	return b.tags[len(b.tags)-1]
}

func (b *builder) currentObject() *Object {
	return b.objects[len(b.objects)-1]
}

// OpenElement implements markup.Handler.
func (b *builder) OpenElement(kind grammar.Kind, attrs markup.Attrs, pos markup.Position) error {
	parent := b.top()
	frame := &tagFrame{kind: kind, pos: pos}

	switch kind {
	case grammar.Interface:
		frame.id, _ = attrs.Get("id")
		if frame.id != "" && !ValidIdentifier(frame.id) {
			return uierr.Malformed(pos.Line, pos.Column, "invalid interface id %q", frame.id)
		}

	case grammar.Object:
		if parent.held != nil {
			return uierr.Malformed(pos.Line, pos.Column, "<%s> may contain only one object", parent.kind)
		}
		obj, err := b.openObject(parent.kind, attrs, pos)
		if err != nil {
			return err
		}
		b.objects = append(b.objects, obj)

	case grammar.Property:
		prop, err := openProperty(attrs, pos)
		if err != nil {
			return err
		}
		frame.prop = prop
	}

	b.tags = append(b.tags, frame)
	return nil
}

func (b *builder) openObject(nesting grammar.Kind, attrs markup.Attrs, pos markup.Position) (*Object, error) {
	className, ok := attrs.Get("class")
	if !ok || className == "" {
		return nil, uierr.Malformed(pos.Line, pos.Column, "<object> requires a non-empty class attribute")
	}
	id, hasID := attrs.Get("id")
	if hasID && !ValidIdentifier(id) {
		return nil, uierr.Malformed(pos.Line, pos.Column, "invalid object id %q", id)
	}

	class, err := b.resolver.Resolve(className)
	if err != nil {
		return nil, atPosition(err, pos)
	}

	role := roleFor(nesting)
	if !class.Has(role) {
		return nil, &uierr.Error{
			Kind:    uierr.ErrInvalidClassForContext,
			Class:   className,
			ID:      id,
			Line:    pos.Line,
			Column:  pos.Column,
			Message: fmt.Sprintf("class %s (%s) cannot be used as %s inside <%s>", class.Name, class.Roles, role, nesting),
		}
	}

	ctxlog.FromContext(b.ctx).Debug("Parsed object.", "class", class.Name, "id", id, "context", nesting.String(), "line", pos.Line)
	return &Object{ID: id, ClassName: className, Class: class, Pos: pos}, nil
}

func openProperty(attrs markup.Attrs, pos markup.Position) (*propertyFrame, error) {
	name, ok := attrs.Get("name")
	if !ok || name == "" {
		return nil, uierr.Malformed(pos.Line, pos.Column, "<property> requires a name attribute")
	}
	if !ValidIdentifier(name) {
		return nil, uierr.Malformed(pos.Line, pos.Column, "invalid property name %q", name)
	}
	prop := &propertyFrame{name: name}

	if raw, ok := attrs.Get("translatable"); ok {
		v, err := ParseBool(raw)
		if err != nil {
			return nil, uierr.Malformed(pos.Line, pos.Column, "property %q: translatable: %v", name, err)
		}
		prop.translatable = v
	}
	if ref, ok := attrs.Get("ref"); ok {
		if ref == "" {
			return nil, uierr.MalformedDetail(uierr.ErrMalformedProperty, pos.Line, pos.Column, "property %q: ref must not be empty", name)
		}
		prop.ref, prop.hasRef = ref, true
	}
	return prop, nil
}

// Text implements markup.Handler. The parser only delivers text inside <property>.
func (b *builder) Text(text string, pos markup.Position) error {
	if f := b.top(); f != nil && f.prop != nil {
		f.prop.text.WriteString(text)
		f.prop.sawText = true
	}
	return nil
}

// CloseElement implements markup.Handler.
func (b *builder) CloseElement(kind grammar.Kind, pos markup.Position) error {
	frame := b.top()
	b.tags = b.tags[:len(b.tags)-1]
	parent := b.top()

	switch kind {
	case grammar.Property:
		prop, err := closeProperty(frame)
		if err != nil {
			return err
		}
		obj := b.currentObject()
		obj.Properties = append(obj.Properties, prop)

	case grammar.Object:
		obj := b.currentObject()
		b.objects = b.objects[:len(b.objects)-1]
		parent.held = obj

	case grammar.Child, grammar.Constraint, grammar.Layout:
		if frame.held == nil {
			return uierr.Malformed(frame.pos.Line, frame.pos.Column, "<%s> must contain an object", kind)
		}
		return b.attach(kind, frame)

	case grammar.Interface:
		if frame.held == nil {
			return uierr.Malformed(frame.pos.Line, frame.pos.Column, "<interface> must contain an object")
		}
		if frame.id == "" {
			return uierr.MalformedDetail(uierr.ErrMissingInterfaceID, frame.pos.Line, frame.pos.Column, "<interface> requires a non-empty id attribute")
		}
		b.result = &Interface{ID: frame.id, Root: frame.held, Pos: frame.pos}
	}
	return nil
}

func (b *builder) attach(kind grammar.Kind, frame *tagFrame) error {
	owner := b.currentObject()
	switch kind {
	case grammar.Child:
		owner.Children = append(owner.Children, frame.held)
	case grammar.Constraint:
		owner.Constraints = append(owner.Constraints, frame.held)
	case grammar.Layout:
		if owner.Layout != nil {
			return uierr.MalformedDetail(uierr.ErrDuplicateLayout, frame.pos.Line, frame.pos.Column,
				"object %s already has a layout (%s)", describe(owner), owner.Layout.ClassName)
		}
		owner.Layout = frame.held
	}
	return nil
}

func closeProperty(frame *tagFrame) (Property, error) {
	p := frame.prop
	pos := frame.pos
	prop := Property{Name: p.name, Translatable: p.translatable, Ref: p.ref, Pos: pos}

	text := p.text.String()
	if p.hasRef {
		if strings.TrimSpace(text) != "" {
			return Property{}, uierr.MalformedDetail(uierr.ErrMalformedProperty, pos.Line, pos.Column,
				"property %q has both a ref and a literal value", p.name)
		}
		return prop, nil
	}
	if !p.sawText {
		return Property{}, uierr.MalformedDetail(uierr.ErrMalformedProperty, pos.Line, pos.Column,
			"property %q has neither a ref nor a literal value", p.name)
	}
	prop.Value = text
	return prop, nil
}

// roleFor returns the role an object must play inside the given parent tag.
func roleFor(parent grammar.Kind) classes.Role {
	switch parent {
	case grammar.Constraint:
		return classes.RoleConstraint
	case grammar.Layout:
		return classes.RoleLayout
	default:
		return classes.RoleItem
	}
}

func describe(o *Object) string {
	if o.ID != "" {
		return o.ClassName + "#" + o.ID
	}
	return o.ClassName
}

func atPosition(err error, pos markup.Position) error {
	if e, ok := err.(*uierr.Error); ok && e.Line == 0 {
		e.Line, e.Column = pos.Line, pos.Column
	}
	return err
}
