// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package object defines the live objects produced by the builder and the
// capability interfaces the builder relies on to link them together.
//
// A live object only has to implement Object. Whether it can hold children,
// a layout strategy or constraints is discovered through the capability
// interfaces (Container, LayoutHost, Constrainable), and whether it can be used
// as a layout strategy or a constraint through Layout and Constraint. Concrete
// classes embed Base, Actor or Group to get these for free.
package object

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// ErrDestroyed is returned when a destroyed object is modified.
var ErrDestroyed = errors.New("object is destroyed")

// Object is the minimal contract of a live object.
type Object interface {
	ClassName() string
	ID() string
	SetID(id string)

	Property(name string) (cty.Value, bool)
	PropertyNames() []string

	Reference(name string) (Object, bool)
	ReferenceNames() []string
	SetReference(name string, target Object) error

	Destroy()
	Destroyed() bool
}

// Container is an object that owns an ordered list of child objects.
type Container interface {
	Object
	AddChild(child Object) error
	Children() []Object
}

// Layout is an object usable as a layout strategy.
type Layout interface {
	Object
	LayoutKind() string
}

// LayoutHost is an object that delegates child placement to a Layout.
type LayoutHost interface {
	Object
	SetLayout(l Layout) error
	Layout() Layout
}

// Constraint is an object usable as a geometric constraint.
type Constraint interface {
	Object
	ConstraintKind() string
}

// Constrainable is an object that accepts constraints.
type Constrainable interface {
	Object
	AddConstraint(c Constraint) error
	Constraints() []Constraint
}

// Base implements Object. It stores literal properties as cty values and
// object references by property name.
type Base struct {
	class     string
	id        string
	props     Props
	refs      map[string]Object
	destroyed bool
}

// NewBase creates a Base for the named class holding a copy of props.
func NewBase(class string, props Props) Base {
	return Base{
		class: class,
		props: props.Clone(),
		refs:  make(map[string]Object),
	}
}

// ClassName returns the name of the class that constructed the object.
func (b *Base) ClassName() string { return b.class }

// ID returns the symbolic id the object was declared with, if any.
func (b *Base) ID() string { return b.id }

// SetID records the symbolic id.
func (b *Base) SetID(id string) { b.id = id }

// Property returns a literal property value.
func (b *Base) Property(name string) (cty.Value, bool) {
	v, ok := b.props[name]
	return v, ok
}

// SetProperty stores a literal property value.
func (b *Base) SetProperty(name string, v cty.Value) error {
	if b.destroyed {
		return ErrDestroyed
	}
	if b.props == nil {
		b.props = make(Props)
	}
	b.props[name] = v
	return nil
}

// PropertyNames returns the literal property names in sorted order.
func (b *Base) PropertyNames() []string {
	return sortedKeys(b.props)
}

// Reference returns the object a reference property points to.
func (b *Base) Reference(name string) (Object, bool) {
	o, ok := b.refs[name]
	return o, ok
}

// ReferenceNames returns the reference property names in sorted order.
func (b *Base) ReferenceNames() []string {
	return sortedKeys(b.refs)
}

// SetReference points a reference property at target.
func (b *Base) SetReference(name string, target Object) error {
	if b.destroyed {
		return ErrDestroyed
	}
	if target == nil {
		return fmt.Errorf("reference %q: target is nil", name)
	}
	if b.refs == nil {
		b.refs = make(map[string]Object)
	}
	b.refs[name] = target
	return nil
}

// Destroy releases the object. References are dropped so a destroyed graph
// does not keep its peers reachable.
func (b *Base) Destroy() {
	b.destroyed = true
	b.refs = nil
}

// Destroyed reports whether Destroy was called.
func (b *Base) Destroyed() bool { return b.destroyed }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
