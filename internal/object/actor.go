// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package object

import "fmt"

// Actor is a Base that accepts constraints. Leaf widgets embed it.
type Actor struct {
	Base
	constraints []Constraint
}

// NewActor creates an Actor for the named class.
func NewActor(class string, props Props) Actor {
	return Actor{Base: NewBase(class, props)}
}

// AddConstraint appends a constraint.
func (a *Actor) AddConstraint(c Constraint) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if c == nil {
		return fmt.Errorf("%s: constraint is nil", a.class)
	}
	a.constraints = append(a.constraints, c)
	return nil
}

// Constraints returns the constraints in the order they were added.
func (a *Actor) Constraints() []Constraint {
	return append([]Constraint(nil), a.constraints...)
}

// Destroy destroys the attached constraints and the actor itself.
func (a *Actor) Destroy() {
	for _, c := range a.constraints {
		c.Destroy()
	}
	a.constraints = nil
	a.Base.Destroy()
}

// Group is an Actor that holds children and an optional layout strategy.
type Group struct {
	Actor
	children []Object
	layout   Layout
}

// NewGroup creates a Group for the named class.
func NewGroup(class string, props Props) Group {
	return Group{Actor: NewActor(class, props)}
}

// AddChild appends a child.
func (g *Group) AddChild(child Object) error {
	if g.destroyed {
		return ErrDestroyed
	}
	if child == nil {
		return fmt.Errorf("%s: child is nil", g.class)
	}
	g.children = append(g.children, child)
	return nil
}

// Children returns the children in the order they were added.
func (g *Group) Children() []Object {
	return append([]Object(nil), g.children...)
}

// SetLayout installs the layout strategy.
func (g *Group) SetLayout(l Layout) error {
	if g.destroyed {
		return ErrDestroyed
	}
	if g.layout != nil {
		return fmt.Errorf("%s: layout already set to %s", g.class, g.layout.ClassName())
	}
	g.layout = l
	return nil
}

// Layout returns the layout strategy, or nil.
func (g *Group) Layout() Layout {
	return g.layout
}

// Destroy destroys the children, the layout and the group itself.
func (g *Group) Destroy() {
	for _, c := range g.children {
		c.Destroy()
	}
	g.children = nil
	if g.layout != nil {
		g.layout.Destroy()
		g.layout = nil
	}
	g.Actor.Destroy()
}
