// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the node types of the intermediate representation.
package ir

import (
	"github.com/specialistvlad/uigraph/internal/classes"
	"github.com/specialistvlad/uigraph/internal/markup"
)

// Property is one <property> declaration. Exactly one of Value or Ref is meaningful.
type Property struct {
	Name         string
	Value        string
	Translatable bool
	Ref          string
	Pos          markup.Position
}

// IsReference reports whether the property names another object.
func (p Property) IsReference() bool {
	return p.Ref != ""
}

// Object is one <object> node.
type Object struct {
	// ID is the optional symbolic id, unique within one interface.
	ID string
	// ClassName is the class as written in the document.
	ClassName   string
	Class       *classes.Class
	Properties  []Property
	Constraints []*Object
	Layout      *Object
	Children    []*Object
	Pos         markup.Position
}

// Walk visits o and every object nested under it, depth-first and pre-order:
// the object, then its children, its layout and its constraints. Walking stops
// at the first error fn returns.
func (o *Object) Walk(fn func(*Object) error) error {
	if o == nil {
		return nil
	}
	if err := fn(o); err != nil {
		return err
	}
	for _, c := range o.Children {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	if err := o.Layout.Walk(fn); err != nil {
		return err
	}
	for _, c := range o.Constraints {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Interface is a named root object tree from one document.
type Interface struct {
	ID       string
	Document string
	Root     *Object
	Pos      markup.Position
}

// Count returns the number of objects in the tree.
func (i *Interface) Count() int {
	n := 0
	_ = i.Root.Walk(func(*Object) error {
		n++
		return nil
	})
	return n
}
