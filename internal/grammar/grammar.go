// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package grammar holds the static knowledge about interface documents: the
// legal tag kinds, the attributes each one accepts and which tag may nest
// inside which. It has no state and is consulted on every element open.
package grammar

// Kind identifies a tag kind.
type Kind int

const (
	// Invalid is returned for unknown tag names.
	Invalid Kind = iota
	// Root is the document level. It never appears as an element.
	Root
	Interface
	Object
	Child
	Property
	Constraint
	Layout
)

var kindNames = map[Kind]string{
	Root:       "document",
	Interface:  "interface",
	Object:     "object",
	Child:      "child",
	Property:   "property",
	Constraint: "constraint",
	Layout:     "layout",
}

var tagKinds = map[string]Kind{
	"interface":  Interface,
	"object":     Object,
	"child":      Child,
	"property":   Property,
	"constraint": Constraint,
	"layout":     Layout,
}

// attributes lists the attributes each kind accepts.
var attributes = map[Kind][]string{
	Interface: {"id"},
	Object:    {"id", "class"},
	Property:  {"name", "translatable", "ref"},
}

// String returns the tag name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Lookup maps a tag name to its kind.
func Lookup(name string) (Kind, bool) {
	k, ok := tagKinds[name]
	return k, ok
}

// Allowed reports whether a child tag kind may nest directly inside a parent kind.
func Allowed(parent, child Kind) bool {
	switch parent {
	case Root:
		return child == Interface
	case Interface, Child, Constraint, Layout:
		return child == Object
	case Object:
		return child == Child || child == Constraint || child == Layout || child == Property
	default:
		return false
	}
}

// AcceptsAttribute reports whether the attribute name is legal on the kind.
func AcceptsAttribute(k Kind, attr string) bool {
	for _, a := range attributes[k] {
		if a == attr {
			return true
		}
	}
	return false
}

// TextOnly reports whether elements of the kind hold leaf text instead of markup.
func TextOnly(k Kind) bool {
	return k == Property
}
