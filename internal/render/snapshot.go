// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package render describes live object graphs as plain data and prints them.
package render

import (
	"strconv"

	"github.com/specialistvlad/uigraph/internal/object"
)

// Node is a pure-data description of one live object. References are given
// as the path of the target within the same snapshot, for example
// "/children/0/layout". The root's path is "/".
type Node struct {
	Class       string            `yaml:"class"`
	ID          string            `yaml:"id,omitempty"`
	Properties  map[string]string `yaml:"properties,omitempty"`
	References  map[string]string `yaml:"references,omitempty"`
	Layout      *Node             `yaml:"layout,omitempty"`
	Constraints []*Node           `yaml:"constraints,omitempty"`
	Children    []*Node           `yaml:"children,omitempty"`
}

// Snapshot describes the graph rooted at root. Two builds of the same
// interface produce equal snapshots.
func Snapshot(root object.Object) *Node {
	paths := make(map[object.Object]string)
	collectPaths(root, "", paths)
	return snapshot(root, paths)
}

func collectPaths(o object.Object, path string, paths map[object.Object]string) {
	if path == "" {
		paths[o] = "/"
	} else {
		paths[o] = path
	}
	if c, ok := o.(object.Container); ok {
		for i, child := range c.Children() {
			collectPaths(child, path+"/children/"+strconv.Itoa(i), paths)
		}
	}
	if h, ok := o.(object.LayoutHost); ok && h.Layout() != nil {
		collectPaths(h.Layout(), path+"/layout", paths)
	}
	if c, ok := o.(object.Constrainable); ok {
		for i, constraint := range c.Constraints() {
			collectPaths(constraint, path+"/constraints/"+strconv.Itoa(i), paths)
		}
	}
}

func snapshot(o object.Object, paths map[object.Object]string) *Node {
	n := &Node{Class: o.ClassName(), ID: o.ID()}

	if names := o.PropertyNames(); len(names) > 0 {
		n.Properties = make(map[string]string, len(names))
		for _, name := range names {
			v, _ := o.Property(name)
			n.Properties[name] = object.Format(v)
		}
	}
	if names := o.ReferenceNames(); len(names) > 0 {
		n.References = make(map[string]string, len(names))
		for _, name := range names {
			target, _ := o.Reference(name)
			n.References[name] = pathOf(target, paths)
		}
	}

	if c, ok := o.(object.Container); ok {
		for _, child := range c.Children() {
			n.Children = append(n.Children, snapshot(child, paths))
		}
	}
	if h, ok := o.(object.LayoutHost); ok && h.Layout() != nil {
		n.Layout = snapshot(h.Layout(), paths)
	}
	if c, ok := o.(object.Constrainable); ok {
		for _, constraint := range c.Constraints() {
			n.Constraints = append(n.Constraints, snapshot(constraint, paths))
		}
	}
	return n
}

// pathOf names a reference target. Targets outside the graph are shown by class and id.
func pathOf(target object.Object, paths map[object.Object]string) string {
	if p, ok := paths[target]; ok {
		return p
	}
	if target.ID() != "" {
		return "external:" + target.ClassName() + "#" + target.ID()
	}
	return "external:" + target.ClassName()
}
