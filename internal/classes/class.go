// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package classes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/uigraph/internal/object"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Role is the set of structural positions a class may occupy.
type Role uint8

const (
	// RoleItem classes can be children of a container and interface roots.
	RoleItem Role = 1 << iota
	// RoleConstraint classes can be attached under <constraint>.
	RoleConstraint
	// RoleLayout classes can be installed under <layout>.
	RoleLayout
)

var roleNames = []struct {
	role Role
	name string
}{
	{RoleItem, "item"},
	{RoleConstraint, "constraint"},
	{RoleLayout, "layout"},
}

// String lists the roles separated by '|'.
func (r Role) String() string {
	var parts []string
	for _, rn := range roleNames {
		if r&rn.role != 0 {
			parts = append(parts, rn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// PropertySpec declares one property a class accepts.
type PropertySpec struct {
	// Type is the cty type literal values are converted to.
	Type cty.Type
	// Reference properties hold another live object and are only settable via ref.
	Reference bool
}

// Literal declares a literal property of the given type.
func Literal(t cty.Type) PropertySpec {
	return PropertySpec{Type: t}
}

// Ref declares an object reference property.
func Ref() PropertySpec {
	return PropertySpec{Type: cty.DynamicPseudoType, Reference: true}
}

// Constructor creates a live object from converted literal properties.
type Constructor func(props object.Props) (object.Object, error)

// Class describes a type constructible from markup.
type Class struct {
	Name       string
	Roles      Role
	Properties map[string]PropertySpec
	New        Constructor
}

// Has reports whether the class may play the role.
func (c *Class) Has(r Role) bool {
	return c.Roles&r == r
}

// Property returns the spec of a declared property.
func (c *Class) Property(name string) (PropertySpec, bool) {
	spec, ok := c.Properties[name]
	return spec, ok
}

// PropertyNames returns the declared property names in sorted order.
func (c *Class) PropertyNames() []string {
	names := make([]string, 0, len(c.Properties))
	for name := range c.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Convert turns literal text into the declared type of a property.
func (c *Class) Convert(name, literal string) (cty.Value, error) {
	spec, ok := c.Properties[name]
	if !ok {
		return cty.NilVal, fmt.Errorf("class %s has no property %q", c.Name, name)
	}
	if spec.Reference {
		return cty.NilVal, fmt.Errorf("property %q of %s takes an object reference, not text", name, c.Name)
	}
	v, err := convert.Convert(cty.StringVal(literal), spec.Type)
	if err != nil {
		return cty.NilVal, fmt.Errorf("property %q of %s: cannot use %q as %s: %w", name, c.Name, literal, spec.Type.FriendlyName(), err)
	}
	return v, nil
}
