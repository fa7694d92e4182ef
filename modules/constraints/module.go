// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package constraints provides the geometric constraint classes:
// AlignConstraint, BindConstraint and SnapConstraint. Each one ties the actor
// it is attached to to a source object named by the "source" reference.
package constraints

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/uigraph/internal/classes"
	"github.com/specialistvlad/uigraph/internal/object"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the classes.Module interface for this package.
type Module struct{}

// constraint is embedded by every constraint class.
type constraint struct {
	object.Base
	kind string
}

// ConstraintKind implements object.Constraint.
func (c *constraint) ConstraintKind() string { return c.kind }

// Source returns the object the constraint follows, once references are resolved.
func (c *constraint) Source() (object.Object, bool) {
	return c.Reference("source")
}

// AlignConstraint aligns the actor relative to the source along an axis.
type AlignConstraint struct {
	constraint
	Axis   string
	Factor float64
}

// BindConstraint copies a coordinate of the source, plus an offset.
type BindConstraint struct {
	constraint
	Coordinate string
	Offset     float64
}

// SnapConstraint snaps an edge of the actor to an edge of the source.
type SnapConstraint struct {
	constraint
	FromEdge string
	ToEdge   string
	Offset   float64
}

var (
	axes        = []string{"x", "y", "both"}
	coordinates = []string{"x", "y", "width", "height", "position", "size", "all"}
	edges       = []string{"left", "right", "top", "bottom"}
)

func oneOf(props object.Props, name, def string, allowed []string) (string, error) {
	v, err := props.String(name, def)
	if err != nil {
		return "", err
	}
	if !slices.Contains(allowed, v) {
		return "", fmt.Errorf("%s must be one of %v, got %q", name, allowed, v)
	}
	return v, nil
}

// NewAlignConstraint is the AlignConstraint constructor.
func NewAlignConstraint(props object.Props) (object.Object, error) {
	axis, err := oneOf(props, "align-axis", "x", axes)
	if err != nil {
		return nil, err
	}
	factor, err := props.Number("factor", 0)
	if err != nil {
		return nil, err
	}
	if factor < 0 || factor > 1 {
		return nil, fmt.Errorf("factor must be between 0 and 1, got %v", factor)
	}
	return &AlignConstraint{
		constraint: constraint{Base: object.NewBase("AlignConstraint", props), kind: "align"},
		Axis:       axis,
		Factor:     factor,
	}, nil
}

// NewBindConstraint is the BindConstraint constructor.
func NewBindConstraint(props object.Props) (object.Object, error) {
	coordinate, err := oneOf(props, "coordinate", "all", coordinates)
	if err != nil {
		return nil, err
	}
	offset, err := props.Number("offset", 0)
	if err != nil {
		return nil, err
	}
	return &BindConstraint{
		constraint: constraint{Base: object.NewBase("BindConstraint", props), kind: "bind"},
		Coordinate: coordinate,
		Offset:     offset,
	}, nil
}

// NewSnapConstraint is the SnapConstraint constructor.
func NewSnapConstraint(props object.Props) (object.Object, error) {
	from, err := oneOf(props, "from-edge", "left", edges)
	if err != nil {
		return nil, err
	}
	to, err := oneOf(props, "to-edge", "left", edges)
	if err != nil {
		return nil, err
	}
	offset, err := props.Number("offset", 0)
	if err != nil {
		return nil, err
	}
	return &SnapConstraint{
		constraint: constraint{Base: object.NewBase("SnapConstraint", props), kind: "snap"},
		FromEdge:   from,
		ToEdge:     to,
		Offset:     offset,
	}, nil
}

// Register registers the constraint classes.
func (m *Module) Register(r *classes.Registry) {
	r.Register(&classes.Class{
		Name:  "AlignConstraint",
		Roles: classes.RoleConstraint,
		Properties: map[string]classes.PropertySpec{
			"source":     classes.Ref(),
			"align-axis": classes.Literal(cty.String),
			"factor":     classes.Literal(cty.Number),
		},
		New: NewAlignConstraint,
	})
	r.Register(&classes.Class{
		Name:  "BindConstraint",
		Roles: classes.RoleConstraint,
		Properties: map[string]classes.PropertySpec{
			"source":     classes.Ref(),
			"coordinate": classes.Literal(cty.String),
			"offset":     classes.Literal(cty.Number),
		},
		New: NewBindConstraint,
	})
	r.Register(&classes.Class{
		Name:  "SnapConstraint",
		Roles: classes.RoleConstraint,
		Properties: map[string]classes.PropertySpec{
			"source":    classes.Ref(),
			"from-edge": classes.Literal(cty.String),
			"to-edge":   classes.Literal(cty.String),
			"offset":    classes.Literal(cty.Number),
		},
		New: NewSnapConstraint,
	})
}
