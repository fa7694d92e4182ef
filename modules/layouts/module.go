// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package layouts provides the layout-strategy classes: BoxLayout, BinLayout
// and GridLayout.
package layouts

import (
	"fmt"

	"github.com/specialistvlad/uigraph/internal/classes"
	"github.com/specialistvlad/uigraph/internal/object"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the classes.Module interface for this package.
type Module struct{}

// BoxLayout stacks children along one axis.
type BoxLayout struct {
	object.Base
	Orientation string
}

// LayoutKind implements object.Layout.
func (l *BoxLayout) LayoutKind() string { return "box" }

// BinLayout stacks children on top of each other.
type BinLayout struct {
	object.Base
}

// LayoutKind implements object.Layout.
func (l *BinLayout) LayoutKind() string { return "bin" }

// GridLayout places children on a grid with a fixed column count.
type GridLayout struct {
	object.Base
	Columns int
}

// LayoutKind implements object.Layout.
func (l *GridLayout) LayoutKind() string { return "grid" }

func nonNegative(props object.Props, names ...string) error {
	for _, name := range names {
		n, err := props.Number(name, 0)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, n)
		}
	}
	return nil
}

// NewBoxLayout is the BoxLayout constructor.
func NewBoxLayout(props object.Props) (object.Object, error) {
	orientation, err := props.String("orientation", "horizontal")
	if err != nil {
		return nil, err
	}
	switch orientation {
	case "horizontal", "vertical":
	default:
		return nil, fmt.Errorf("orientation must be horizontal or vertical, got %q", orientation)
	}
	if err := nonNegative(props, "spacing"); err != nil {
		return nil, err
	}
	return &BoxLayout{Base: object.NewBase("BoxLayout", props), Orientation: orientation}, nil
}

// NewBinLayout is the BinLayout constructor.
func NewBinLayout(props object.Props) (object.Object, error) {
	return &BinLayout{Base: object.NewBase("BinLayout", props)}, nil
}

// NewGridLayout is the GridLayout constructor.
func NewGridLayout(props object.Props) (object.Object, error) {
	columns, err := props.Int("columns", 1)
	if err != nil {
		return nil, err
	}
	if columns <= 0 {
		return nil, fmt.Errorf("columns must be positive, got %d", columns)
	}
	if err := nonNegative(props, "row-spacing", "column-spacing"); err != nil {
		return nil, err
	}
	return &GridLayout{Base: object.NewBase("GridLayout", props), Columns: columns}, nil
}

// Register registers the layout classes.
func (m *Module) Register(r *classes.Registry) {
	r.Register(&classes.Class{
		Name:  "BoxLayout",
		Roles: classes.RoleLayout,
		Properties: map[string]classes.PropertySpec{
			"orientation": classes.Literal(cty.String),
			"spacing":     classes.Literal(cty.Number),
			"homogeneous": classes.Literal(cty.Bool),
		},
		New: NewBoxLayout,
	})
	r.Register(&classes.Class{
		Name:       "BinLayout",
		Roles:      classes.RoleLayout,
		Properties: map[string]classes.PropertySpec{},
		New:        NewBinLayout,
	})
	r.Register(&classes.Class{
		Name:  "GridLayout",
		Roles: classes.RoleLayout,
		Properties: map[string]classes.PropertySpec{
			"columns":        classes.Literal(cty.Number),
			"row-spacing":    classes.Literal(cty.Number),
			"column-spacing": classes.Literal(cty.Number),
			"homogeneous":    classes.Literal(cty.Bool),
		},
		New: NewGridLayout,
	})
}
