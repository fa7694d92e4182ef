// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package widgets provides the container-item classes: Container, Label,
// Button and Icon.
package widgets

import (
	"fmt"

	"github.com/specialistvlad/uigraph/internal/classes"
	"github.com/specialistvlad/uigraph/internal/object"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the classes.Module interface for this package.
type Module struct{}

// Container groups children and may delegate their placement to a layout.
type Container struct {
	object.Group
}

// Label shows one line of text.
type Label struct {
	object.Actor
}

// Text returns the label text.
func (l *Label) Text() string {
	v, _ := l.Property("text")
	return object.Format(v)
}

// Button is a clickable container, usually holding a label.
type Button struct {
	object.Group
}

// Icon shows a named icon.
type Icon struct {
	object.Actor
}

// itemProperties returns the properties every widget accepts plus extra.
func itemProperties(extra map[string]classes.PropertySpec) map[string]classes.PropertySpec {
	props := map[string]classes.PropertySpec{
		"name":        classes.Literal(cty.String),
		"visible":     classes.Literal(cty.Bool),
		"reactive":    classes.Literal(cty.Bool),
		"style-class": classes.Literal(cty.String),
		"width":       classes.Literal(cty.Number),
		"height":      classes.Literal(cty.Number),
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

func checkSize(props object.Props) error {
	for _, name := range []string{"width", "height"} {
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

// NewContainer is the Container constructor.
func NewContainer(props object.Props) (object.Object, error) {
	if err := checkSize(props); err != nil {
		return nil, err
	}
	return &Container{Group: object.NewGroup("Container", props)}, nil
}

// NewLabel is the Label constructor.
func NewLabel(props object.Props) (object.Object, error) {
	if err := checkSize(props); err != nil {
		return nil, err
	}
	return &Label{Actor: object.NewActor("Label", props)}, nil
}

// NewButton is the Button constructor.
func NewButton(props object.Props) (object.Object, error) {
	if err := checkSize(props); err != nil {
		return nil, err
	}
	return &Button{Group: object.NewGroup("Button", props)}, nil
}

// NewIcon is the Icon constructor. An icon without a name cannot be looked up.
func NewIcon(props object.Props) (object.Object, error) {
	if err := checkSize(props); err != nil {
		return nil, err
	}
	name, err := props.String("icon-name", "")
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("icon-name is required")
	}
	size, err := props.Int("icon-size", 16)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("icon-size must be positive, got %d", size)
	}
	return &Icon{Actor: object.NewActor("Icon", props)}, nil
}

// Register registers the widget classes.
func (m *Module) Register(r *classes.Registry) {
	r.Register(&classes.Class{
		Name:  "Container",
		Roles: classes.RoleItem,
		Properties: itemProperties(map[string]classes.PropertySpec{
			"focus-target": classes.Ref(),
			"spacing":      classes.Literal(cty.Number),
		}),
		New: NewContainer,
	})
	r.Register(&classes.Class{
		Name:  "Label",
		Roles: classes.RoleItem,
		Properties: itemProperties(map[string]classes.PropertySpec{
			"text":   classes.Literal(cty.String),
			"xalign": classes.Literal(cty.Number),
		}),
		New: NewLabel,
	})
	r.Register(&classes.Class{
		Name:  "Button",
		Roles: classes.RoleItem,
		Properties: itemProperties(map[string]classes.PropertySpec{
			"label":       classes.Literal(cty.String),
			"can-focus":   classes.Literal(cty.Bool),
			"label-actor": classes.Ref(),
		}),
		New: NewButton,
	})
	r.Register(&classes.Class{
		Name:  "Icon",
		Roles: classes.RoleItem,
		Properties: itemProperties(map[string]classes.PropertySpec{
			"icon-name": classes.Literal(cty.String),
			"icon-size": classes.Literal(cty.Number),
		}),
		New: NewIcon,
	})
}
