// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package object

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Props holds the literal property values handed to a constructor, already
// converted to the types declared by the class.
type Props map[string]cty.Value

// Clone returns a shallow copy. cty values are immutable.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// String returns a string property or def when it is absent.
func (p Props) String(name, def string) (string, error) {
	var out string
	ok, err := p.decode(name, &out)
	if !ok || err != nil {
		return def, err
	}
	return out, nil
}

// Number returns a number property or def when it is absent.
func (p Props) Number(name string, def float64) (float64, error) {
	var out float64
	ok, err := p.decode(name, &out)
	if !ok || err != nil {
		return def, err
	}
	return out, nil
}

// Int returns an integral number property or def when it is absent.
func (p Props) Int(name string, def int) (int, error) {
	var out int
	ok, err := p.decode(name, &out)
	if !ok || err != nil {
		return def, err
	}
	return out, nil
}

// Bool returns a bool property or def when it is absent.
func (p Props) Bool(name string, def bool) (bool, error) {
	var out bool
	ok, err := p.decode(name, &out)
	if !ok || err != nil {
		return def, err
	}
	return out, nil
}

func (p Props) decode(name string, target any) (bool, error) {
	v, ok := p[name]
	if !ok || v.IsNull() {
		return false, nil
	}
	if err := gocty.FromCtyValue(v, target); err != nil {
		return true, fmt.Errorf("property %q: %w", name, err)
	}
	return true, nil
}

// Format renders a property value as the literal text it could be declared with.
func Format(v cty.Value) string {
	switch {
	case v.IsNull():
		return ""
	case !v.IsKnown():
		return "(unknown)"
	case v.Type() == cty.String:
		return v.AsString()
	case v.Type() == cty.Number:
		return v.AsBigFloat().Text('f', -1)
	case v.Type() == cty.Bool:
		if v.True() {
			return "true"
		}
		return "false"
	default:
		return v.GoString()
	}
}
