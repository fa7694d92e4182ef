package testutil

import (
	"errors"

	"github.com/specialistvlad/uigraph/internal/classes"
	"github.com/specialistvlad/uigraph/internal/object"
	"github.com/zclconf/go-cty/cty"
)

// ErrRefused is returned by the Refusing class constructor.
var ErrRefused = errors.New("refused")

// NoopModule registers two classes that exercise failure paths:
//
//   - Noop claims every role but its live object has no capabilities, so it
//     passes the parse-time role check and fails to attach at build time.
//   - Refusing is an item whose constructor always fails.
type NoopModule struct{}

// Register implements the classes.Module interface.
func (m *NoopModule) Register(r *classes.Registry) {
	r.Register(&classes.Class{
		Name:  "Noop",
		Roles: classes.RoleItem | classes.RoleConstraint | classes.RoleLayout,
		Properties: map[string]classes.PropertySpec{
			"note": classes.Literal(cty.String),
		},
		New: func(props object.Props) (object.Object, error) {
			b := object.NewBase("Noop", props)
			return &b, nil
		},
	})
	r.Register(&classes.Class{
		Name:       "Refusing",
		Roles:      classes.RoleItem,
		Properties: map[string]classes.PropertySpec{},
		New: func(object.Props) (object.Object, error) {
			return nil, ErrRefused
		},
	})
}
