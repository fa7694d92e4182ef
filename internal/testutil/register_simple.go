package testutil

import "github.com/specialistvlad/uigraph/internal/classes"

// SimpleModule is a test helper for registering ad-hoc classes.
type SimpleModule struct {
	Classes []*classes.Class
}

// Register implements the classes.Module interface.
func (m *SimpleModule) Register(r *classes.Registry) {
	for _, c := range m.Classes {
		r.Register(c)
	}
}
