package testutil

import (
	"github.com/specialistvlad/uigraph/internal/classes"
	"github.com/specialistvlad/uigraph/modules/constraints"
	"github.com/specialistvlad/uigraph/modules/layouts"
	"github.com/specialistvlad/uigraph/modules/widgets"
)

// Classes returns a class registry holding the widget, layout and constraint
// classes plus any extra modules.
func Classes(extra ...classes.Module) *classes.Registry {
	r := classes.New(classes.DefaultCacheSize)
	r.RegisterModules(&widgets.Module{}, &layouts.Module{}, &constraints.Module{})
	r.RegisterModules(extra...)
	return r
}
