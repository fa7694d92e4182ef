// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"github.com/specialistvlad/uigraph/internal/classes"
	"github.com/specialistvlad/uigraph/modules/constraints"
	"github.com/specialistvlad/uigraph/modules/layouts"
	"github.com/specialistvlad/uigraph/modules/widgets"
)

// coreModules is the definitive list of all class modules that are compiled
// into the uigraph binary.
var coreModules = []classes.Module{
	&widgets.Module{},
	&layouts.Module{},
	&constraints.Module{},
}
