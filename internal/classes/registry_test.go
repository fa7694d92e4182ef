package classes

import (
	"testing"

	"github.com/specialistvlad/uigraph/internal/object"
	"github.com/specialistvlad/uigraph/internal/uierr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type thing struct{ object.Actor }

func newThing(props object.Props) (object.Object, error) {
	return &thing{Actor: object.NewActor("BoxLayout", props)}, nil
}

func testClass(name string, roles Role) *Class {
	return &Class{
		Name:  name,
		Roles: roles,
		Properties: map[string]PropertySpec{
			"spacing":      Literal(cty.Number),
			"homogeneous":  Literal(cty.Bool),
			"title":        Literal(cty.String),
			"focus-target": Ref(),
		},
		New: newThing,
	}
}

func TestSymbol(t *testing.T) {
	testCases := map[string]string{
		"Container":      "container",
		"container":      "container",
		"BoxLayout":      "box_layout",
		"St.BoxLayout":   "st_box_layout",
		"st-box-layout":  "st_box_layout",
		"st_box_layout":  "st_box_layout",
		"HTTPClient":     "http_client",
		"Label2Box":      "label2_box",
		"Clutter..Actor": "clutter_actor",
		"_Private":       "private",
	}
	for in, want := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Symbol(in))
		})
	}
}

func TestRegistry_Resolve(t *testing.T) {
	r := New(8)
	r.Register(testClass("BoxLayout", RoleLayout))

	for _, name := range []string{"BoxLayout", "box_layout", "box-layout"} {
		c, err := r.Resolve(name)
		require.NoError(t, err, name)
		assert.Equal(t, "BoxLayout", c.Name)
	}
	assert.Equal(t, 3, r.CachedLookups())

	_, err := r.Resolve("GridLayout")
	require.ErrorIs(t, err, uierr.ErrUnknownClass)
	var e *uierr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "GridLayout", e.Class)
	assert.Equal(t, 3, r.CachedLookups(), "misses are not cached")
}

func TestRegistry_ResolveWithoutCache(t *testing.T) {
	r := New(0)
	r.Register(testClass("Label", RoleItem))

	c, err := r.Resolve("Label")
	require.NoError(t, err)
	assert.Equal(t, "Label", c.Name)
	assert.Equal(t, 0, r.CachedLookups())
}

func TestRegistry_RegisterPanics(t *testing.T) {
	r := New(DefaultCacheSize)
	r.Register(testClass("BoxLayout", RoleLayout))

	assert.Panics(t, func() { r.Register(testClass("box_layout", RoleLayout)) }, "symbol collision")
	assert.Panics(t, func() { r.Register(&Class{Name: "NoCtor", Roles: RoleItem}) })
	assert.Panics(t, func() { r.Register(&Class{Name: "NoRole", New: newThing}) })
	assert.Panics(t, func() { r.Register(nil) })

	assert.Equal(t, []string{"BoxLayout"}, r.Names())
	assert.Equal(t, 1, r.Len())
}

type moduleFunc func(r *Registry)

func (f moduleFunc) Register(r *Registry) { f(r) }

func TestRegistry_RegisterModules(t *testing.T) {
	r := New(DefaultCacheSize)
	r.RegisterModules(
		moduleFunc(func(r *Registry) { r.Register(testClass("Label", RoleItem)) }),
		moduleFunc(func(r *Registry) { r.Register(testClass("BinLayout", RoleLayout)) }),
	)
	assert.Equal(t, []string{"BinLayout", "Label"}, r.Names())
}

func TestClass_Convert(t *testing.T) {
	c := testClass("BoxLayout", RoleLayout)

	v, err := c.Convert("spacing", "12")
	require.NoError(t, err)
	assert.True(t, v.RawEquals(cty.NumberIntVal(12)))

	v, err = c.Convert("homogeneous", "1")
	require.NoError(t, err)
	assert.True(t, v.True())

	v, err = c.Convert("title", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", v.AsString())

	_, err = c.Convert("spacing", "wide")
	assert.ErrorContains(t, err, `cannot use "wide" as number`)

	_, err = c.Convert("focus-target", "x")
	assert.ErrorContains(t, err, "takes an object reference")

	_, err = c.Convert("colour", "red")
	assert.ErrorContains(t, err, `has no property "colour"`)
}

func TestRole(t *testing.T) {
	c := testClass("Hybrid", RoleItem|RoleLayout)
	assert.True(t, c.Has(RoleItem))
	assert.True(t, c.Has(RoleLayout))
	assert.False(t, c.Has(RoleConstraint))
	assert.Equal(t, "item|layout", c.Roles.String())
	assert.Equal(t, "none", Role(0).String())
	assert.Equal(t, []string{"focus-target", "homogeneous", "spacing", "title"}, c.PropertyNames())
}
