package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	for name, want := range map[string]Kind{
		"interface":  Interface,
		"object":     Object,
		"child":      Child,
		"property":   Property,
		"constraint": Constraint,
		"layout":     Layout,
	} {
		got, ok := Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
		assert.Equal(t, name, got.String())
	}

	_, ok := Lookup("template")
	assert.False(t, ok)
	_, ok = Lookup("Object")
	assert.False(t, ok, "tag names are case-sensitive")
}

func TestAllowed(t *testing.T) {
	all := []Kind{Interface, Object, Child, Property, Constraint, Layout}
	legal := map[Kind][]Kind{
		Root:       {Interface},
		Interface:  {Object},
		Child:      {Object},
		Constraint: {Object},
		Layout:     {Object},
		Object:     {Child, Constraint, Layout, Property},
		Property:   {},
	}

	for parent, children := range legal {
		for _, child := range all {
			want := false
			for _, c := range children {
				if c == child {
					want = true
				}
			}
			assert.Equal(t, want, Allowed(parent, child), "%s inside %s", child, parent)
		}
	}
}

func TestAcceptsAttribute(t *testing.T) {
	assert.True(t, AcceptsAttribute(Interface, "id"))
	assert.False(t, AcceptsAttribute(Interface, "class"))
	assert.True(t, AcceptsAttribute(Object, "class"))
	assert.True(t, AcceptsAttribute(Property, "translatable"))
	assert.False(t, AcceptsAttribute(Child, "id"))
	assert.False(t, AcceptsAttribute(Layout, "type"))
}

func TestTextOnly(t *testing.T) {
	assert.True(t, TextOnly(Property))
	assert.False(t, TextOnly(Object))
	assert.Equal(t, "document", Root.String())
	assert.Equal(t, "invalid", Invalid.String())
}
