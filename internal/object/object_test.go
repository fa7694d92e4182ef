package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type testLayout struct{ Base }

func (*testLayout) LayoutKind() string { return "test" }

type testConstraint struct{ Base }

func (*testConstraint) ConstraintKind() string { return "test" }

func TestGroup_Capabilities(t *testing.T) {
	g := &Group{Actor: NewActor("Box", Props{"spacing": cty.NumberIntVal(4)})}

	var _ Container = g
	var _ LayoutHost = g
	var _ Constrainable = g

	child := &Actor{Base: NewBase("Label", nil)}
	require.NoError(t, g.AddChild(child))
	require.Len(t, g.Children(), 1)
	assert.Same(t, child, g.Children()[0])

	l := &testLayout{Base: NewBase("Bin", nil)}
	require.NoError(t, g.SetLayout(l))
	assert.Error(t, g.SetLayout(l), "second layout must be rejected")

	c := &testConstraint{Base: NewBase("Align", nil)}
	require.NoError(t, g.AddConstraint(c))
	assert.Len(t, g.Constraints(), 1)

	assert.Error(t, g.AddChild(nil))
}

func TestGroup_DestroyCascades(t *testing.T) {
	g := &Group{Actor: NewActor("Box", nil)}
	child := &Actor{Base: NewBase("Label", nil)}
	l := &testLayout{Base: NewBase("Bin", nil)}
	c := &testConstraint{Base: NewBase("Align", nil)}
	require.NoError(t, g.AddChild(child))
	require.NoError(t, g.SetLayout(l))
	require.NoError(t, g.AddConstraint(c))

	g.Destroy()
	g.Destroy()

	assert.True(t, g.Destroyed())
	assert.True(t, child.Destroyed())
	assert.True(t, l.Destroyed())
	assert.True(t, c.Destroyed())
	assert.ErrorIs(t, g.AddChild(child), ErrDestroyed)
	assert.ErrorIs(t, g.SetReference("x", child), ErrDestroyed)
}

func TestBase_PropertiesAndReferences(t *testing.T) {
	props := Props{"text": cty.StringVal("Hello"), "visible": cty.True}
	b := NewBase("Label", props)
	props["text"] = cty.StringVal("changed")

	v, ok := b.Property("text")
	require.True(t, ok)
	assert.Equal(t, "Hello", v.AsString(), "base keeps its own copy of props")
	assert.Equal(t, []string{"text", "visible"}, b.PropertyNames())

	target := &Actor{Base: NewBase("Button", nil)}
	require.NoError(t, b.SetReference("focus-target", target))
	got, ok := b.Reference("focus-target")
	require.True(t, ok)
	assert.Same(t, target, got)
	assert.Equal(t, []string{"focus-target"}, b.ReferenceNames())
	assert.Error(t, b.SetReference("other", nil))

	b.SetID("lbl")
	assert.Equal(t, "lbl", b.ID())
	assert.Equal(t, "Label", b.ClassName())
}

func TestProps_Typed(t *testing.T) {
	p := Props{
		"text":    cty.StringVal("hi"),
		"spacing": cty.NumberIntVal(6),
		"ratio":   cty.NumberFloatVal(0.5),
		"visible": cty.False,
		"empty":   cty.NullVal(cty.String),
	}

	s, err := p.String("text", "")
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	n, err := p.Int("spacing", 0)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	f, err := p.Number("ratio", 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	b, err := p.Bool("visible", true)
	require.NoError(t, err)
	assert.False(t, b)

	s, err = p.String("empty", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", s)

	n, err = p.Int("missing", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = p.Int("ratio", 0)
	assert.Error(t, err, "0.5 is not an integer")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Hello", Format(cty.StringVal("Hello")))
	assert.Equal(t, "12.5", Format(cty.NumberFloatVal(12.5)))
	assert.Equal(t, "3", Format(cty.NumberIntVal(3)))
	assert.Equal(t, "true", Format(cty.True))
	assert.Equal(t, "", Format(cty.NullVal(cty.String)))
}
