package uierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Formatting(t *testing.T) {
	testCases := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  &Error{Kind: ErrNotFound},
			want: "interface not found",
		},
		{
			name: "message with position",
			err:  Malformed(3, 7, "tag %q is not allowed inside %q", "child", "interface"),
			want: `line 3, column 7: malformed markup: tag "child" is not allowed inside "interface"`,
		},
		{
			name: "detail replaces kind label",
			err:  MalformedDetail(ErrDuplicateLayout, 9, 2, "object already has a layout"),
			want: "line 9, column 2: duplicate layout: object already has a layout",
		},
		{
			name: "document prefix",
			err:  &Error{Kind: ErrSyntax, Document: "main.ui", Line: 4, Column: 1, Message: "unexpected EOF"},
			want: "main.ui:4:1: markup syntax error: unexpected EOF",
		},
		{
			name: "construction with cause",
			err:  Construction("BoxLayout", "", errors.New("bad orientation"), "constructor rejected properties"),
			want: "construction failure: constructor rejected properties: bad orientation",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("loading: %w", MalformedDetail(ErrMalformedProperty, 1, 1, "both ref and text"))

	assert.ErrorIs(t, err, ErrMalformed)
	assert.ErrorIs(t, err, ErrMalformedProperty)
	assert.NotErrorIs(t, err, ErrDuplicateLayout)
	assert.NotErrorIs(t, err, ErrSyntax)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 1, e.Line)
}

func TestError_UnwrapCause(t *testing.T) {
	cause := errors.New("boom")
	err := Construction("Label", "lbl", cause, "failed")

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrConstruction)
	assert.Equal(t, "Label", err.Class)
	assert.Equal(t, "lbl", err.ID)
}

func TestWithDocument(t *testing.T) {
	err := WithDocument(New(ErrDuplicateID, "id %q declared 2 times", "a"), "a.ui")
	assert.Equal(t, `a.ui: duplicate id: id "a" declared 2 times`, err.Error())

	plain := errors.New("plain")
	assert.Same(t, plain, WithDocument(plain, "a.ui"))
}
