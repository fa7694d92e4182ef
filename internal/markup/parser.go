// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package markup turns an interface document into a stream of element-open,
// text and element-close events. It owns the tag stack and enforces the tag
// grammar, so a Handler only ever sees legally nested elements with known
// attributes.
package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/uigraph/internal/grammar"
	"github.com/specialistvlad/uigraph/internal/uierr"
)

// Position is a 1-based line and column in the source document.
type Position struct {
	Line   int
	Column int
}

// String formats the position as line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Attr is one attribute of an opened element.
type Attr struct {
	Name  string
	Value string
}

// Attrs is the ordered attribute list of an element.
type Attrs []Attr

// Get returns the value of the named attribute.
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Handler receives parser events. Returning an error aborts the parse and the
// error is returned from Parse unchanged.
type Handler interface {
	OpenElement(kind grammar.Kind, attrs Attrs, pos Position) error
	Text(text string, pos Position) error
	CloseElement(kind grammar.Kind, pos Position) error
}

// frame is one open element on the tag stack.
type frame struct {
	kind grammar.Kind
	pos  Position
	// textOnly frames accept character data and reject nested elements.
	textOnly bool
}

// Parser tokenizes one document and drives a Handler.
type Parser struct {
	dec        *xml.Decoder
	frames     []frame
	interfaces int
}

// NewParser creates a parser reading from r.
func NewParser(r io.Reader) *Parser {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	return &Parser{dec: dec}
}

// Parse tokenizes r and reports events to h.
func Parse(r io.Reader, h Handler) error {
	return NewParser(r).Run(h)
}

// Run consumes the whole document.
func (p *Parser) Run(h Handler) error {
	for {
		pos := p.position()
		tok, err := p.dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return p.syntaxError(err, pos)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.open(h, t, pos); err != nil {
				return err
			}
		case xml.EndElement:
			if err := p.close(h, pos); err != nil {
				return err
			}
		case xml.CharData:
			if err := p.text(h, t, pos); err != nil {
				return err
			}
		}
		// Comments, processing instructions and directives carry no content.
	}

	if len(p.frames) > 0 {
		top := p.frames[len(p.frames)-1]
		return &uierr.Error{
			Kind:    uierr.ErrSyntax,
			Message: fmt.Sprintf("unclosed <%s> opened at %s", top.kind, top.pos),
			Line:    top.pos.Line,
			Column:  top.pos.Column,
		}
	}
	if p.interfaces == 0 {
		pos := p.position()
		return uierr.Malformed(pos.Line, pos.Column, "document declares no interface")
	}
	return nil
}

// Depth returns the number of currently open elements.
func (p *Parser) Depth() int {
	return len(p.frames)
}

func (p *Parser) parent() frame {
	if len(p.frames) == 0 {
		return frame{kind: grammar.Root}
	}
	return p.frames[len(p.frames)-1]
}

func (p *Parser) open(h Handler, el xml.StartElement, pos Position) error {
	name := qualified(el.Name)
	parent := p.parent()

	if parent.textOnly {
		return uierr.Malformed(pos.Line, pos.Column, "element <%s> is not allowed inside <%s>: values are plain text", name, parent.kind)
	}

	kind, ok := grammar.Lookup(name)
	if !ok {
		return uierr.Malformed(pos.Line, pos.Column, "unknown tag <%s>", name)
	}
	if !grammar.Allowed(parent.kind, kind) {
		return uierr.Malformed(pos.Line, pos.Column, "tag <%s> is not allowed inside <%s>", kind, parent.kind)
	}
	if kind == grammar.Interface {
		p.interfaces++
		if p.interfaces > 1 {
			return uierr.Malformed(pos.Line, pos.Column, "document declares more than one interface")
		}
	}

	attrs := make(Attrs, 0, len(el.Attr))
	for _, a := range el.Attr {
		attrName := qualified(a.Name)
		if !grammar.AcceptsAttribute(kind, attrName) {
			return uierr.Malformed(pos.Line, pos.Column, "unknown attribute %q on <%s>", attrName, kind)
		}
		if _, dup := attrs.Get(attrName); dup {
			return uierr.Malformed(pos.Line, pos.Column, "attribute %q repeated on <%s>", attrName, kind)
		}
		attrs = append(attrs, Attr{Name: attrName, Value: a.Value})
	}

	p.frames = append(p.frames, frame{kind: kind, pos: pos, textOnly: grammar.TextOnly(kind)})
	return h.OpenElement(kind, attrs, pos)
}

func (p *Parser) close(h Handler, pos Position) error {
	// The decoder rejects mismatched end tags in strict mode, so the stack is never empty here.
	top := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]
	return h.CloseElement(top.kind, pos)
}

func (p *Parser) text(h Handler, data xml.CharData, pos Position) error {
	top := p.parent()
	if top.textOnly {
		return h.Text(string(data), pos)
	}
	if strings.TrimSpace(string(data)) != "" {
		return uierr.Malformed(pos.Line, pos.Column, "unexpected text inside <%s>", top.kind)
	}
	return nil
}

func (p *Parser) position() Position {
	line, column := p.dec.InputPos()
	return Position{Line: line, Column: column}
}

func (p *Parser) syntaxError(err error, pos Position) error {
	e := &uierr.Error{Kind: uierr.ErrSyntax, Line: pos.Line, Column: pos.Column, Cause: err}
	var synErr *xml.SyntaxError
	if errors.As(err, &synErr) {
		cur := p.position()
		e.Line, e.Column = synErr.Line, 1
		if cur.Line == synErr.Line {
			e.Column = cur.Column
		}
		e.Message = synErr.Msg
		e.Cause = nil
	}
	return e
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
