// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type palette struct {
	class, id, ref, role func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		class: mk(color.FgCyan, color.Bold),
		id:    mk(color.FgYellow),
		ref:   mk(color.FgMagenta),
		role:  mk(color.Faint),
	}
}

// Text prints n as an indented tree:
//
//	Container #box
//	  focus-target -> /children/0
//	  child: Label #lbl
//	    text = "Hello"
func Text(w io.Writer, n *Node, colored bool) error {
	var sb strings.Builder
	writeNode(&sb, newPalette(colored), n, "", 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeNode(sb *strings.Builder, p palette, n *Node, role string, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	if role != "" {
		sb.WriteString(p.role(role + ":"))
		sb.WriteString(" ")
	}
	sb.WriteString(p.class(n.Class))
	if n.ID != "" {
		sb.WriteString(" ")
		sb.WriteString(p.id("#" + n.ID))
	}
	sb.WriteString("\n")

	inner := indent + "  "
	for _, name := range sortedKeys(n.Properties) {
		fmt.Fprintf(sb, "%s%s = %s\n", inner, name, strconv.Quote(n.Properties[name]))
	}
	for _, name := range sortedKeys(n.References) {
		fmt.Fprintf(sb, "%s%s -> %s\n", inner, name, p.ref(n.References[name]))
	}
	if n.Layout != nil {
		writeNode(sb, p, n.Layout, "layout", depth+1)
	}
	for _, c := range n.Constraints {
		writeNode(sb, p, c, "constraint", depth+1)
	}
	for _, c := range n.Children {
		writeNode(sb, p, c, "child", depth+1)
	}
}

// YAML prints n as a YAML document.
func YAML(w io.Writer, n *Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
