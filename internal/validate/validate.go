// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package validate checks a parsed interface before it is admitted to the
// registry. Two passes walk the whole tree: the first counts symbolic ids and
// reports any id declared more than once, the second reports any reference
// naming an id no object declares.
package validate

import (
	"fmt"

	"github.com/specialistvlad/uigraph/internal/ir"
	"github.com/specialistvlad/uigraph/internal/uierr"
)

// Interface runs both passes over iface. The first failure is returned.
func Interface(iface *ir.Interface) error {
	ids, order := countIDs(iface)
	for _, id := range order {
		if n := ids[id]; n > 1 {
			return &uierr.Error{
				Kind:     uierr.ErrDuplicateID,
				Document: iface.Document,
				ID:       id,
				Count:    n,
				Message:  fmt.Sprintf("id %q is declared %d times in interface %q", id, n, iface.ID),
			}
		}
	}
	return checkReferences(iface, ids)
}

// countIDs is the first pass. The interface id shares the namespace of the
// object ids. order lists ids in first-seen order so the reported duplicate
// does not depend on map iteration.
func countIDs(iface *ir.Interface) (map[string]int, []string) {
	ids := make(map[string]int)
	var order []string
	count := func(id string) {
		if id == "" {
			return
		}
		if ids[id] == 0 {
			order = append(order, id)
		}
		ids[id]++
	}

	count(iface.ID)
	_ = iface.Root.Walk(func(o *ir.Object) error {
		count(o.ID)
		return nil
	})
	return ids, order
}

// checkReferences is the second pass; ids is used as a presence set.
func checkReferences(iface *ir.Interface, ids map[string]int) error {
	return iface.Root.Walk(func(o *ir.Object) error {
		for _, p := range o.Properties {
			if !p.IsReference() {
				continue
			}
			if _, ok := ids[p.Ref]; !ok {
				return &uierr.Error{
					Kind:     uierr.ErrUnresolvableReference,
					Document: iface.Document,
					Line:     p.Pos.Line,
					Column:   p.Pos.Column,
					ID:       p.Ref,
					Class:    o.ClassName,
					Message:  fmt.Sprintf("property %q refers to %q, which no object in interface %q declares", p.Name, p.Ref, iface.ID),
				}
			}
		}
		return nil
	})
}
