// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the lexical rules for identifiers and boolean attributes.
package ir

import (
	"fmt"
	"regexp"
	"strings"
)

// identRegex matches symbolic ids and property names: optional leading
// underscores, a letter, then letters, digits, '_' or '-'.
var identRegex = regexp.MustCompile(`^_*[A-Za-z][A-Za-z0-9_-]*$`)

// ValidIdentifier reports whether s is a legal symbolic id.
func ValidIdentifier(s string) bool {
	return identRegex.MatchString(s)
}

// ParseBool parses a boolean attribute value.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}
