// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package ir provides the intermediate representation of an interface
// document: a tree of inert Object nodes, each with its resolved class, its
// declared properties and its nested children, layout and constraints.
//
// # Core Concepts
//
//   - Interface: one named root object tree parsed from a single document.
//
//   - Object: one <object> element. The class is resolved and checked against
//     the role its nesting requires while the document is being read, so a tree
//     that parsed successfully never names an unknown or misplaced class.
//
//   - Property: a name plus either literal text or a reference to the id of
//     another object in the same tree. References are resolved only when the
//     tree is built into live objects.
//
// Why a separate representation?
//
// The same parsed tree is built many times. Keeping it inert and immutable
// lets the registry validate it once and hand it to any number of builds
// without re-reading the document.
package ir
