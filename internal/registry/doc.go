// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package registry holds the interfaces loaded from markup documents.
//
// Loading a document parses it, resolves every class it names and runs the
// static validator. Only a document that passes all of these is admitted, so
// a failed load never changes the registry.
//
// Building an interface instantiates a fresh live object graph from the
// stored tree. Builds never modify the registry, and every build returns
// objects of its own.
package registry
