// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package app contains the core application logic. It wires the class
// modules, the translator and the interface registry together and exposes
// the operations of the CLI, decoupled from any specific entrypoint.
package app
