// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package config reads the optional settings file of the uigraph CLI.
//
// The file is HCL:
//
//	log_level        = "debug"
//	log_format       = "json"
//	locale           = "de"
//	translations     = "i18n/translations.yaml"
//	documents        = ["ui", "extra/dialog.ui"]
//	class_cache_size = 64
//	color            = false
//
// Every attribute is optional. Relative paths are resolved against the
// directory holding the settings file.
package config
