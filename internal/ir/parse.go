// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package ir

import (
	"context"
	"io"

	"github.com/specialistvlad/uigraph/internal/ctxlog"
	"github.com/specialistvlad/uigraph/internal/markup"
	"github.com/specialistvlad/uigraph/internal/uierr"
)

// Parse reads one document and returns the interface it declares. Class names
// are resolved through resolver while the document is read. The returned tree
// has not been checked for duplicate ids or dangling references yet.
func Parse(ctx context.Context, document string, r io.Reader, resolver Resolver) (*Interface, error) {
	ctx, logger := ctxlog.With(ctx, "document", document)
	logger.Debug("Parsing document.")

	b := newBuilder(ctx, resolver)
	if err := markup.Parse(r, b); err != nil {
		return nil, uierr.WithDocument(err, document)
	}
	if b.result == nil {
		return nil, &uierr.Error{Kind: uierr.ErrMalformed, Document: document, Message: "document declares no interface"}
	}

	b.result.Document = document
	logger.Debug("Parsed interface.", "interface", b.result.ID, "objects", b.result.Count())
	return b.result, nil
}
