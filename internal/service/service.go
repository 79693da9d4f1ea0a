// Package service contains the business logic.
//
// It sits between the handler and repository layers. Services decide what
// an empty or missing result means for the client: most listings turn an
// empty result into a 404 with a message naming what was looked for.
package service

import (
	"context"

	"github.com/rs/zerolog"
)

// logResult records how many rows an operation produced on the request
// logger.
func logResult(ctx context.Context, operation string, count int) {
	zerolog.Ctx(ctx).Debug().
		Str("operation", operation).
		Int("count", count).
		Msg("store result")
}
