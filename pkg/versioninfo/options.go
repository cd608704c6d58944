package versioninfo

import (
	"log/slog"

	"github.com/malwarology/versioninfo/pkg/types"
)

// DefaultMaxRecords is the record cap applied when Options.MaxRecords is zero.
const DefaultMaxRecords = types.DefaultMaxRecords

// Options tunes a decode.
type Options struct {
	// CollectDiagnostics records every degraded condition in the report
	// returned by Inspect. Off by default; the hot path then skips all
	// bookkeeping.
	CollectDiagnostics bool

	// MaxRecords caps how many records (headers and Translation values) a
	// decode may produce. Zero means DefaultMaxRecords; negative disables the
	// cap.
	MaxRecords int

	// Logger receives diagnostics at debug level. Nil is silent.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by Decode.
func DefaultOptions() Options {
	return Options{MaxRecords: DefaultMaxRecords}
}

func (o Options) maxRecords() int {
	switch {
	case o.MaxRecords == 0:
		return DefaultMaxRecords
	case o.MaxRecords < 0:
		return int(^uint(0) >> 1)
	default:
		return o.MaxRecords
	}
}
