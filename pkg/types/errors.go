// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error sentinels for the fatal failure classes. Call sites wrap them with
// fmt.Errorf("...: %w", ErrConfig) so callers can classify failures with
// errors.Is while still seeing the specific message.
var (
	// ErrUsage indicates the caller supplied no file or channel data to
	// import.
	ErrUsage = errors.New("usage error")

	// ErrConfig indicates an unresolvable format tag, an unrecognized
	// column-role token, or a non-numeric channel-number field.
	ErrConfig = errors.New("configuration error")
)

// Non-fatal issues (column-count mismatches, failed coordinate
// conversions) are never returned as errors; they accumulate as notices on
// the Result. I/O failures propagate as the wrapped fs errors from the
// loader.
