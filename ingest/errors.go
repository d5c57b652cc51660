// SPDX-License-Identifier: MIT

package ingest

import "errors"

// Sentinel errors for the ingest package.
var (
	// ErrIngestion indicates the source was unreachable or not a usable table.
	ErrIngestion = errors.New("ingest: ingestion failed")

	// ErrInvalidConfig indicates a Config that failed validation.
	ErrInvalidConfig = errors.New("ingest: invalid config")
)
