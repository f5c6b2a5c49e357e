// SPDX-License-Identifier: MIT

package sweep

import "errors"

var (
	// ErrNilCell is returned when the cell to trim is nil.
	ErrNilCell = errors.New("sweep: cell is nil")

	// ErrNilRequest is returned when a refine request lacks its space group.
	ErrNilRequest = errors.New("sweep: refine request has no space group")

	// ErrNoTolerance is returned for an empty tolerance list and by
	// FirstRefinement when no tolerance succeeded.
	ErrNoTolerance = errors.New("sweep: no tolerance succeeded")
)
