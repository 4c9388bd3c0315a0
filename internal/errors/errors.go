// Package errors re-exports github.com/cockroachdb/errors and declares the
// sentinels used across chronicle.
//
// Wrap with context, match with Is:
//
//	if err := client.ExecuteQuery(ctx, q); err != nil {
//	    return errors.Wrapf(err, "office %s", office.OfficeEntityID)
//	}
//	if errors.Is(err, errors.ErrQueryService) {
//	    // skip this office
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

var (
	Is = crdb.Is
	As = crdb.As
)

// Sentinels. Typed errors in the driver, dataset and common packages report
// themselves as one of these through an Is method.
var (
	// ErrMalformedDate marks a date string that cannot be normalized.
	ErrMalformedDate = New("malformed date")

	// ErrQueryService marks any failure talking to the graph query endpoint.
	ErrQueryService = New("query service error")

	// ErrMalformedStaticRow marks a static dataset row that cannot be used.
	ErrMalformedStaticRow = New("malformed static row")

	// ErrTimeout marks a query that ran past its deadline. Timed out query
	// errors match both ErrTimeout and ErrQueryService.
	ErrTimeout = New("operation timed out")
)
