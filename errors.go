package mapreduce

import "github.com/grailbio/base/errors"

// Debug enables reporting of ContractViolation errors (a reducer calling
// GetNext with a key outside its current group, or outside a reducer
// invocation) that are otherwise silently treated as absent, per spec §7.
var Debug = false

// invalidArgument wraps an invalid Job configuration (M < 1, R < 1, a nil
// callable) detected before any stage runs.
func invalidArgument(op string, detail string) error {
	return errors.E(errors.Invalid, op, detail)
}

// allocationFailure wraps a fatal, unrecoverable growth/copy failure.
// Go's runtime turns out-of-memory into a process-fatal condition on its
// own, so in practice this path exists for future engine-internal
// invariants that must abort the run rather than silently continue; it is
// not expected to fire under normal operation.
func allocationFailure(op string, err error) error {
	return errors.E(errors.Fatal, op, err)
}

// UserCallbackFailure wraps an error raised by the user's Mapper or
// Reducer. The first one observed by the coordinator wins; later ones are
// discarded, per spec §7's UserCallbackFailure propagation policy. Exported
// so exec's worker pools build mapper/reducer errors through this helper
// (kind errors.Other) rather than calling errors.E themselves.
func UserCallbackFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.E(errors.Other, op, err)
}

// ContractViolation reports a reducer violating the GetNext contract: a
// call with a key that doesn't match the group the reducer was invoked
// for, or a call made after Reduce has already returned. It is only
// surfaced when Debug is set; otherwise callers treat it as ordinary group
// exhaustion (returning absent), per spec §7. Exported so
// internal/partition.Cursor, which owns the GetNext protocol, builds its
// report through this helper (kind errors.Precondition).
func ContractViolation(op string, detail string) error {
	return errors.E(errors.Precondition, op, detail)
}
