// Package errors provides standardized error handling patterns for componentvocab.
//
// # Overview
//
// The errors package implements a four-class error classification system for
// vocabulary and registry code: NotFoundByValue and NotFoundByToken (the two
// kinds of term lookup failure), Invalid (bad input or configuration, do not
// retry), and Fatal (unrecoverable, stop processing).
//
// The two not-found classes exist because vocabulary callers look terms up by
// two different keys. A form renderer resolving a submitted token needs to
// distinguish "the token decodes to nothing" from "the selected value is no
// longer registered"; both are reported as one ErrTermNotFound sentinel with
// the classification carried alongside.
//
// The classification system integrates with Go's standard error handling
// patterns, supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Return standard error variables for known conditions:
//
//	if name == "" {
//	    return errors.ErrInvalidName
//	}
//
// Wrap errors with context for debugging:
//
//	if err := registry.RegisterUtility(iface, name, util); err != nil {
//	    return errors.Wrap(err, "Registry", "RegisterUtility", "duplicate check")
//	}
//
// Check classification at the call site:
//
//	if _, err := vocab.GetTermByToken(token); err != nil {
//	    if errors.IsNotFoundByToken(err) {
//	        // stale form submission, re-render the widget
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	Component.Method: action failed: underlying error
//
// which keeps log lines grep-able by component and operation without parsing.
package errors
