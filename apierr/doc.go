// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apierr classifies errors for translation into HTTP responses.

# Kinds

Every failure a handler returns is an *Error carrying a Kind:

	KindValidation   400  malformed or incomplete request
	KindAuth         401  bad credentials
	KindNotFound     404  the addressed row does not exist
	KindConflict     409  unique constraint (email already registered)
	KindTooLarge     413  request body over the configured limit
	KindUnavailable  500  no database connection could be acquired
	KindInternal     500  anything else

Message is what the client sees in {"error": "..."}. For Unavailable
and Internal it is fixed (MsgUnavailable, MsgInternal) and the cause
sits in Err, which is logged but never written to the response.

# Usage

	if n == 0 {
		return apierr.NotFound("contact not found")
	}
	if err != nil {
		return apierr.Internal(err)
	}

At the HTTP edge, From turns any error into an *Error:

	e := apierr.From(err)
	w.WriteHeader(e.Kind.Status())

Errors that were never classified come back as KindInternal, so a raw
driver error cannot reach a client. *Error supports errors.Is and
errors.As through Unwrap, and IsKind checks the kind through wrapping.
*/
package apierr
