// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr

import "errors"

// # Translation Pipeline

// Classifier inspects err and either claims it, returning the client-facing
// [AppError] and true, or passes it on by returning false.
type Classifier func(err error) (*AppError, bool)

// Translate runs err through the storage classifiers in the order given,
// then through the application classifier, and finally the catch-all.
//
// The first classifier to claim the error wins. Translate never returns nil
// for a non-nil err; unclassified errors become [Internal] with err as the cause.
func Translate(err error, storage ...Classifier) *AppError {
	if err == nil {
		return nil
	}

	for _, classify := range storage {
		if appError, ok := classify(err); ok {
			return appError
		}
	}

	if appError, ok := Application(err); ok {
		return appError
	}

	return CatchAll(err)
}

// Application passes conditions raised by the service layer through verbatim.
func Application(err error) (*AppError, bool) {
	var appError *AppError
	if errors.As(err, &appError) && appError.HTTPStatus > 0 && appError.Message != "" {
		return appError, true
	}
	return nil, false
}

// CatchAll wraps anything left over as a generic 500. The original error is
// kept as the cause so it can be logged, but never serialised.
func CatchAll(err error) *AppError {
	if appError := As(err); appError != nil && appError.HTTPStatus >= 500 {
		return Internal(appError.Cause)
	}
	return Internal(err)
}
