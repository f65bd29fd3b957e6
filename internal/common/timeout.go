/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package common

import (
	"context"
	"errors"
	"time"
)

// CallWithTimeout runs call with a context bounded by timeout. A missed
// deadline or a cancelled context is reported as Unavailable so callers can
// tell it apart from a definite failure. A timeout <= 0 leaves ctx unbounded.
func CallWithTimeout[T any](ctx context.Context, timeout time.Duration, what string, call func(context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	result, err := call(ctx)
	if err == nil {
		return result, nil
	}
	var known *Error
	if errors.As(err, &known) {
		return result, err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return result, NewErrUnavailable(what+" timed out", err)
	}
	if errors.Is(err, context.Canceled) {
		return result, NewErrUnavailable(what+" was cancelled", err)
	}
	return result, err
}

// RunWithTimeout is CallWithTimeout for calls without a result.
func RunWithTimeout(ctx context.Context, timeout time.Duration, what string, call func(context.Context) error) error {
	_, err := CallWithTimeout(ctx, timeout, what, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, call(ctx)
	})
	return err
}
