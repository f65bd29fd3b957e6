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

// Package logger provides centralized logging functionality for the submodel element store.
package logger

import (
	"fmt"
	"log"
	"os"
)

// Logger provides structured logging for the submodel element store.
var logger = log.New(os.Stderr, "[SubmodelStore] ", log.LstdFlags|log.Lshortfile)

// LogError logs an error with context information.
//
// Parameters:
//   - context: A description of where/when the error occurred
//   - err: The error that occurred
func LogError(context string, err error) {
	if err != nil {
		_ = logger.Output(2, fmt.Sprintf("ERROR: %s: %v", context, err))
	}
}

// LogErrorf logs an error with a formatted context.
func LogErrorf(err error, format string, args ...any) {
	if err != nil {
		_ = logger.Output(2, fmt.Sprintf("ERROR: %s: %v", fmt.Sprintf(format, args...), err))
	}
}

// LogInfo logs an informational message.
//
// Parameters:
//   - message: The message to log
func LogInfo(message string) {
	_ = logger.Output(2, "INFO: "+message)
}

// LogInfof logs a formatted informational message.
func LogInfof(format string, args ...any) {
	_ = logger.Output(2, "INFO: "+fmt.Sprintf(format, args...))
}

// LogWarning logs a warning message.
//
// Parameters:
//   - message: The warning message to log
func LogWarning(message string) {
	_ = logger.Output(2, "WARN: "+message)
}

// LogWarningf logs a formatted warning message.
func LogWarningf(format string, args ...any) {
	_ = logger.Output(2, "WARN: "+fmt.Sprintf(format, args...))
}

// LogDebug logs a debug message.
//
// Parameters:
//   - message: The debug message to log
func LogDebug(message string) {
	_ = logger.Output(2, "DEBUG: "+message)
}

// LogBackendCreationError logs a failure to connect or set up a storage backend.
//
// Parameters:
//   - backend: The name of the backend, e.g. "postgres" or "s3"
//   - err: The error that occurred
func LogBackendCreationError(backend string, err error) {
	_ = logger.Output(2, fmt.Sprintf("ERROR: creating %s backend: %v", backend, err))
}
