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

// Command healthprobe checks GET /health of a running submodel store. It
// accepts the subset of wget arguments used by container health checks so
// images without wget can keep their existing HEALTHCHECK lines.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/config"
	jsoniter "github.com/json-iterator/go"
)

const defaultTimeout = 5 * time.Second

type probeOptions struct {
	url     string
	quiet   bool
	spider  bool
	output  string
	debug   bool
	timeout time.Duration
}

func main() {
	options, err := parseOptions(os.Args)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if options.url == "" {
		options.url = defaultHealthURL(os.Getenv)
	}
	if options.debug {
		_, _ = fmt.Fprintf(os.Stderr, "healthprobe url=%s timeout=%s\n", options.url, options.timeout)
	}

	if err := runProbe(options, os.Stdout); err != nil {
		if !options.quiet {
			_, _ = fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

// nextValue returns the value of a flag given either as "--flag=value" or as
// "--flag value".
func nextValue(arg, name string, rest []string) (string, []string, bool) {
	if v, ok := strings.CutPrefix(arg, name+"="); ok {
		return v, rest, true
	}
	if arg == name && len(rest) > 0 {
		return rest[0], rest[1:], true
	}
	return "", rest, false
}

func parseOptions(args []string) (probeOptions, error) {
	options := probeOptions{output: "-", timeout: defaultTimeout}
	if filepath.Base(args[0]) == "healthprobe" {
		options.quiet = true
	}

	rest := args[1:]
	for len(rest) > 0 {
		arg := rest[0]
		rest = rest[1:]

		switch {
		case arg == "--quiet" || arg == "-q":
			options.quiet = true
		case arg == "--spider":
			options.spider = true
		case arg == "--debug":
			options.debug = true
		case arg == "--tries" || strings.HasPrefix(arg, "--tries="):
			var ok bool
			if _, rest, ok = nextValue(arg, "--tries", rest); !ok {
				return options, errors.New("HEALTHPROBE-PARSE-MISSINGTRIES")
			}
		case arg == "-O":
			if len(rest) == 0 {
				return options, errors.New("HEALTHPROBE-PARSE-MISSINGOUTPUT")
			}
			options.output, rest = rest[0], rest[1:]
		case arg == "--output-document" || strings.HasPrefix(arg, "--output-document="):
			var ok bool
			if options.output, rest, ok = nextValue(arg, "--output-document", rest); !ok {
				return options, errors.New("HEALTHPROBE-PARSE-MISSINGOUTPUT")
			}
		case arg == "--timeout" || strings.HasPrefix(arg, "--timeout="):
			raw, r, ok := nextValue(arg, "--timeout", rest)
			if !ok {
				return options, errors.New("HEALTHPROBE-PARSE-MISSINGTIMEOUT")
			}
			rest = r
			seconds, err := strconv.Atoi(raw)
			if err != nil || seconds <= 0 {
				return options, errors.New("HEALTHPROBE-PARSE-INVALIDTIMEOUT")
			}
			options.timeout = time.Duration(seconds) * time.Second
		case strings.HasPrefix(arg, "-"):
			continue
		default:
			options.url = arg
		}
	}

	if !options.spider && options.output == "" {
		options.output = "-"
	}
	return options, nil
}

// defaultHealthURL targets the local service using the same SERVER_PORT and
// SERVER_CONTEXTPATH variables the service reads its configuration from.
func defaultHealthURL(getenv func(string) string) string {
	port := getenv("SERVER_PORT")
	if port == "" {
		port = strconv.Itoa(config.DefaultPort)
	}
	return fmt.Sprintf("http://127.0.0.1:%s%s/health", port, common.NormalizeBasePath(getenv("SERVER_CONTEXTPATH")))
}

// runProbe fails unless the service answers below 400 with status UP.
func runProbe(options probeOptions, stdout io.Writer) error {
	client := &http.Client{Timeout: options.timeout}

	response, err := client.Get(options.url)
	if err != nil {
		return fmt.Errorf("HEALTHPROBE-RUN-REQUESTFAILED: %w", err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("HEALTHPROBE-RUN-UNHEALTHYSTATUS: %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("HEALTHPROBE-RUN-READBODYFAILED: %w", err)
	}
	var health struct {
		Status string `json:"status"`
	}
	if err := jsoniter.Unmarshal(body, &health); err != nil || health.Status != "UP" {
		return fmt.Errorf("HEALTHPROBE-RUN-NOTUP: %s", strings.TrimSpace(string(body)))
	}

	if options.spider {
		return nil
	}
	if options.output == "-" {
		if _, err := io.Copy(stdout, bytes.NewReader(body)); err != nil {
			return fmt.Errorf("HEALTHPROBE-RUN-WRITESTDOUTFAILED: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(options.output, body, 0o600); err != nil {
		return fmt.Errorf("HEALTHPROBE-RUN-WRITEOUTPUTFAILED: %w", err)
	}
	return nil
}
