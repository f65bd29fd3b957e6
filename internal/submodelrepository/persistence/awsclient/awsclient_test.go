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

package awsclient

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, MapError("x", nil))

	throttled := &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down", Fault: smithy.FaultClient}
	assert.True(t, common.IsErrUnavailable(MapError("reading", throttled)))

	serverFault := &smithy.GenericAPIError{Code: "Whatever", Fault: smithy.FaultServer}
	assert.True(t, common.IsErrUnavailable(MapError("reading", serverFault)))

	denied := &smithy.GenericAPIError{Code: "AccessDenied", Fault: smithy.FaultClient}
	assert.Equal(t, error(denied), MapError("reading", denied))

	dial := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	assert.True(t, common.IsErrUnavailable(MapError("reading", dial)))

	other := errors.New("boom")
	assert.Equal(t, other, MapError("reading", other))
}

func TestLoadConfigWithStaticCredentials(t *testing.T) {
	cfg, err := LoadConfig(context.Background(), Settings{
		Region:          "eu-central-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestEndpointOverride(t *testing.T) {
	assert.Nil(t, Settings{}.EndpointOverride())
	assert.Equal(t, "http://localhost:4566", *Settings{Endpoint: "http://localhost:4566"}.EndpointOverride())
}
