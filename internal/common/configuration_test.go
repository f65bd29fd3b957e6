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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 5004, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.DocumentBackend)
	assert.Equal(t, "memory", cfg.Store.BlobBackend)
	assert.Equal(t, 10, cfg.Store.OperationTimeoutSeconds)
	assert.Equal(t, int64(1<<30), cfg.Store.MaxBlobSizeBytes)
	assert.Equal(t, []string{"*"}, cfg.CorsConfig.AllowedOrigins)
}

func TestLoadConfigFileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 6000
  contextPath: /api
store:
  documentBackend: postgres
  blobBackend: s3
  maxBlobSizeBytes: 1024
s3:
  bucket: twins
  endpoint: http://minio:9000
`), 0o600))
	t.Setenv("STORE_BLOBBACKEND", "gridfs")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, "/api", cfg.Server.ContextPath)
	assert.Equal(t, "postgres", cfg.Store.DocumentBackend)
	assert.Equal(t, "gridfs", cfg.Store.BlobBackend)
	assert.Equal(t, int64(1024), cfg.Store.MaxBlobSizeBytes)
	assert.Equal(t, "twins", cfg.S3.Bucket)
	assert.Equal(t, "http://minio:9000", cfg.S3.Endpoint)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_DOCUMENTBACKEND", "cassandra")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.documentBackend")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestRedactedHidesCredentials(t *testing.T) {
	cfg := &Config{
		Postgres: PostgresConfig{Host: "db", User: "admin", Password: "secret", DBName: "basyx"},
		MongoDB:  MongoDBConfig{URI: "mongodb://user:pw@mongo:27017", Database: "basyx"},
		S3:       S3Config{AccessKeyID: "AKIA", SecretAccessKey: "s3cret", Bucket: "b"},
		DynamoDB: DynamoDBConfig{Table: "t"},
	}

	redacted := Redacted(cfg)

	assert.Equal(t, "****", redacted.Postgres.Password)
	assert.Equal(t, "****", redacted.Postgres.User)
	assert.Equal(t, "basyx", redacted.Postgres.DBName)
	assert.Equal(t, "****", redacted.MongoDB.URI)
	assert.Equal(t, "****", redacted.S3.SecretAccessKey)
	assert.Equal(t, "b", redacted.S3.Bucket)
	assert.Equal(t, "", redacted.DynamoDB.SecretAccessKey)
	assert.Equal(t, "secret", cfg.Postgres.Password, "original must stay untouched")
}

func TestPostgresDSN(t *testing.T) {
	c := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "d"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=d sslmode=disable", c.DSN())
}
