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

// Package common provides configuration management, database initialization,
// error handling and HTTP endpoint utilities for the submodel store service.
// Configuration comes from YAML files with environment variable overrides.
// nolint:all
package common

import (
	"fmt"
	"log"
	"strings"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
)

// PrintSplash displays the BaSyx Go API ASCII art logo to the console.
// This function is typically called during application startup to provide
// visual branding and confirm the service is starting.
func PrintSplash() {
	log.Printf(`
	██████╗  █████╗ ███████╗██╗   ██╗██╗  ██╗     ██████╗  ██████╗ 
	██╔══██╗██╔══██╗██╔════╝╚██╗ ██╔╝╚██╗██╔╝    ██╔════╝ ██╔═══██╗
	██████╔╝███████║███████╗ ╚████╔╝  ╚███╔╝     ██║  ███╗██║   ██║
	██╔══██╗██╔══██║╚════██║  ╚██╔╝   ██╔██╗     ██║   ██║██║   ██║
	██████╔╝██║  ██║███████║   ██║   ██╔╝ ██╗    ╚██████╔╝╚██████╔╝
	╚═════╝ ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝     ╚═════╝  ╚═════╝ 
																
	█████╗ ██████╗ ██╗                                            
	██╔══██╗██╔══██╗██║                                            
	███████║██████╔╝██║                                            
	██╔══██║██╔═══╝ ██║                                            
	██║  ██║██║     ██║                                            
	╚═╝  ╚═╝╚═╝     ╚═╝                                            
	`)
}

// Config represents the complete configuration of the submodel store service.
type Config struct {
	Server     ServerConfig   `mapstructure:"server" json:"server"`
	Store      StoreConfig    `mapstructure:"store" json:"store"`
	Postgres   PostgresConfig `mapstructure:"postgres" json:"postgres"`
	MongoDB    MongoDBConfig  `mapstructure:"mongodb" json:"mongodb"`
	S3         S3Config       `mapstructure:"s3" json:"s3"`
	DynamoDB   DynamoDBConfig `mapstructure:"dynamodb" json:"dynamodb"`
	CorsConfig CorsConfig     `mapstructure:"cors" json:"cors"`
}

// ServerConfig contains HTTP server configuration parameters.
type ServerConfig struct {
	Host                   string `mapstructure:"host" json:"host"`
	Port                   int    `mapstructure:"port" json:"port"`               // HTTP server port (default: 5004)
	ContextPath            string `mapstructure:"contextPath" json:"contextPath"` // Base path for all endpoints
	ShutdownTimeoutSeconds int    `mapstructure:"shutdownTimeoutSeconds" json:"shutdownTimeoutSeconds"`
}

// StoreConfig selects the backends and bounds of the submodel store.
//
// DocumentBackend is one of memory, postgres, mongodb or dynamodb.
// BlobBackend is one of memory, postgres, gridfs or s3.
type StoreConfig struct {
	DocumentBackend         string `mapstructure:"documentBackend" json:"documentBackend"`
	BlobBackend             string `mapstructure:"blobBackend" json:"blobBackend"`
	OperationTimeoutSeconds int    `mapstructure:"operationTimeoutSeconds" json:"operationTimeoutSeconds"`
	MaxBlobSizeBytes        int64  `mapstructure:"maxBlobSizeBytes" json:"maxBlobSizeBytes"`
	Workers                 int    `mapstructure:"workers" json:"workers"` // parallel blob deletions
}

// PostgresConfig contains PostgreSQL database connection parameters.
// It includes connection pooling settings for optimal performance.
type PostgresConfig struct {
	Host                   string `mapstructure:"host" json:"host"`
	Port                   int    `mapstructure:"port" json:"port"`
	User                   string `mapstructure:"user" json:"user"`
	Password               string `mapstructure:"password" json:"password"`
	DBName                 string `mapstructure:"dbname" json:"dbname"`
	MaxOpenConnections     int    `mapstructure:"maxOpenConnections" json:"maxOpenConnections"`
	MaxIdleConnections     int    `mapstructure:"maxIdleConnections" json:"maxIdleConnections"`
	ConnMaxLifetimeMinutes int    `mapstructure:"connMaxLifetimeMinutes" json:"connMaxLifetimeMinutes"`
}

// DSN returns the lib/pq connection string of c.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName)
}

// MongoDBConfig locates the MongoDB collection holding documents and the
// GridFS bucket holding attachments.
type MongoDBConfig struct {
	URI        string `mapstructure:"uri" json:"uri"`
	Database   string `mapstructure:"database" json:"database"`
	Collection string `mapstructure:"collection" json:"collection"`
	Bucket     string `mapstructure:"bucket" json:"bucket"`
}

// S3Config contains the bucket and credentials of the S3 blob store.
// An empty Endpoint means AWS itself; set it for MinIO or LocalStack.
type S3Config struct {
	Region          string `mapstructure:"region" json:"region"`
	Endpoint        string `mapstructure:"endpoint" json:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId" json:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey" json:"secretAccessKey"`
	Bucket          string `mapstructure:"bucket" json:"bucket"`
	Prefix          string `mapstructure:"prefix" json:"prefix"`
}

// DynamoDBConfig contains the table and credentials of the DynamoDB document store.
type DynamoDBConfig struct {
	Region          string `mapstructure:"region" json:"region"`
	Endpoint        string `mapstructure:"endpoint" json:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId" json:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey" json:"secretAccessKey"`
	Table           string `mapstructure:"table" json:"table"`
}

// CorsConfig contains Cross-Origin Resource Sharing (CORS) policy settings.
type CorsConfig struct {
	AllowedOrigins   []string `mapstructure:"allowedOrigins" json:"allowedOrigins"`
	AllowedMethods   []string `mapstructure:"allowedMethods" json:"allowedMethods"`
	AllowedHeaders   []string `mapstructure:"allowedHeaders" json:"allowedHeaders"`
	AllowCredentials bool     `mapstructure:"allowCredentials" json:"allowCredentials"`
}

// LoadConfig loads the configuration from YAML files and environment variables.
//
// The function supports multiple configuration sources with the following precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file (if provided)
// 3. Default values (lowest priority)
//
// Environment variables use underscore notation (e.g., STORE_BLOBBACKEND for store.blobBackend).
//
// Example:
//
//	config, err := LoadConfig("config/app.yaml")
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		log.Printf("📁 Loading config from file: %s", configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Println("📁 No config file provided - loading from environment variables only")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	PrintConfiguration(cfg)
	return cfg, nil
}

var (
	documentBackends = map[string]bool{"memory": true, "postgres": true, "mongodb": true, "dynamodb": true}
	blobBackends     = map[string]bool{"memory": true, "postgres": true, "gridfs": true, "s3": true}
)

func (c *Config) validate() error {
	if !documentBackends[c.Store.DocumentBackend] {
		return fmt.Errorf("invalid config: unknown store.documentBackend %q", c.Store.DocumentBackend)
	}
	if !blobBackends[c.Store.BlobBackend] {
		return fmt.Errorf("invalid config: unknown store.blobBackend %q", c.Store.BlobBackend)
	}
	if c.Store.OperationTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid config: store.operationTimeoutSeconds must be positive")
	}
	if c.Store.MaxBlobSizeBytes <= 0 {
		return fmt.Errorf("invalid config: store.maxBlobSizeBytes must be positive")
	}
	return nil
}

// setDefaults configures values that let the service run locally with the
// in-memory backends. Production deployments override them through the
// configuration file or environment variables.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", config.DefaultPort)
	v.SetDefault("server.contextPath", "")
	v.SetDefault("server.shutdownTimeoutSeconds", 15)

	// Store defaults
	v.SetDefault("store.documentBackend", "memory")
	v.SetDefault("store.blobBackend", "memory")
	v.SetDefault("store.operationTimeoutSeconds", int(config.DefaultOperationTimeout.Seconds()))
	v.SetDefault("store.maxBlobSizeBytes", int64(config.MaxBlobSizeBytes))
	v.SetDefault("store.workers", config.WorkerPoolSize)

	// PostgreSQL defaults
	v.SetDefault("postgres.host", "db")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "admin")
	v.SetDefault("postgres.password", "admin123")
	v.SetDefault("postgres.dbname", "basyxTestDB")
	v.SetDefault("postgres.maxOpenConnections", 50)
	v.SetDefault("postgres.maxIdleConnections", 50)
	v.SetDefault("postgres.connMaxLifetimeMinutes", 5)

	// MongoDB defaults
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "basyx")
	v.SetDefault("mongodb.collection", "submodels")
	v.SetDefault("mongodb.bucket", "attachments")

	// AWS defaults, empty keys select the default credential chain
	for _, section := range []string{"s3", "dynamodb"} {
		v.SetDefault(section+".region", "eu-central-1")
		v.SetDefault(section+".endpoint", "")
		v.SetDefault(section+".accessKeyId", "")
		v.SetDefault(section+".secretAccessKey", "")
	}
	v.SetDefault("s3.bucket", "basyx-attachments")
	v.SetDefault("s3.prefix", "submodels")
	v.SetDefault("dynamodb.table", "submodels")

	// CORS defaults
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"*"})
	v.SetDefault("cors.allowCredentials", true)
}

// PrintConfiguration prints the current configuration to the console with
// credentials replaced by "****".
func PrintConfiguration(cfg *Config) {
	configJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(Redacted(cfg), "", "  ")
	if err != nil {
		log.Printf("Unable to marshal configuration to JSON: %v", err)
		return
	}

	log.Printf("📜 Loaded configuration:\n%s", string(configJSON))
}

// Redacted returns a copy of cfg without credentials.
func Redacted(cfg *Config) Config {
	cfgCopy := *cfg
	if cfg.Postgres.Host != "" {
		cfgCopy.Postgres.Host = "****"
		cfgCopy.Postgres.User = "****"
		cfgCopy.Postgres.Password = "****"
	}
	if cfg.MongoDB.URI != "" {
		cfgCopy.MongoDB.URI = "****"
	}
	if cfg.S3.SecretAccessKey != "" {
		cfgCopy.S3.AccessKeyID = "****"
		cfgCopy.S3.SecretAccessKey = "****"
	}
	if cfg.DynamoDB.SecretAccessKey != "" {
		cfgCopy.DynamoDB.AccessKeyID = "****"
		cfgCopy.DynamoDB.SecretAccessKey = "****"
	}
	return cfgCopy
}

// AddCors configures Cross-Origin Resource Sharing (CORS) middleware for the router.
//
// Example:
//
//	router := chi.NewRouter()
//	AddCors(router, config)
//	// Router now accepts cross-origin requests according to config
func AddCors(r *chi.Mux, cfg *Config) {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsConfig.AllowedOrigins,
		AllowedMethods:   cfg.CorsConfig.AllowedMethods,
		AllowedHeaders:   cfg.CorsConfig.AllowedHeaders,
		AllowCredentials: cfg.CorsConfig.AllowCredentials,
	})
	r.Use(c.Handler)
}
