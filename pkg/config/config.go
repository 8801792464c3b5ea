/*
Copyright 2026 the Platform Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the description of the environment under test.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/trustedanalytics/platform-tests/pkg/cfv3"
	"github.com/trustedanalytics/platform-tests/pkg/httpclient"
	"github.com/trustedanalytics/platform-tests/pkg/results/gormstore"
	"github.com/trustedanalytics/platform-tests/pkg/validation"
)

// ErrMissingCredentials is returned when neither a token nor an admin
// username is configured.
var ErrMissingCredentials = errors.New("missing credentials: set API_AUTH_TOKEN or ADMIN_USERNAME and ADMIN_PASSWORD")

type TestConfig struct {
	Domain     string `validate:"required,hostname_rfc1123"`
	ConsoleURL string `validate:"required,url"`
	APIURL     string `validate:"required,url"`
	UAAURL     string `validate:"required,url"`

	AuthToken         string
	AdminUsername     string
	AdminPassword     string `validate:"required_with=AdminUsername"`
	UAAClientID       string `validate:"required"`
	SkipTLSValidation bool

	RequestTimeout time.Duration `validate:"gt=0"`
	TestTimeout    time.Duration `validate:"gt=0"`

	ReferenceOrg   string `validate:"required"`
	ReferenceSpace string `validate:"required"`
	UserDomain     string `validate:"required"`

	PlatformVersion string
	ResultsDriver   string `validate:"omitempty,oneof=sqlite postgres"`
	ResultsDSN      string `validate:"required_with=ResultsDriver"`
	ComponentsFile  string `validate:"omitempty,file"`

	SkipIntegration  bool
	DebugLogging     bool
	LogRequests      bool
	LogResponses     bool
	LoggedBodyLength int `validate:"gte=0"`
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	domain := os.Getenv("PLATFORM_DOMAIN")

	config := &TestConfig{
		Domain:            domain,
		ConsoleURL:        getWithDefault("CONSOLE_URL", "https://console."+domain),
		APIURL:            getWithDefault("CF_API_URL", "https://api."+domain),
		UAAURL:            getWithDefault("UAA_URL", "https://uaa."+domain),
		AuthToken:         os.Getenv("API_AUTH_TOKEN"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		UAAClientID:       getWithDefault("UAA_CLIENT_ID", "cf"),
		SkipTLSValidation: getBoolWithDefault("SKIP_TLS_VALIDATION", false),
		RequestTimeout:    getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:       getDurationWithDefault("TEST_TIMEOUT", 20*time.Minute),
		ReferenceOrg:      getWithDefault("REFERENCE_ORG", "seedorg"),
		ReferenceSpace:    getWithDefault("REFERENCE_SPACE", "seedspace"),
		UserDomain:        getWithDefault("TEST_USER_DOMAIN", "example.com"),
		PlatformVersion:   os.Getenv("PLATFORM_VERSION"),
		ResultsDriver:     os.Getenv("RESULTS_DB_DRIVER"),
		ResultsDSN:        os.Getenv("RESULTS_DB_DSN"),
		ComponentsFile:    os.Getenv("COMPONENTS_FILE"),
		SkipIntegration:   getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:      getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:       getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:      getBoolWithDefault("LOG_RESPONSES", false),
		LoggedBodyLength:  getIntWithDefault("LOGGED_BODY_LENGTH", 1024),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks field constraints and that some credentials are set.
func (c *TestConfig) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.AuthToken == "" && c.AdminUsername == "" {
		return ErrMissingCredentials
	}

	return nil
}

func (c *TestConfig) AuthOptions() *httpclient.AuthOptions {
	return &httpclient.AuthOptions{
		Token:             c.AuthToken,
		UAAURL:            c.UAAURL,
		ClientID:          c.UAAClientID,
		Username:          c.AdminUsername,
		Password:          c.AdminPassword,
		SkipTLSValidation: c.SkipTLSValidation,
		Timeout:           c.RequestTimeout,
	}
}

func (c *TestConfig) HTTPOptions() httpclient.Options {
	return httpclient.Options{
		LogRequests:      c.LogRequests,
		LogResponses:     c.LogResponses,
		LoggedBodyLength: c.LoggedBodyLength,
	}
}

// CFV3Options returns the settings for the go-cfclient based sweeper.
func (c *TestConfig) CFV3Options() *cfv3.Options {
	return &cfv3.Options{
		APIURL:            c.APIURL,
		Token:             c.AuthToken,
		Username:          c.AdminUsername,
		Password:          c.AdminPassword,
		SkipTLSValidation: c.SkipTLSValidation,
	}
}

// ResultsEnabled tells whether runs are to be recorded.
func (c *TestConfig) ResultsEnabled() bool {
	return c.ResultsDriver != ""
}

func (c *TestConfig) ResultsConfig() gormstore.Config {
	return gormstore.Config{
		Driver: c.ResultsDriver,
		DSN:    c.ResultsDSN,
	}
}

func (c *TestConfig) LogLevel() logrus.Level {
	if c.DebugLogging {
		return logrus.DebugLevel
	}

	return logrus.InfoLevel
}

func getWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func getIntWithDefault(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}

func loadEnvFile() {
	envPaths := []string{
		".env",
		"test/.env",
		"../../../test/.env", // From test/api/suites directory
	}

	var envPath string
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
