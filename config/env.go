package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment is the deployment the process runs in
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

func (e Environment) String() string { return string(e) }

// GetEnvironment reads the environment from CI and ENV. A truthy CI variable
// wins; ENV is matched case-insensitively and anything unknown is development.
func GetEnvironment() Environment {
	if ci, err := strconv.ParseBool(os.Getenv("CI")); err == nil && ci {
		return CI
	}

	switch strings.ToLower(strings.TrimSpace(os.Getenv("ENV"))) {
	case "production", "prod":
		return Production
	case "test":
		return Test
	case "ci":
		return CI
	default:
		return Development
	}
}

func IsDevelopment() bool { return GetEnvironment() == Development }

// IsTest reports ENV=test, used for local test runs against a live stack
func IsTest() bool { return GetEnvironment() == Test }

// IsCI reports a CI runner, where external services such as S3 are not reachable
func IsCI() bool { return GetEnvironment() == CI }

func IsProduction() bool { return GetEnvironment() == Production }
