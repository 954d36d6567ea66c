package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("%s is not set - please update your .env file to include this field (expected: %s)", EnvSchemaVersion, ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated", EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv(EnvDBPassword) == DefaultDBPassword {
		warnings = append(warnings, "DB_PASSWORD is the default value - please use a secure password")
	}
	if _, set := os.LookupEnv(EnvEventDeadLetterPath); !set {
		warnings = append(warnings, "EVENT_DEADLETTER_PATH not set - failed events go to "+DefaultEventDeadLetter)
	}

	return warnings, nil
}
