package uprail

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	envFilename     = ".env"
	envKeyAccessID  = "ACCESS_ID"
	envKeySecretKey = "SECRET_KEY"
)

// Credentials holds the API identity used for the OAuth token exchange.
// They are resolved once at client construction and never rotated
// in-process.
type Credentials struct {
	AccessID  string
	SecretKey string
}

// resolveCredentials returns explicit credentials verbatim when both are
// non-empty. Otherwise it reads ACCESS_ID and SECRET_KEY from <dir>/.env,
// falling back to the process environment for either key the file does
// not provide.
func resolveCredentials(accessID, secretKey, dir string) (Credentials, error) {
	if accessID != "" && secretKey != "" {
		return Credentials{AccessID: accessID, SecretKey: secretKey}, nil
	}

	envPath := filepath.Join(dir, envFilename)
	vals, err := godotenv.Read(envPath)
	if err != nil {
		// A missing .env file is fine as long as the process environment
		// has the keys.
		vals = map[string]string{}
	}

	if accessID == "" {
		accessID = vals[envKeyAccessID]
	}
	if accessID == "" {
		accessID = os.Getenv(envKeyAccessID)
	}
	if secretKey == "" {
		secretKey = vals[envKeySecretKey]
	}
	if secretKey == "" {
		secretKey = os.Getenv(envKeySecretKey)
	}

	if accessID == "" || secretKey == "" {
		return Credentials{}, &ConfigurationError{EnvPath: envPath}
	}
	return Credentials{AccessID: accessID, SecretKey: secretKey}, nil
}
