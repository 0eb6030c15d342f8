package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

// ReadEnvFile parses a dotenv file into session variables. An empty path
// yields an empty map.
func ReadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return vars, nil
}
