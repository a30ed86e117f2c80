package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/felixgeelhaar/accountctl/internal/errors"
)

var choices = map[string][]string{
	"logging.level":  {"debug", "info", "warn", "error"},
	"logging.format": {"text", "json"},
}

// Set writes key=value to the config file at path. Only values present in
// the file are rewritten; environment overrides and defaults are not
// copied into it.
func Set(path, key, value string) error {
	if !IsKnown(key) {
		return errors.NewConfigUnknownKeyError(key)
	}

	parsed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrap(errors.ErrCodeConfigRead, "failed to read config "+path, err)
		}
	}
	v.Set(key, parsed)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "failed to create config directory", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "failed to write config "+path, err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "failed to restrict config permissions", err)
	}
	return nil
}

// parseValue converts value to the type of the key's default.
func parseValue(key, value string) (any, error) {
	if valid, ok := choices[key]; ok {
		for _, c := range valid {
			if c == value {
				return value, nil
			}
		}
		return nil, errors.NewInvalidChoiceError(key, value, valid...)
	}

	switch defaults[key].(type) {
	case bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, invalidValue(key, value, "true or false")
		}
		return b, nil
	case float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, invalidValue(key, value, "a number")
		}
		return f, nil
	case time.Duration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, invalidValue(key, value, "a duration such as 30s")
		}
		return d.String(), nil
	default:
		return value, nil
	}
}

func invalidValue(key, value, want string) error {
	return errors.New(errors.ErrCodeValidationFailed, fmt.Sprintf("invalid value for %s: %q", key, value)).
		WithSuggestion("Expected " + want)
}
