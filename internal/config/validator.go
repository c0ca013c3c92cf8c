package config

import (
	"fmt"
	"reflect"
	"strings"

	"video-quiz/internal/validation"
)

// Validate checks the configuration and returns one error listing every
// problem, named after the environment variable that sets the field when there
// is one.
func (c *Config) Validate() error {
	_, messages, err := validation.New(envTagName).FieldMessages(c)
	if err != nil {
		return fmt.Errorf("failed to validate configuration: %w", err)
	}
	if len(messages) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}

func envTagName(fld reflect.StructField) string {
	if env := fld.Tag.Get("env"); env != "" {
		return env
	}
	name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
