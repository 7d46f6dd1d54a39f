package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the shared validator with the difficulty and
// theme name checks registered.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails on empty tags or nil funcs.
		_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
			_, err := memory.ParseDifficulty(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := memory.ParseTheme(fl.Field().String())
			return err == nil
		})
		validate = v
	})
	return validate
}

// Validate checks a configuration against its struct tags.
func Validate(cfg Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}

// ApplyDifficulty overrides the default difficulty by name.
func ApplyDifficulty(cfg *Config, name string) error {
	d, err := memory.ParseDifficulty(name)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.Game.Difficulty = d.String()
	return nil
}

// ApplyTheme overrides the default theme by name.
func ApplyTheme(cfg *Config, name string) error {
	t, err := memory.ParseTheme(name)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.Game.Theme = t.String()
	return nil
}
