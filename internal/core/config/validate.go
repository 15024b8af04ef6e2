package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/chore/internal/core/category"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, dataDirSet),
		c.validatePalette(),
	)
}

// ValidateDeep performs validation including file-system checks. The
// configPath argument specifies the config file location to validate
// (empty string skips the config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func (c *Config) validatePalette() error {
	var errs criterio.FieldErrorsBuilder
	for i, color := range c.ColorPalette {
		if !category.IsHexColor(color) {
			errs = errs.Append(fmt.Sprintf("color_palette[%d]", i), fmt.Errorf("%q is not a #RRGGBB color", color))
		}
	}
	return errs.ToError()
}

func dataDirSet(dir string) error {
	if dir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func isDirectoryOrNotExist(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil // created on first save
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is a file, not a directory", dir)
	}
	return nil
}
