package util

import (
	"fmt"

	"github.com/spf13/viper"
)

func ReadConfig() error {
	return ReadConfigFrom("./data/")
}

// ReadConfigFrom loads the config file from a custom directory, for tools and
// tests that do not run from the repository root.
func ReadConfigFrom(dir string) error {
	viper.SetConfigName("config")
	viper.AddConfigPath(dir)

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
