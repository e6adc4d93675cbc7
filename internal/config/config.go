package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// PasswordEnvVariable is the environment variable holding the password of the
// signer key file.
const PasswordEnvVariable = "KEEP_EOS_PASSWORD"

// Config is the top level config structure.
type Config struct {
	Signer Signer
}

// Signer holds the location of the encrypted key used to sign messages.
type Signer struct {
	KeyFile         string
	KeyFilePassword string
}

// ReadConfig reads in the configuration file in .toml format. The key file
// password is taken from the PasswordEnvVariable environment variable when it
// is set.
func ReadConfig(filePath string) (*Config, error) {
	config := &Config{}
	if _, err := toml.DecodeFile(filePath, config); err != nil {
		return nil, fmt.Errorf("unable to decode .toml file [%s] error [%s]", filePath, err)
	}

	if password := os.Getenv(PasswordEnvVariable); len(password) > 0 {
		config.Signer.KeyFilePassword = password
	}

	return config, nil
}
