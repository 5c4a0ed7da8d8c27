package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the state document lives.
type Config interface {
	BasePath() string
}

// LoadConfig reads an optional .actionmenu config file and the ACTIONMENU_*
// environment, defaulting the store to ~/.actionmenu.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.actionmenu.db")
	viper.SetConfigName(".actionmenu") // .yaml is implicit
	viper.SetEnvPrefix("ACTIONMENU")
	viper.AutomaticEnv()

	if override := os.Getenv("ACTIONMENU_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
