package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// AppDir returns ~/.coinpicker.
func AppDir() string {
	return filepath.Join(home(), ".coinpicker")
}

// ConfigFile returns ~/.coinpicker/config.yaml.
func ConfigFile() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// LogFile returns ~/.coinpicker/coinpicker.log.
func LogFile() string {
	return filepath.Join(AppDir(), "coinpicker.log")
}
