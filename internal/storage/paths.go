// Package storage persists console preferences and move statistics in BadgerDB.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chesspos"

// GetDataDir returns the platform-specific data directory for the application,
// creating it if needed.
// - macOS: ~/Library/Application Support/chesspos/
// - Linux: $XDG_DATA_HOME/chesspos/ or ~/.local/share/chesspos/
// - Windows: %APPDATA%/chesspos/
func GetDataDir() (string, error) {
	base, err := baseDir(runtime.GOOS, os.Getenv, os.UserHomeDir)
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(base, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// baseDir resolves the per-user data root for goos.
func baseDir(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	switch goos {
	case "darwin":
		h, err := home()
		if err != nil {
			return "", err
		}
		return filepath.Join(h, "Library", "Application Support"), nil

	case "windows":
		if dir := getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		h, err := home()
		if err != nil {
			return "", err
		}
		return filepath.Join(h, "AppData", "Roaming"), nil

	default:
		if dir := getenv("XDG_DATA_HOME"); dir != "" {
			return dir, nil
		}
		h, err := home()
		if err != nil {
			return "", err
		}
		return filepath.Join(h, ".local", "share"), nil
	}
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	return dbDir, nil
}
