package main

import (
	"os"
	"path/filepath"

	"github.com/bracketpress/bracketpress/internal/config"
	"github.com/bracketpress/bracketpress/internal/logger"
	"github.com/bracketpress/bracketpress/internal/project"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Log    *logger.Logger
}

// OpenRegistry loads the tournament registry from the configured data dir.
func (a *AppContext) OpenRegistry() (*project.Registry, error) {
	return project.NewRegistry(a.Config.RegistryPath(), a.Log)
}

// DocumentPath returns where a tournament's page document lives.
func (a *AppContext) DocumentPath(slug string) string {
	return filepath.Join(a.Config.DocumentsDir(), slug+".json")
}

func defaultConfigPath() string {
	if env := os.Getenv("BRACKETPRESS_CONFIG"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".bracketpress", "config.yaml")
}
