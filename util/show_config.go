// Package util provides business logic for the show-config command.
package util

import (
	"fmt"
	"io"

	"github.com/git-l10n/git-po-writer/config"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// CmdShowConfig writes the merged configuration to w in YAML format.
func CmdShowConfig(w io.Writer, configFile string) error {
	log.Debugf("loading configuration")
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Errorf("failed to load configuration: %v", err)
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		log.Errorf("failed to marshal configuration to YAML: %v", err)
		return fmt.Errorf("failed to marshal configuration to YAML: %w", err)
	}

	if configFile != "" {
		fmt.Fprintf(w, "# Configuration loaded from %s\n", configFile)
	} else {
		fmt.Fprintln(w, "# This is the merged configuration from:")
		fmt.Fprintf(w, "# - User home directory: ~/%s (lower priority)\n", config.UserFileName)
		fmt.Fprintf(w, "# - Repository root: <repo-root>/%s (higher priority)\n", config.FileName)
	}
	fmt.Fprintln(w)
	_, err = w.Write(yamlData)
	return err
}
