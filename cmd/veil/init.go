package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"veil/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a veil configuration",
	Long: `Initialize writes a veil.toml with the default obfuscation options into
the target directory (the current directory when [path] is omitted).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	cfgPath := filepath.Join(target, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("already initialized: %s exists", cfgPath)
	}

	content, err := defaultConfigTOML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgPath, content, os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", cfgPath)
	return nil
}

func defaultConfigTOML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# veil obfuscation options\n")
	defaults := config.Default()
	if err := toml.NewEncoder(&buf).Encode(&defaults); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
