package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"veil/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the result cache",
	Long:  `Clean removes every cached obfuscation result from the disk cache.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenDiskCache("veil")
		if err != nil {
			return err
		}
		if err := cache.DropAll(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "result cache dropped")
		return nil
	},
}
