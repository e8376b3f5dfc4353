package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "write a default settings file",
	Long:  "config writes a YAML settings file with the default epsilon and output options, for editing and passing to --config.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "navmerge.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if !confirmIfExists(path) {
			fmt.Println("aborted")
			return nil
		}
		if err := NewSettings().writeTo(path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
