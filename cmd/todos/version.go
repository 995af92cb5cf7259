package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/todos"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of todos",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "todos version %s\n", strings.TrimSpace(todos.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
