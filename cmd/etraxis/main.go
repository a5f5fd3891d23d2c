package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"etraxis/internal/interfaces/cli/migrate"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "etraxis",
		Short: "eTraxis - issue tracking engine",
		Long:  `eTraxis is an issue tracking engine with fully customizable templates, workflows and fields.`,
	}

	rootCmd.AddCommand(
		migrate.NewCommand(),
		newVersionCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
