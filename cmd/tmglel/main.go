package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	generatecmd "github.com/walteh/tmglel/cmd/tmglel/generate"
	labelscmd "github.com/walteh/tmglel/cmd/tmglel/labels"
	"github.com/walteh/tmglel/pkg/logging"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var opts logging.Options

	rootCmd := &cobra.Command{
		Use:   "tmglel",
		Short: "Generate TextMate grammars for labeled embedded languages",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := logging.New(os.Stderr, opts)
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.Caller, "caller", false, "add the caller to log lines")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored logs")

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)
	rootCmd.AddCommand(generatecmd.NewGenerateCommand())
	rootCmd.AddCommand(labelscmd.NewLabelsCommand())

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}
