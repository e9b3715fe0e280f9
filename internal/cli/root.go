package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vrylskyj/abook/internal/assistant"
	"github.com/vrylskyj/abook/internal/domain"
	"github.com/vrylskyj/abook/internal/infra/clock"
	"github.com/vrylskyj/abook/internal/infra/logger"
	"github.com/vrylskyj/abook/internal/infra/yamlbook"
	"github.com/vrylskyj/abook/internal/ports"
	"github.com/vrylskyj/abook/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var seed string
	var plain bool

	cmd := &cobra.Command{
		Use:          "abook",
		Short:        "abook — interactive contact-book assistant",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			cleanup, _ := logger.Setup(logger.Config{
				Root:  wd,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			book, err := buildBook(yamlbook.NewLoader(), seed)
			if err != nil {
				return err
			}

			asst := assistant.New(book, clock.System{}, logger.L())

			if plain {
				return runPlain(cmd.InOrStdin(), cmd.OutOrStdout(), asst)
			}

			return tui.Run(tui.Deps{
				Assistant: asst,
				Logger:    logger.L(),
				Debug:     debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .abook/logs/abook.log")
	cmd.Flags().StringVar(&seed, "seed", "", "YAML file of contacts to preload (read-only)")
	cmd.Flags().BoolVar(&plain, "plain", false, "line-based prompt instead of the TUI (for pipes and scripts)")

	cmd.AddCommand(versionCmd())
	return cmd
}

// buildBook constructs the session's address book: empty, or preloaded from a
// seed file. The book lives for exactly one session and is never persisted.
func buildBook(loader ports.BookLoader, seed string) (*domain.Book, error) {
	if seed == "" {
		return domain.NewBook(), nil
	}
	return loader.LoadBook(seed)
}
