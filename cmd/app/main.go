// Command cricstats records cricket matches to a local text log and reports
// statistics over it.
//
// Usage:
//
//	cricstats                          interactive menu
//	cricstats history --limit 10
//	cricstats stats
//	cricstats export --out stats.xlsx
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cricstats/internal/application"
	"cricstats/internal/delivery/console"
	"cricstats/internal/repository"
	"cricstats/pkg/config"
	"cricstats/pkg/logger"
	service "cricstats/pkg/services"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type app struct {
	cfg      config.Config
	log      *logger.Logger
	logOut   io.Closer
	services *application.Service
}

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "cricstats",
		Short:         "Cricket match tracker",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				return a.runShell(cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}

	root.AddCommand(historyCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(exportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func withApp(fn func(a *app) error) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.logOut.Close()
	return fn(a)
}

func newApp() (*app, error) {
	a := &app{}
	if err := config.ReadEnvConfig(&a.cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	out, err := logger.OpenFile(a.cfg.LogFile)
	if err != nil {
		return nil, err
	}
	a.logOut = out
	a.log = logger.NewLogger(&logger.Config{Level: a.cfg.LogLevel, Output: out})

	repos, err := repository.NewRepository(&a.cfg.Repo)
	if err != nil {
		out.Close()
		return nil, fmt.Errorf("failed to init match log: %w", err)
	}
	a.log.Debug("match log at %s", repos.Path())

	commentary := application.NewSeededCommentary(a.cfg.CommentarySeed)
	a.services = application.NewService(repos, commentary, nil, a.log)
	return a, nil
}

func (a *app) runShell(in io.Reader, out io.Writer) error {
	shell := console.NewShell(&console.Config{
		TeamName:     a.cfg.TeamName,
		HistoryLimit: a.cfg.HistoryLen,
	}, in, out, a.services.MatchService, a.log)

	manager := service.NewManager(a.log)
	manager.AddService(shell)
	return manager.Run(context.Background())
}

func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the most recent log lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				if !cmd.Flags().Changed("limit") {
					limit = a.cfg.HistoryLen
				}
				lines, err := a.services.MatchService.RecentHistory(limit)
				if err != nil && !errors.Is(err, repository.ErrNoData) {
					return err
				}
				console.PrintHistory(cmd.OutOrStdout(), lines)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "Number of matches to show")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print statistics over the match log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				report, err := a.services.MatchService.Statistics()
				if errors.Is(err, repository.ErrNoData) {
					fmt.Fprintln(cmd.OutOrStdout(), "📊 No matches to analyze")
					return nil
				}
				if err != nil {
					return err
				}
				console.PrintStats(cmd.OutOrStdout(), report)
				return nil
			})
		},
	}
}

func exportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the match log and statistics to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				data, err := a.services.MatchService.ExcelReport()
				if errors.Is(err, repository.ErrNoData) {
					fmt.Fprintln(cmd.OutOrStdout(), "No matches found. Play some games first!")
					return nil
				}
				if err != nil {
					return fmt.Errorf("failed to build report: %w", err)
				}
				if err := os.WriteFile(outPath, data, 0o644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				a.log.Info("report written to %s", outPath)
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Report saved to %s\n", outPath)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "cricstats.xlsx", "Output .xlsx path")
	return cmd
}
