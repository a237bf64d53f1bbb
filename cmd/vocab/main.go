// Package main provides the vocabsheet binary entry point.
// Vocabsheet tracks personal vocabulary in a Google Sheets worksheet:
// adding words (optionally enriched from dictionary APIs), importing CSV
// batches with deduplication, and scheduling spaced reviews.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yhlin/vocabsheet/internal/adapter/csvfile"
	"github.com/yhlin/vocabsheet/internal/app"
	"github.com/yhlin/vocabsheet/internal/cli"
	"github.com/yhlin/vocabsheet/internal/domain"
	"github.com/yhlin/vocabsheet/internal/service/vocab"
)

func main() {
	// A local .env is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Personal vocabulary tracker backed by Google Sheets",
		Long: `Vocabsheet keeps a vocabulary list in a Google Sheets worksheet.

It can add words one at a time (with optional dictionary enrichment),
import CSV batches with duplicate detection, list words due for review,
and push a word's next review date forward.

Run without a subcommand for the interactive menu.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				return cli.NewMenu(a, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
			})
		},
	}

	cmd.AddCommand(
		addCmd(),
		importCmd(),
		dueCmd(),
		scheduleCmd(),
		backupCmd(),
		enrichCmd(),
		versionCmd(),
	)
	return cmd
}

// withApp builds the service graph, runs fn, and tears down on exit or
// interrupt.
func withApp(ctx context.Context, fn func(context.Context, *app.App) error) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func addCmd() *cobra.Command {
	var (
		flags      = make(map[string]*string)
		reviewDate string
		smart      bool
	)

	cmd := &cobra.Command{
		Use:   "add <word>",
		Short: "Add one word to the sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				today := time.Now()

				raw := domain.RawRecord{}
				if smart {
					var err error
					raw, err = a.Enrich.Suggest(ctx, args[0])
					if err != nil {
						return err
					}
				}
				raw.Set(domain.FieldWord, args[0])
				for field, value := range flags {
					if *value != "" {
						raw.Set(field, *value)
					}
				}
				if reviewDate != "" {
					date, err := cli.ResolveDateInput(reviewDate, today)
					if err != nil {
						return err
					}
					raw.Set(domain.FieldReviewDate, date)
				}

				rec, err := a.Vocab.AddWord(ctx, raw, today)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %q\n", rec.Word)
				return nil
			})
		},
	}

	stringFlag := func(field, flag, usage string) {
		var v string
		flags[field] = &v
		cmd.Flags().StringVar(&v, flag, "", usage)
	}
	stringFlag(domain.FieldPOS, "pos", "part of speech (noun, v., adj, ...)")
	stringFlag(domain.FieldMeaning, "meaning", "definition or translation")
	stringFlag(domain.FieldExample, "example", "example sentence")
	stringFlag(domain.FieldSynonyms, "synonyms", "synonyms, pipe-separated")
	stringFlag(domain.FieldTopic, "topic", "topic label")
	stringFlag(domain.FieldSource, "source", "where the word came from")
	stringFlag(domain.FieldNote, "note", "free-form note")
	cmd.Flags().StringVar(&reviewDate, "review-date", "", "first review date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().BoolVar(&smart, "smart", false, "pre-fill fields from dictionary lookup")

	return cmd
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a CSV batch, skipping duplicates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				raws, err := csvfile.ReadRecords(args[0])
				if err != nil {
					return err
				}
				result, err := a.Vocab.ImportBatch(ctx, raws)
				if err != nil {
					return err
				}

				lines := make([]string, 0, len(result.Errors))
				for _, e := range result.Errors {
					lines = append(lines, fmt.Sprintf("%d (%s): %s", e.LineNumber, e.Word, e.Reason))
				}
				cli.PrintImportResult(cmd.OutOrStdout(), result.Imported, result.Skipped, lines)
				return nil
			})
		},
	}
	return cmd
}

func dueCmd() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List words due for review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				ref := time.Now()
				if asOf != "" {
					parsed, err := time.Parse(domain.DateLayout, asOf)
					if err != nil {
						return fmt.Errorf("--as-of must be YYYY-MM-DD: %w", err)
					}
					ref = parsed
				}

				due, err := a.Vocab.DueReviews(ctx, ref)
				if err != nil {
					return err
				}
				if len(due) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "nothing due")
					return nil
				}
				cli.RenderDue(cmd.OutOrStdout(), due)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "evaluate dueness as of this date instead of today")
	return cmd
}

func scheduleCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "schedule <word>",
		Short: "Set a word's next review date, counted from today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if !cmd.Flags().Changed("days") {
					days = a.Cfg.Review.DefaultDays
				}
				next, err := a.Vocab.Reschedule(ctx, args[0], days, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%q scheduled for %s\n", args[0], next)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "days from today (defaults to the configured interval)")
	return cmd
}

func backupCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export the whole sheet to a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if out == "" {
					out = cli.BackupFileName(time.Now())
				}
				records, err := a.Vocab.ListRecords(ctx, 0)
				if err != nil {
					return err
				}
				if err := csvfile.WriteRecords(out, records); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(records), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default backup_<today>.csv)")
	return cmd
}

// enrichCmd looks a word up without writing anything, for checking what
// smart add would suggest.
func enrichCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrich <word>",
		Short: "Show dictionary suggestions for a word without saving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				raw, err := a.Enrich.Suggest(ctx, args[0])
				if err != nil {
					return err
				}
				rec, err := vocab.NormalizeRecord(raw)
				if err != nil {
					return err
				}
				cli.RenderTable(cmd.OutOrStdout(), []domain.Record{rec}, domain.Header())
				return nil
			})
		},
	}
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vocab version %s\n", app.BuildVersion())
		},
	}
}
