package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/yhlin/vocabsheet/internal/adapter/csvfile"
	"github.com/yhlin/vocabsheet/internal/app"
	"github.com/yhlin/vocabsheet/internal/domain"
	"github.com/yhlin/vocabsheet/internal/service/vocab"
)

const peekLimit = 20

// Menu drives the interactive session. Every action goes through the
// same services the one-shot subcommands use.
type Menu struct {
	app    *app.App
	prompt *prompter
	out    io.Writer
	now    func() time.Time
}

func NewMenu(a *app.App, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		app:    a,
		prompt: newPrompter(in, out),
		out:    out,
		now:    time.Now,
	}
}

// Run loops until the user quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== vocabsheet ===")
		fmt.Fprintln(m.out, " 1) smart add (look up word, confirm fields)")
		fmt.Fprintln(m.out, " 2) add word manually")
		fmt.Fprintln(m.out, " 3) due reviews")
		fmt.Fprintln(m.out, " 4) schedule next review")
		fmt.Fprintln(m.out, " 5) import CSV")
		fmt.Fprintln(m.out, " 6) backup to CSV")
		fmt.Fprintf(m.out, " 7) peek first %d rows\n", peekLimit)
		fmt.Fprintln(m.out, " q) quit")

		choice := m.prompt.ask("choose", "")
		switch choice {
		case "1":
			m.report(m.smartAdd(ctx))
		case "2":
			m.report(m.addManual(ctx))
		case "3":
			m.report(m.dueReviews(ctx))
		case "4":
			m.report(m.schedule(ctx))
		case "5":
			m.report(m.importCSV(ctx))
		case "6":
			m.report(m.backup(ctx))
		case "7":
			m.report(m.peek(ctx))
		case "q", "quit", "exit", "":
			fmt.Fprintln(m.out, "bye")
			return nil
		default:
			fmt.Fprintf(m.out, "unknown choice %q\n", choice)
		}
	}
}

// report prints action failures without ending the session. Validation
// problems are user mistakes, not program errors, so both stay on the
// menu loop.
func (m *Menu) report(err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound):
		fmt.Fprintf(m.out, "⚠ %v\n", err)
	default:
		fmt.Fprintf(m.out, "✗ %v\n", err)
	}
}

func (m *Menu) smartAdd(ctx context.Context) error {
	word := m.prompt.ask("word", "")
	if word == "" {
		return domain.NewValidationError(domain.FieldWord, "", "is required")
	}

	raw, err := m.app.Enrich.Suggest(ctx, word)
	if err != nil {
		return err
	}
	return m.confirmAndAdd(ctx, raw)
}

func (m *Menu) addManual(ctx context.Context) error {
	word := m.prompt.ask("word", "")
	if word == "" {
		return domain.NewValidationError(domain.FieldWord, "", "is required")
	}
	raw := domain.RawRecord{Word: &word}
	return m.confirmAndAdd(ctx, raw)
}

// confirmAndAdd walks the remaining fields with whatever the enricher
// pre-filled as defaults, then saves.
func (m *Menu) confirmAndAdd(ctx context.Context, raw domain.RawRecord) error {
	today := m.now()

	raw.Set(domain.FieldPOS, m.prompt.ask("part of speech", deref(raw.POS)))
	raw.Set(domain.FieldMeaning, m.prompt.ask("meaning", deref(raw.Meaning)))
	raw.Set(domain.FieldExample, m.prompt.ask("example", deref(raw.Example)))
	raw.Set(domain.FieldSynonyms, m.prompt.ask("synonyms", deref(raw.Synonyms)))
	raw.Set(domain.FieldTopic, m.prompt.ask("topic", deref(raw.Topic)))
	raw.Set(domain.FieldSource, m.prompt.ask("source", deref(raw.Source)))
	raw.Set(domain.FieldReviewDate, m.prompt.askDate("review date", deref(raw.ReviewDate), today))
	raw.Set(domain.FieldNote, m.prompt.ask("note", deref(raw.Note)))

	rec, err := m.app.Vocab.AddWord(ctx, raw, today)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "✓ added %q", rec.Word)
	if rec.ReviewDate != "" {
		fmt.Fprintf(m.out, " (review %s)", rec.ReviewDate)
	}
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) dueReviews(ctx context.Context) error {
	due, err := m.app.Vocab.DueReviews(ctx, m.now())
	if err != nil {
		return err
	}
	if len(due) == 0 {
		fmt.Fprintln(m.out, "nothing due today 🎉")
		return nil
	}
	fmt.Fprintf(m.out, "%d due:\n", len(due))
	RenderDue(m.out, due)
	return nil
}

func (m *Menu) schedule(ctx context.Context) error {
	word := m.prompt.ask("word", "")
	if word == "" {
		return domain.NewValidationError(domain.FieldWord, "", "is required")
	}

	defDays := strconv.Itoa(m.app.Cfg.Review.DefaultDays)
	days, err := strconv.Atoi(m.prompt.ask("days from today", defDays))
	if err != nil {
		return domain.NewValidationError("days", "", "must be a whole number")
	}

	next, err := m.app.Vocab.Reschedule(ctx, word, days, m.now())
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "✓ %q scheduled for %s\n", word, next)
	return nil
}

func (m *Menu) importCSV(ctx context.Context) error {
	path := m.prompt.ask("csv path", "")
	if path == "" {
		return errors.New("no file given")
	}

	raws, err := csvfile.ReadRecords(path)
	if err != nil {
		return err
	}
	result, err := m.app.Vocab.ImportBatch(ctx, raws)
	if err != nil {
		return err
	}
	PrintImportResult(m.out, result.Imported, result.Skipped, importErrorLines(result))
	return nil
}

func (m *Menu) backup(ctx context.Context) error {
	def := BackupFileName(m.now())
	path := m.prompt.ask("backup file", def)

	records, err := m.app.Vocab.ListRecords(ctx, 0)
	if err != nil {
		return err
	}
	if err := csvfile.WriteRecords(path, records); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "✓ wrote %d records to %s\n", len(records), path)
	return nil
}

func (m *Menu) peek(ctx context.Context) error {
	records, err := m.app.Vocab.ListRecords(ctx, peekLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(m.out, "sheet is empty")
		return nil
	}
	RenderTable(m.out, records, domain.Header())
	return nil
}

// BackupFileName is the default name for a CSV backup taken now.
func BackupFileName(now time.Time) string {
	return "backup_" + now.Format(domain.DateLayout) + ".csv"
}

// PrintImportResult summarizes an import in one line plus per-row
// problems, shared by the menu and the import subcommand.
func PrintImportResult(w io.Writer, imported, skipped int, problems []string) {
	fmt.Fprintf(w, "imported %d, skipped %d duplicates/rejects\n", imported, skipped)
	for _, p := range problems {
		fmt.Fprintf(w, "  row %s\n", p)
	}
}

func importErrorLines(result *vocab.ImportResult) []string {
	lines := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		lines = append(lines, fmt.Sprintf("%d (%s): %s", e.LineNumber, e.Word, e.Reason))
	}
	return lines
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
