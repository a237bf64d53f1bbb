// Package cli implements the interactive menu session: prompt-driven
// add/review flows over the same services the one-shot commands use.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yhlin/vocabsheet/internal/domain"
)

// prompter reads line-oriented answers with optional defaults.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints the prompt (with its default in brackets) and returns the
// trimmed answer, or the default when the answer is empty.
func (p *prompter) ask(prompt, def string) string {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def
	}
	return answer
}

// askDate keeps prompting until the answer is a usable review date and
// returns it in ISO form. Empty answers return the default unchanged.
func (p *prompter) askDate(prompt, def string, today time.Time) string {
	for {
		answer := p.ask(prompt, def)
		if answer == "" {
			return ""
		}
		date, err := ResolveDateInput(answer, today)
		if err != nil {
			fmt.Fprintln(p.out, "⚠ use YYYY-MM-DD, or: today / tomorrow")
			continue
		}
		return date
	}
}

// ResolveDateInput canonicalizes an interactive date answer. Besides the
// formats the normalizer accepts, the keywords today/t/now and
// tomorrow/tmr resolve against the given reference time.
func ResolveDateInput(value string, today time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return "", nil
	case "today", "t", "now":
		return domain.DateOnly(today).Format(domain.DateLayout), nil
	case "tomorrow", "tmr":
		return domain.DateOnly(today).AddDate(0, 0, 1).Format(domain.DateLayout), nil
	}
	return domain.ParseReviewDate(value)
}
