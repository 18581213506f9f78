package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/concepts/pkg/regexkit"
	"github.com/KromDaniel/concepts/stream"
)

// regexFlags are the compile options shared by the regex subcommands.
type regexFlags struct {
	ignoreCase bool
	multiline  bool
	singleline bool
}

func (f *regexFlags) compile(app *App, expr string) (*regexkit.Pattern, error) {
	opts := []regexkit.Option{regexkit.WithTimeout(app.Config.Regex.MatchTimeout)}
	if f.ignoreCase {
		opts = append(opts, regexkit.WithIgnoreCase())
	}
	if f.multiline {
		opts = append(opts, regexkit.WithMultiline())
	}
	if f.singleline {
		opts = append(opts, regexkit.WithSingleline())
	}
	return regexkit.Compile(expr, opts...)
}

func newRegexCommand(app *App) *cobra.Command {
	flags := &regexFlags{}
	cmd := &cobra.Command{
		Use:   "regex",
		Short: "Try patterns against your own input",
		Long: `Try patterns against your own input.

Patterns use the same backtracking engine as the tutorials, so lookarounds,
backreferences, atomic groups and conditionals all work. Offsets are in
characters, not bytes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "case-insensitive matching")
	cmd.PersistentFlags().BoolVarP(&flags.multiline, "multiline", "m", false, "^ and $ match at line breaks")
	cmd.PersistentFlags().BoolVarP(&flags.singleline, "singleline", "s", false, ". matches line breaks")

	cmd.AddCommand(
		newMatchCommand(app, flags),
		newFindCommand(app, flags),
		newReplaceCommand(app, flags),
		newSplitCommand(app, flags),
		newAnalyzeCommand(),
		newGrepCommand(app, flags),
		newSedCommand(app, flags),
	)
	return cmd
}

func newMatchCommand(app *App, flags *regexFlags) *cobra.Command {
	var prefix bool
	cmd := &cobra.Command{
		Use:   "match <pattern> <input>...",
		Short: "Report whether each input matches as a whole",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.compile(app, args[0])
			if err != nil {
				return err
			}
			m := p.Matcher("")
			for _, in := range args[1:] {
				m.ResetInput(in)
				var ok bool
				if prefix {
					ok, err = m.LookingAt()
				} else {
					ok, err = m.Matches()
				}
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", boolStyle(ok).Render(fmt.Sprint(ok)), in); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&prefix, "prefix", false, "match a prefix only (lookingAt)")
	return cmd
}

func newFindCommand(app *App, flags *regexFlags) *cobra.Command {
	var (
		count bool
		nth   int
	)
	cmd := &cobra.Command{
		Use:   "find <pattern> <input>",
		Short: "List matches with their groups and offsets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.compile(app, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			in := args[1]

			if count {
				plain, err := p.CountMatches(in)
				if err != nil {
					return err
				}
				overlapping, err := p.CountOverlapping(in)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(w, "%s %d\n%s %d\n", KeyStyle.Render("matches:"), plain, KeyStyle.Render("overlapping:"), overlapping)
				return err
			}

			var matches []regexkit.Match
			if nth > 0 {
				m, ok, err := p.FindNth(in, nth)
				if err != nil {
					return err
				}
				if ok {
					matches = append(matches, m)
				}
			} else if matches, err = p.FindAllMatches(in); err != nil {
				return err
			}
			if len(matches) == 0 {
				_, err := fmt.Fprintln(w, ErrorStyle.Render("no match"))
				return err
			}
			return printMatches(w, p, matches)
		},
	}
	cmd.Flags().BoolVarP(&count, "count", "c", false, "only count matches, plain and overlapping")
	cmd.Flags().IntVarP(&nth, "nth", "n", 0, "only show the n-th match (1-based)")
	return cmd
}

func printMatches(w io.Writer, p *regexkit.Pattern, matches []regexkit.Match) error {
	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "%s %q\n", KeyStyle.Render(fmt.Sprintf("[%d,%d)", m.Start, m.End)), m.Text)
		for i := 1; i <= m.GroupCount(); i++ {
			label := fmt.Sprint(i)
			if name := p.GroupName(i); name != "" {
				label += "<" + name + ">"
			}
			text, ok := m.Group(i)
			if !ok {
				fmt.Fprintf(&b, "  %s %s\n", label, SubtitleStyle.Render("(did not take part)"))
				continue
			}
			start, end := m.Span(i)
			fmt.Fprintf(&b, "  %s [%d,%d) %q\n", label, start, end, text)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func newReplaceCommand(app *App, flags *regexFlags) *cobra.Command {
	var (
		first     bool
		nth       int
		exceptNth int
	)
	cmd := &cobra.Command{
		Use:   "replace <pattern> <input> <template>",
		Short: "Replace matches; the template may use $1, ${name} and $$",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.compile(app, args[0])
			if err != nil {
				return err
			}
			in, tmpl := args[1], args[2]

			var out string
			switch {
			case first:
				out, err = p.ReplaceFirst(in, tmpl)
			case nth > 0:
				out, err = p.ReplaceNth(in, tmpl, nth)
			case exceptNth > 0:
				out, err = p.ReplaceExceptNth(in, tmpl, exceptNth)
			default:
				out, err = p.ReplaceAll(in, tmpl)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&first, "first", false, "replace the first match only")
	cmd.Flags().IntVar(&nth, "nth", 0, "replace only the n-th match")
	cmd.Flags().IntVar(&exceptNth, "except-nth", 0, "replace every match except the n-th")
	cmd.MarkFlagsMutuallyExclusive("first", "nth", "except-nth")
	return cmd
}

func newSplitCommand(app *App, flags *regexFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "split <pattern> <input>",
		Short: "Split the input around matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.compile(app, args[0])
			if err != nil {
				return err
			}
			parts, err := p.Split(args[1])
			if err != nil {
				return err
			}
			for _, part := range parts {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%q\n", part); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <pattern>",
		Short: "Describe a pattern's features and backtracking risk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := regexkit.Analyze(args[0])
			if err != nil {
				return err
			}

			length := SubtitleStyle.Render("unknown")
			if a.LengthKnown {
				length = fmt.Sprintf("%d..", a.MinLen)
				if a.MaxLen >= 0 {
					length += fmt.Sprint(a.MaxLen)
				}
				length += " bytes"
			}
			engine := a.Engine
			if !a.RE2Compatible {
				engine += SubtitleStyle.Render(" (" + a.RE2Error + ")")
			}
			risk := SuccessStyle.Render("low")
			if a.CatastrophicRisk {
				risk = WarningStyle.Render("nested quantifiers can backtrack exponentially")
			}

			rows := [][2]string{
				{"pattern", a.Pattern},
				{"features", strings.Join(a.Features, ", ")},
				{"engine", engine},
				{"groups", fmt.Sprintf("%d %v", a.CaptureCount, a.CaptureNames)},
				{"length", length},
				{"risk", risk},
			}
			var b strings.Builder
			for _, row := range rows {
				fmt.Fprintf(&b, "%s %s\n", KeyStyle.Render(fmt.Sprintf("%-9s", row[0])), row[1])
			}
			_, err = io.WriteString(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}

// trimEOL drops a trailing "\n" or "\r\n" and returns it separately.
func trimEOL(line []byte) (text, eol []byte) {
	text = bytes.TrimSuffix(line, []byte("\n"))
	text = bytes.TrimSuffix(text, []byte("\r"))
	return text, line[len(text):]
}

func newGrepCommand(app *App, flags *regexFlags) *cobra.Command {
	var (
		invert  bool
		numbers bool
	)
	cmd := &cobra.Command{
		Use:   "grep <pattern>",
		Short: "Print the lines of stdin containing a match",
		Long: `Print the lines of stdin containing a match.

Each line is matched without its line ending. Lines longer than 1 MiB are
rejected, with or without --line-number.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.compile(app, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			var matchErr error
			keep := func(text []byte) bool {
				if matchErr != nil {
					return false
				}
				ok, err := p.Contains(string(text))
				if err != nil {
					matchErr = err
					return false
				}
				return ok != invert
			}

			if numbers {
				var writeErr error
				err := stream.ScanLines(cmd.Context(), cmd.InOrStdin(), stream.DefaultConfig(), func(l stream.Line) bool {
					if !keep(l.Text) {
						return matchErr == nil
					}
					_, writeErr = fmt.Fprintf(w, "%s:%s\n", KeyStyle.Render(fmt.Sprint(l.Number)), l.Text)
					return writeErr == nil
				})
				return errors.Join(err, matchErr, writeErr)
			}

			r := stream.LineFilter(cmd.InOrStdin(), func(line []byte) bool {
				text, _ := trimEOL(line)
				return keep(text)
			})
			_, err = io.Copy(w, r)
			return errors.Join(err, matchErr)
		},
	}
	cmd.Flags().BoolVarP(&invert, "invert-match", "v", false, "print the lines that do not match")
	cmd.Flags().BoolVarP(&numbers, "line-number", "n", false, "prefix each line with its number")
	return cmd
}

func newSedCommand(app *App, flags *regexFlags) *cobra.Command {
	var first bool
	cmd := &cobra.Command{
		Use:   "sed <pattern> <template>",
		Short: "Replace matches on every line of stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.compile(app, args[0])
			if err != nil {
				return err
			}
			tmpl := args[1]
			replace := p.ReplaceAll
			if first {
				replace = p.ReplaceFirst
			}

			var replaceErr error
			r := stream.LineTransform(cmd.InOrStdin(), func(line []byte) []byte {
				if replaceErr != nil {
					return nil
				}
				text, eol := trimEOL(line)
				out, err := replace(string(text), tmpl)
				if err != nil {
					replaceErr = err
					return nil
				}
				return append([]byte(out), eol...)
			})
			_, err = io.Copy(cmd.OutOrStdout(), r)
			return errors.Join(err, replaceErr)
		},
	}
	cmd.Flags().BoolVar(&first, "first", false, "replace only the first match on each line")
	return cmd
}
