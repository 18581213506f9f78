package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/concepts/internal/catalog"
	"github.com/KromDaniel/concepts/internal/demo"
)

func newListCommand(app *App) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List topics in presentation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			topics, err := catalog.ByGroup(group)
			if err != nil {
				return err
			}
			return listTopics(cmd.OutOrStdout(), topics)
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "only list topics of this group")
	return cmd
}

func listTopics(w io.Writer, topics []catalog.Topic) error {
	current := ""
	for _, t := range topics {
		if t.Group != current {
			current = t.Group
			if _, err := fmt.Fprintln(w, groupStyle.Render(current)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  %s %s\n", KeyStyle.Render(fmt.Sprintf("%-15s", t.Name)), SubtitleStyle.Render(t.Summary)); err != nil {
			return err
		}
	}
	return nil
}

func newRunCommand(app *App) *cobra.Command {
	var (
		all      bool
		group    string
		parallel int
		notes    bool
		rounds   int
	)
	cmd := &cobra.Command{
		Use:   "run [topic...]",
		Short: "Run topics",
		Long: `Run the named topics, or every topic with --all.

Output is written in catalog order whatever --parallel is. The speed topic
always runs alone, after the others.`,
		ValidArgsFunction: completeTopics,
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, err := selectTopics(args, all, group)
			if err != nil {
				return err
			}

			cfg := app.Config
			if !cmd.Flags().Changed("parallel") {
				parallel = cfg.Run.Parallel
			}
			if !cmd.Flags().Changed("notes") {
				notes = cfg.UI.Notes
			}
			if !cmd.Flags().Changed("rounds") {
				rounds = cfg.Speed.Rounds
			}

			runner := &catalog.Runner{
				Parallel: parallel,
				Settings: demo.Settings{Rounds: rounds, MatchTimeout: cfg.Regex.MatchTimeout},
				Logger:   app.Logger,
				Header:   topicHeader,
			}
			if notes {
				runner.Notes = app.renderNotes
			}
			return runner.Run(cmd.Context(), cmd.OutOrStdout(), topics)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "run every topic")
	cmd.Flags().StringVarP(&group, "group", "g", "", "with --all, only run topics of this group")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "topics rendered at once (default from run.parallel)")
	cmd.Flags().BoolVar(&notes, "notes", false, "print each topic's notes first (default from ui.notes)")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "repetitions for the speed topic (default from speed.rounds)")
	return cmd
}

// selectTopics resolves the topics named on the command line, or the
// catalog (optionally one group) with --all.
func selectTopics(args []string, all bool, group string) ([]catalog.Topic, error) {
	switch {
	case all && len(args) > 0:
		return nil, errors.New("name topics or use --all, not both")
	case all:
		return catalog.ByGroup(group)
	case group != "":
		return nil, errors.New("--group needs --all")
	case len(args) == 0:
		return nil, errors.New("no topic given; see `concepts list`")
	}
	return catalog.Resolve(args)
}

func topicHeader(t catalog.Topic) string {
	return TitleStyle.Render("▸ "+t.Title) + " " + SubtitleStyle.Render("("+t.Name+")") + "\n"
}

func (a *App) renderNotes(t catalog.Topic) (string, error) {
	return catalog.RenderNotes(t, catalog.RenderOptions{
		Style:    a.Config.UI.Style,
		WordWrap: a.Config.UI.WordWrap,
	})
}

func newNotesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "notes <topic>",
		Short:             "Show a topic's tutorial notes",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTopics,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			if t.Notes == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render(t.Name+" has no notes"))
				return err
			}
			out, err := app.renderNotes(t)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func completeTopics(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, t := range catalog.All() {
		names = append(names, t.Name+"\t"+t.Summary)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
