package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/username/range-picker/internal/calendar"
	"github.com/username/range-picker/internal/daterange"
	"github.com/username/range-picker/internal/selection"
	"github.com/username/range-picker/internal/tui"
	"github.com/username/range-picker/pkg/dateutil"
	"go.uber.org/zap"
)

func gridCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the calendar grid of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := calendar.ViewOf(now())
			if year != 0 {
				view.Year = year
			}
			if month != 0 {
				if month < 1 || month > 12 {
					return fmt.Errorf("month must be between 1 and 12, got %d", month)
				}
				view.Month = month - 1
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			logger.Debug("Printing grid", zap.Stringer("view", view))
			return w.Month(view.Grid())
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")

	return cmd
}

func weekendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekends START END",
		Short: "List the weekends between two dates (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ParseKey(args[0])
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
			end, err := dateutil.ParseKey(args[1])
			if err != nil {
				return fmt.Errorf("invalid end date: %w", err)
			}
			if end < start {
				return fmt.Errorf("end date %s is before start date %s", end, start)
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			return w.Result(daterange.NewResult(start, end))
		},
	}
}

func lastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last [N]",
		Short: "Select the last N days up to today",
		Long:  "Select the last N days up to today. Without N, choose one of the configured presets.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var days int
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid number of days %q: %w", args[0], err)
				}
				days = n
			} else {
				n, err := promptPreset(cfg.Picker.GetPresets())
				if err != nil {
					return err
				}
				days = n
			}

			result, err := daterange.LastNDays(now(), days)
			if err != nil {
				return fmt.Errorf("failed to build range: %w", err)
			}
			logger.Info("Preset applied",
				zap.Int("days", days),
				zap.String("start", result.Range.Start.String()),
				zap.String("end", result.Range.End.String()))

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			return w.Result(result)
		},
	}
}

func promptPreset(presets []daterange.Preset) (int, error) {
	if len(presets) == 0 {
		return 0, errors.New("no presets configured")
	}

	options := make([]huh.Option[int], len(presets))
	for i, p := range presets {
		options[i] = huh.NewOption(p.Label, p.Days)
	}

	var days int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select a range").
				Options(options...).
				Value(&days),
		),
	).WithTheme(huh.ThemeDracula())
	if os.Getenv("ACCESSIBLE") != "" {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("failed to get selection: %w", err)
	}
	return days, nil
}

func selectCmd() *cobra.Command {
	var viewFlag string

	cmd := &cobra.Command{
		Use:   "select DATE...",
		Short: "Replay clicks on the calendar and print every finished range",
		Long: `Replay clicks on the calendar and print every finished range.

Each argument is either a date (YYYY-MM-DD) to click or a month (YYYY-MM)
to switch to. Switching to another month clears the selection. Only
weekdays of the month on screen can be clicked.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := cfg.Picker.GetStartView(now())
			if viewFlag != "" {
				v, err := calendar.ParseView(viewFlag)
				if err != nil {
					return fmt.Errorf("invalid --view: %w", err)
				}
				view = v
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}

			var writeErr error
			selector := selection.NewSelector(view, func(result daterange.Result) {
				if writeErr == nil {
					writeErr = w.Result(result)
				}
			}, logger)

			for _, arg := range args {
				if v, err := calendar.ParseView(arg); err == nil {
					selector.SetView(v)
					continue
				}

				date, err := dateutil.ParseKey(arg)
				if err != nil {
					return fmt.Errorf("invalid click %q: %w", arg, err)
				}
				picker := selector.Picker()
				cell, ok := picker.Grid().Find(date)
				if !ok {
					return fmt.Errorf("date %s is not in %s", date, picker.View)
				}
				if !cell.IsWeekday {
					return fmt.Errorf("weekends cannot be picked: %s", date)
				}
				selector.Click(date)
			}

			if writeErr != nil {
				return fmt.Errorf("failed to write result: %w", writeErr)
			}
			if phase := selector.Picker().State.Phase(); phase != selection.PhaseComplete {
				logger.Debug("Selection left unfinished", zap.Stringer("phase", phase))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&viewFlag, "view", "", "Month to start on, YYYY-MM (default: picker.start_view or current)")

	return cmd
}

func pickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick a range interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := tui.NewModel(tui.Options{
				View:     cfg.Picker.GetStartView(now()),
				Presets:  cfg.Picker.GetPresets(),
				YearSpan: cfg.Picker.YearSpan,
				Now:      now,
				Logger:   logger,
			})

			// The picker draws on stderr so stdout only carries the result.
			program := tea.NewProgram(model,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()))
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("picker failed: %w", err)
			}

			m, ok := final.(tui.Model)
			if !ok || m.Result() == nil {
				logger.Debug("Picker closed without a selection")
				return nil
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			return w.Result(*m.Result())
		},
	}
}
