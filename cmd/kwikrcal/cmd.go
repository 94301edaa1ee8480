package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/model"
)

var errNoToken = errors.New("no credential: pass --token or set EVENT_SERVICE_TOKEN")

func SetupCommands(a *App) *cobra.Command {
	var asJSON bool

	// root command
	rootCmd := &cobra.Command{
		Use:          "kwikrcal",
		Short:        "Worker calendar from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.token == "" {
				return errNoToken
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.token, "token", a.token, "Bearer credential for the event service")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Output as JSON")

	monthCmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month grid with event counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := calendar.MonthInput{}
			if len(args) == 1 {
				year, month, err := parseYearMonth(args[0])
				if err != nil {
					return err
				}
				input = calendar.MonthInput{Year: year, Month: month, Nav: calendar.NavGoto}
			}

			out, err := a.uc.Month(cmd.Context(), a.scope(), input)
			if err != nil {
				return explain(err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Events)
			}
			printMonth(cmd.OutOrStdout(), out, a.loc)
			return nil
		},
	}

	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Today(cmd.Context(), a.scope())
			if err != nil {
				return explain(err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Events)
			}
			printDay(cmd.OutOrStdout(), out, a.loc)
			return nil
		},
	}

	dayCmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Show one day's schedule",
		Long:  "Show one day's schedule. The date is YYYY-MM-DD or a phrase such as tomorrow, next friday or in 3 days.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Day(cmd.Context(), a.scope(), calendar.DayInput{Date: strings.Join(args, " ")})
			if err != nil {
				return explain(err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Events)
			}
			printDay(cmd.OutOrStdout(), out, a.loc)
			return nil
		},
	}

	upcomingCmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show upcoming appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Upcoming(cmd.Context(), a.scope())
			if err != nil {
				return explain(err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Items)
			}
			printUpcoming(cmd.OutOrStdout(), out, a.loc)
			return nil
		},
	}

	var outPath string
	exportCmd := &cobra.Command{
		Use:   "export [YYYY-MM]",
		Short: "Write a month as an iCalendar file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := calendar.ExportInput{}
			if len(args) == 1 {
				year, month, err := parseYearMonth(args[0])
				if err != nil {
					return err
				}
				input = calendar.ExportInput{Year: year, Month: month}
			}

			out, err := a.uc.Export(cmd.Context(), a.scope(), input)
			if err != nil {
				return explain(err)
			}
			if outPath == "" {
				outPath = out.Filename
			}
			if outPath == "-" {
				_, err = cmd.OutOrStdout().Write(out.Data)
				return err
			}
			if err := os.WriteFile(outPath, out.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d events to %s\n", out.Count, outPath)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file, - for stdout (default kwikr-calendar-YYYY-MM.ics)")

	// add commands
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(upcomingCmd)
	rootCmd.AddCommand(exportCmd)

	return rootCmd
}

func (a *App) scope() model.Scope {
	return model.Scope{Token: a.token}
}

func parseYearMonth(s string) (int, int, error) {
	var year, month int
	if _, err := fmt.Sscanf(s, "%d-%d", &year, &month); err != nil || month < 1 || month > 12 || year < 1 || year > 9999 {
		return 0, 0, fmt.Errorf("invalid month %q: use YYYY-MM", s)
	}
	return year, month, nil
}

// explain turns use case errors into messages for a terminal user.
func explain(err error) error {
	switch {
	case errors.Is(err, calendar.ErrAuthExpired):
		return fmt.Errorf("your credential has expired, sign in again and refresh the token")
	case errors.Is(err, calendar.ErrFetchFailure):
		return fmt.Errorf("failed to load calendar events: %w", err)
	case errors.Is(err, calendar.ErrNothingToExport):
		return fmt.Errorf("no events in that month")
	default:
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
