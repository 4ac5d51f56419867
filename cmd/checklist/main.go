package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/adanyl0v/event-planner/internal/models"
	"github.com/adanyl0v/event-planner/internal/planner"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type checklistFlags struct {
	eventDate string
	eventType string
	completed []string
	now       string
	timezone  string
	output    string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var flags checklistFlags
	cmd := &cobra.Command{
		Use:          "checklist",
		Short:        "Print the planning checklist of an event",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			checklist, err := evaluate(flags)
			if err != nil {
				return err
			}
			return render(out, flags.output, checklist)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.Flags().StringVar(&flags.eventDate, "event-date", "", "Event date, YYYY-MM-DD")
	cmd.Flags().StringVar(&flags.eventType, "event-type", models.EventTypeWedding, "Event type: wedding, party, corporate or other")
	cmd.Flags().StringSliceVar(&flags.completed, "completed", nil, "Comma separated ids of completed tasks")
	cmd.Flags().StringVar(&flags.now, "now", "", "Evaluate as of this RFC3339 instant instead of the current time")
	cmd.Flags().StringVar(&flags.timezone, "timezone", "Europe/London", "IANA timezone the event date is in")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", outputText, "Output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("event-date")

	cmd.AddCommand(catalogCmd(out, &flags.output))
	return cmd
}

func catalogCmd(out io.Writer, output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print every task the checklist is built from",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			defs := planner.Catalog()
			switch *output {
			case outputText:
				for _, def := range defs {
					fmt.Fprintf(out, "%-22s %4d  %-8s %s\n",
						def.ID, def.DeadlineOffsetDays, def.Category, def.Title)
				}
				return nil
			default:
				return encode(out, *output, defs)
			}
		},
	}
}

func evaluate(flags checklistFlags) (planner.Checklist, error) {
	if !models.IsValidEventType(flags.eventType) {
		return planner.Checklist{}, fmt.Errorf("unknown event type %q", flags.eventType)
	}

	loc, err := time.LoadLocation(flags.timezone)
	if err != nil {
		return planner.Checklist{}, fmt.Errorf("failed to load timezone: %w", err)
	}

	eventDate, err := planner.ParseEventDate(flags.eventDate, loc)
	if err != nil {
		return planner.Checklist{}, err
	}

	now := time.Now()
	if flags.now != "" {
		now, err = time.Parse(time.RFC3339, flags.now)
		if err != nil {
			return planner.Checklist{}, fmt.Errorf("--now must be RFC3339: %w", err)
		}
	}

	for _, id := range flags.completed {
		err = planner.Toggle{TaskID: id}.Validate()
		if err != nil {
			return planner.Checklist{}, err
		}
	}

	return planner.Evaluate(planner.Input{
		EventDate:        eventDate,
		EventType:        flags.eventType,
		CompletedTaskIDs: flags.completed,
	}, now), nil
}

func render(out io.Writer, output string, checklist planner.Checklist) error {
	if output != outputText {
		return encode(out, output, checklist)
	}

	fmt.Fprintln(out, headline(checklist))
	sections := []struct {
		title string
		tasks []planner.RuntimeTask
	}{
		{"Overdue", checklist.Groups.Overdue},
		{"Urgent", checklist.Groups.Urgent},
		{"Upcoming", checklist.Groups.Upcoming},
		{"Completed", checklist.Groups.Completed},
	}
	for _, section := range sections {
		if len(section.tasks) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s (%d)\n", strings.ToUpper(section.title), len(section.tasks))
		for _, task := range section.tasks {
			mark := " "
			if task.Completed {
				mark = "x"
			}
			fmt.Fprintf(out, "  [%s] %-40s %s\n", mark, task.Title, task.DeadlineText)
		}
	}
	return nil
}

func headline(checklist planner.Checklist) string {
	switch checklist.Phase {
	case planner.PhaseEventDay:
		return fmt.Sprintf("Your %s is today!", checklist.EventType)
	case planner.PhaseEventPassed:
		return fmt.Sprintf("Your %s was %s ago",
			checklist.EventType, planner.Pluralize(-checklist.DaysUntilEvent, "day"))
	default:
		return fmt.Sprintf("%s (%s) until your %s",
			planner.Pluralize(checklist.DaysUntilEvent, "day"),
			planner.Pluralize(checklist.MonthsUntilEvent, "month"),
			checklist.EventType)
	}
}

func encode(out io.Writer, output string, v any) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
