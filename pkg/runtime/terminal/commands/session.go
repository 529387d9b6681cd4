package commands

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/ecodent-simulator/pkg/adapters"
	"github.com/de-tools/ecodent-simulator/pkg/services/session"
	"github.com/spf13/cobra"
)

const quitCommand = "quit"

type SessionCmd struct {
	format string
	rt     *Runtime
}

// NewSessionCmd reads "<event> <value>" lines from stdin and prints the
// recomputed scenario after every accepted edit.
func NewSessionCmd(rt *Runtime) *cobra.Command {
	sc := &SessionCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Edit a scenario interactively, one event per line",
		Long: "Reads one event per line as \"<event> <value>\", for example\n" +
			"\"select_region paris\" or \"set_cases_per_month 30\".\n" +
			"Events: " + strings.Join(session.EventTypes(), ", ") + ".\n" +
			"Type \"quit\" to stop.",
		RunE: sc.run,
	}

	cmd.Flags().StringVarP(&sc.format, "format", "o", FormatText, "Output format: table or text")

	return cmd
}

func (sc *SessionCmd) run(cmd *cobra.Command, _ []string) error {
	reporter, ok := sc.rt.Reporters[sc.format]
	if !ok {
		return fmt.Errorf("unsupported format %q, expected one of: table, text", sc.format)
	}

	s, err := session.New(sc.rt.Calculator, sc.rt.Presets)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	show := func() error {
		report := adapters.BuildReport(s.Input(), s.Result(), sc.rt.Formatter, sc.rt.Calculator.Economics(), time.Now().UTC())
		return reporter.Handle(report)
	}
	if err := show(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == quitCommand {
			return nil
		}

		name, value, _ := strings.Cut(line, " ")
		ev := session.Event{Type: name, Value: strings.TrimSpace(value)}
		if _, err := s.Apply(ev); err != nil {
			sc.rt.Logger.Debug().Err(err).Str("event", name).Msg("event rejected")
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if err := show(); err != nil {
			return err
		}
	}
	return scanner.Err()
}
