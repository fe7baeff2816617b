package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"bowling/internal/configuration"
	"bowling/internal/frame"
	"bowling/internal/score"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newScoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score [file]",
		Short: "Score a game",
		Long: `Reads a game as a YAML or JSON list of frames from file, or stdin when
no file is given, and prints its score sheet.

Examples:
  bowling score game.yaml
  bowling score --format json < game.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			source := "stdin"
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in, source = file, args[0]
			}

			game, err := readGame(in)
			if err != nil {
				return fmt.Errorf("unable to read game from %s: %w", source, err)
			}

			card, err := a.calculator.Card(game)
			if err != nil {
				slog.Warn("Game rejected", "source", source, "error", err)
				return err
			}
			slog.Info("Game scored", "source", source, "frames", len(game), "complete", card.Complete)

			return writeCard(cmd.OutOrStdout(), card, a.config.Output.Format)
		},
	}
}

// readGame decodes a list of frames. JSON input is accepted as YAML flow syntax.
// Blank input is an empty game.
func readGame(r io.Reader) (frame.Game, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	game := frame.Game{}
	if err := yaml.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	if game == nil {
		game = frame.Game{}
	}
	return game, nil
}

func writeCard(w io.Writer, card *score.Card, format string) error {
	if format == configuration.OutputFormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(card)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FRAME\tBALLS\tSCORE\tTOTAL")
	for i, f := range card.Frames {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, formatBalls(f), card.Scores[i], card.Totals[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	status := "in progress"
	if card.Complete {
		status = "complete"
	}
	_, err := fmt.Fprintf(w, "Total: %s (%s)\n", card.Total, status)
	return err
}

func formatBalls(f frame.Frame) string {
	balls := make([]string, len(f))
	for i, pins := range f {
		balls[i] = strconv.Itoa(pins)
	}
	return strings.Join(balls, " ")
}
