package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	gerrors "github.com/matzehuels/galaxy/pkg/errors"
	"github.com/matzehuels/galaxy/pkg/eventbus"
	"github.com/matzehuels/galaxy/pkg/galaxy"
	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/viewport"
)

// spotlightCommand runs a headless view and prints the profiles it
// spotlights.
func (c *CLI) spotlightCommand() *cobra.Command {
	var (
		width, height float64
		rotations     int
		interval      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "spotlight",
		Short: "Watch the spotlight rotate over the configured store",
		Long: `Runs a galaxy view without a screen and prints every profile the spotlight
lands on, with its tile and tooltip placement.`,
		Example: `  galaxy spotlight --rotations 5 --interval 1s`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gerrors.ValidateSize(width, height); err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			b, err := openBackend(ctx, cfg, logger, false)
			if err != nil {
				return err
			}
			defer b.Close(context.Background())

			opts := viewOptions(cfg, logger)
			opts.DisableSpotlight = false
			if interval > 0 {
				opts.Spotlight.Interval = interval
				opts.Spotlight.InitialDelay = min(opts.Spotlight.InitialDelay, interval)
			}
			opts.Bus = eventbus.New[galaxy.Event]()
			events, unsubscribe := opts.Bus.Chan(16)
			defer unsubscribe()

			provider := viewport.NewStatic(geometry.Size{W: width, H: height})
			provider.Fill(geometry.Size{W: width, H: height})

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			view := galaxy.New(ctx, b.Store, provider, opts)
			defer view.Close()

			p := tea.NewProgram(view,
				tea.WithContext(ctx),
				tea.WithInput(nil),
				tea.WithOutput(io.Discard),
				tea.WithoutRenderer(),
				tea.WithoutSignalHandler(),
			)
			done := make(chan error, 1)
			go func() {
				_, err := p.Run()
				done <- err
			}()

			printInfo("Watching %d rotations (every %s)", rotations, opts.Spotlight.Interval)
			var rows [][]string
			for len(rows) < rotations {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case err := <-done:
					if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
						return err
					}
					return nil
				case e := <-events:
					if e.Type != galaxy.EventSpotlight || e.Spotlight.Detail == nil {
						continue
					}
					row := spotlightRow(len(rows)+1, e.Spotlight)
					rows = append(rows, row)
					printSpotlight(e.Spotlight.Detail.Name, e.Spotlight.Detail.Location, e.Spotlight.Position)
				}
			}
			cancel()
			<-done

			printNewline()
			fmt.Println(spotlightTable(rows))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&width, "width", "W", 1280, "viewport width in pixels")
	cmd.Flags().Float64VarP(&height, "height", "H", 800, "viewport height in pixels")
	cmd.Flags().IntVarP(&rotations, "rotations", "n", 3, "number of spotlights to watch")
	cmd.Flags().DurationVar(&interval, "interval", 0, "rotation interval (default from config)")
	return cmd
}

func spotlightRow(n int, s *galaxy.SpotlightState) []string {
	return []string{
		fmt.Sprint(n),
		fmt.Sprint(s.Index),
		s.Detail.Name,
		s.Detail.Location,
		fmt.Sprintf("%.0f,%.0f", s.Position.X, s.Position.Y),
		sideLabel(s.Tooltip),
	}
}

func spotlightTable(rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Tile", "Name", "Location", "Position", "Tooltip").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2:
				return StyleSpotlight
			}
			return StyleValue
		}).
		String()
}
