package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/galaxy/pkg/galaxy"
	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/profile"
	"github.com/matzehuels/galaxy/pkg/viewport"
)

// previewStep is how many profiles +/- add or remove.
const previewStep = 100

func (c *CLI) previewCommand() *cobra.Command {
	var profiles int
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the galaxy in the terminal",
		Long: `Renders the galaxy full-screen, one character per terminal cell, with the
spotlight and its tooltip. With the memory store, + and - grow and shrink the
galaxy to watch the layout adapt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("profiles") {
				cfg.Store.Synthetic = profiles
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			b, err := openBackend(ctx, cfg, logger, false)
			if err != nil {
				return err
			}
			defer b.Close(context.Background())

			// log lines would tear the alt screen
			m := newPreviewModel(ctx, b, viewOptions(cfg, newLogger(io.Discard, LogInfo)), cfg.Store.Seed)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
			_, err = p.Run()
			m.view.Close()
			return err
		},
	}
	cmd.Flags().IntVarP(&profiles, "profiles", "n", 500, "synthetic profiles for the memory store")
	return cmd
}

// =============================================================================
// previewModel - host model around galaxy.View
// =============================================================================

type previewModel struct {
	view     *galaxy.View
	provider *viewport.Static
	memory   *profile.MemoryStore
	cell     geometry.Size

	cols, rows int
	seed       uint64
	batches    int
}

func newPreviewModel(ctx context.Context, b *backend, opts galaxy.Options, seed uint64) *previewModel {
	provider := viewport.NewStatic(geometry.Size{})
	if opts.Cell.Empty() {
		opts.Cell = galaxy.DefaultCell
	}
	// tooltip sized in cells
	opts.Tooltip = geometry.Size{W: 34 * opts.Cell.W, H: 8 * opts.Cell.H}
	opts.TooltipMargin = opts.Cell.W
	return &previewModel{
		view:     galaxy.New(ctx, b.Store, provider, opts),
		provider: provider,
		memory:   b.Memory,
		cell:     opts.Cell,
		seed:     seed,
	}
}

func (m *previewModel) Init() tea.Cmd {
	return m.view.Init()
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, max(msg.Height-1, 0)
		m.provider.Fill(geometry.Size{W: float64(m.cols) * m.cell.W, H: float64(m.rows) * m.cell.H})
		return m.forward(galaxy.ResizeMsg{})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.view.Close()
			return m, tea.Quit
		case "j", "down":
			return m.scroll(m.cell.H)
		case "k", "up":
			return m.scroll(-m.cell.H)
		case "f", "pgdown":
			return m.scroll(float64(m.rows) * m.cell.H)
		case "b", "pgup":
			return m.scroll(-float64(m.rows) * m.cell.H)
		case "+", "=":
			return m.grow()
		case "-":
			return m.shrink()
		case "r":
			return m.forward(galaxy.ReloadMsg{})
		}
		return m, nil
	}
	return m.forward(msg)
}

func (m *previewModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.view.Update(msg)
	return m, cmd
}

// scroll moves the viewport by delta pixels within the content height.
func (m *previewModel) scroll(delta float64) (tea.Model, tea.Cmd) {
	content := m.view.Layout().ContentSize().H
	limit := max(content-float64(m.rows)*m.cell.H, 0)
	offset := min(max(m.provider.ScrollOffset()+delta, 0), limit)
	if offset == m.provider.ScrollOffset() {
		return m, nil
	}
	m.provider.SetScroll(offset)
	return m.forward(galaxy.ScrollMsg{})
}

func (m *previewModel) grow() (tea.Model, tea.Cmd) {
	if m.memory == nil {
		return m, nil
	}
	m.batches++
	start := time.Now().UTC()
	batch := profile.Synthetic(previewStep, m.seed+uint64(m.batches), start)
	if err := m.memory.Insert(context.Background(), batch); err != nil {
		return m, nil
	}
	return m.forward(galaxy.ReloadMsg{})
}

func (m *previewModel) shrink() (tea.Model, tea.Cmd) {
	if m.memory == nil {
		return m, nil
	}
	n, _ := m.memory.Count(context.Background())
	m.memory.Truncate(max(n-previewStep, 0))
	return m.forward(galaxy.ReloadMsg{})
}

func (m *previewModel) View() string {
	if m.cols == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.view.View())
	b.WriteByte('\n')
	b.WriteString(m.status())
	return b.String()
}

func (m *previewModel) status() string {
	l := m.view.Layout()
	w := m.view.Window()
	parts := []string{
		fmt.Sprintf("%d profiles", len(m.view.Items())),
		fmt.Sprintf("%d×%d", l.Columns, l.Rows),
		fmt.Sprintf("tile %gpx", l.TileSize),
		fmt.Sprintf("rendering %d", w.Len()),
	}
	if sp := m.view.Spotlight(); sp.Active() && sp.Detail != nil {
		parts = append(parts, iconStar+" "+sp.Detail.Name)
	}
	keys := keyHints("j/k", "scroll", "+/-", "profiles", "r", "reload", "q", "quit")
	return styleStatus.Render(strings.Join(parts, " · ")) + "  " + keys
}
