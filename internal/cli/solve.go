package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	gerrors "github.com/matzehuels/galaxy/pkg/errors"
	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/grid"
	"github.com/matzehuels/galaxy/pkg/tooltip"
)

// =============================================================================
// solve
// =============================================================================

type solveOpts struct {
	width, height, gap float64
	json               bool
}

func (o *solveOpts) bind(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&o.width, "width", "W", 1280, "container width in pixels")
	cmd.Flags().Float64VarP(&o.height, "height", "H", 800, "container height in pixels")
	cmd.Flags().Float64Var(&o.gap, "gap", geometry.DefaultGap, "gap between tiles in pixels")
	cmd.Flags().BoolVar(&o.json, "json", false, "print JSON")
}

// engine validates the flags and commits a layout for n items.
func (o *solveOpts) engine(cmd *cobra.Command, arg string) (*grid.Engine, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "item count must be an integer, got %q", arg)
	}
	if err := gerrors.ValidateItemCount(n); err != nil {
		return nil, err
	}
	if err := gerrors.ValidateSize(o.width, o.height); err != nil {
		return nil, err
	}
	if err := gerrors.ValidateDimension("gap", o.gap); err != nil {
		return nil, err
	}

	opts := grid.DefaultOptions()
	opts.Gap = o.gap
	opts.Logger = loggerFromContext(cmd.Context())
	e := grid.New(opts)
	e.SetItemCount(cmd.Context(), n)
	e.Resize(cmd.Context(), geometry.Size{W: o.width, H: o.height})
	return e, nil
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts
	cmd := &cobra.Command{
		Use:   "solve <count>",
		Short: "Compute the tile grid for a number of profiles",
		Example: `  galaxy solve 500
  galaxy solve 10000 --width 1920 --height 1080 --gap 0 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.engine(cmd, args[0])
			if err != nil {
				return err
			}
			l := e.Layout()
			if opts.json {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"layout":      l,
					"items":       e.ItemCount(),
					"content":     l.ContentSize(),
					"waste":       geometry.Waste(l, opts.width, opts.height),
					"virtualized": e.Virtualized(),
				})
			}

			printSuccess("%d tiles in %.0f×%.0f", e.ItemCount(), opts.width, opts.height)
			printKeyValue("columns", strconv.Itoa(l.Columns))
			printKeyValue("rows", strconv.Itoa(l.Rows))
			printKeyValue("tile", tileSwatch(l.TileSize, l.Columns, 12))
			content := l.ContentSize()
			printKeyValue("content", fmt.Sprintf("%g×%g", content.W, content.H))
			printKeyValue("waste", fmt.Sprintf("%gpx", geometry.Waste(l, opts.width, opts.height)))
			if e.Virtualized() {
				printWarning("virtualized: only visible rows are rendered")
			}
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

// =============================================================================
// window
// =============================================================================

func (c *CLI) windowCommand() *cobra.Command {
	var (
		opts          solveOpts
		offset, viewH float64
	)
	cmd := &cobra.Command{
		Use:   "window <count>",
		Short: "Compute the range of tiles to render at a scroll offset",
		Example: `  galaxy window 50000 --offset 1200
  galaxy window 50000 --width 1000 --height 800 --viewport-height 600`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.engine(cmd, args[0])
			if err != nil {
				return err
			}
			if err := gerrors.ValidateDimension("offset", offset); err != nil {
				return err
			}
			if viewH == 0 {
				viewH = opts.height
			}
			if err := gerrors.ValidateDimension("viewport-height", viewH); err != nil {
				return err
			}

			w := e.Window(cmd.Context(), offset, viewH)
			if opts.json {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"window":      w,
					"layout":      e.Layout(),
					"virtualized": e.Virtualized(),
				})
			}

			printSuccess("render items %d to %d", w.Start, w.End)
			printKeyValue("items", strconv.Itoa(w.Len()))
			printKeyValue("virtualized", strconv.FormatBool(e.Virtualized()))
			printKeyValue("tile", fmt.Sprintf("%gpx", e.Layout().TileSize))
			return nil
		},
	}
	opts.bind(cmd)
	cmd.Flags().Float64Var(&offset, "offset", 0, "scroll offset in pixels")
	cmd.Flags().Float64Var(&viewH, "viewport-height", 0, "viewport height in pixels (default --height)")
	return cmd
}

// =============================================================================
// tooltip
// =============================================================================

func (c *CLI) tooltipCommand() *cobra.Command {
	var (
		x, y, boxW, boxH, viewW, viewH, margin float64
		asJSON                                 bool
	)
	cmd := &cobra.Command{
		Use:     "tooltip",
		Short:   "Place a tooltip box next to a point",
		Example: `  galaxy tooltip --x 1200 --y 40 --width 1280 --height 800`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, err := range []error{
				gerrors.ValidateSize(boxW, boxH),
				gerrors.ValidateSize(viewW, viewH),
				gerrors.ValidateDimension("margin", margin),
			} {
				if err != nil {
					return err
				}
			}

			box := geometry.Size{W: boxW, H: boxH}
			p := tooltip.Place(geometry.Point{X: x, Y: y}, box, geometry.Size{W: viewW, H: viewH}, margin)
			if asJSON {
				return printJSON(cmd.OutOrStdout(), p)
			}

			printSuccess("%s of (%g, %g)", p.Side, x, y)
			r := p.Rect(box)
			printKeyValue("box", fmt.Sprintf("%g,%g %g×%g", r.X, r.Y, r.W, r.H))
			if p.HasArrow() {
				printKeyValue("arrow", fmt.Sprintf("offset %.1f, %.1f°", p.ArrowOffset, p.ArrowRotation))
			} else {
				printDetail("no side fits; centered without arrow")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "target x")
	cmd.Flags().Float64Var(&y, "y", 0, "target y")
	cmd.Flags().Float64Var(&boxW, "box-width", 260, "tooltip width")
	cmd.Flags().Float64Var(&boxH, "box-height", 180, "tooltip height")
	cmd.Flags().Float64VarP(&viewW, "width", "W", 1280, "viewport width")
	cmd.Flags().Float64VarP(&viewH, "height", "H", 800, "viewport height")
	cmd.Flags().Float64Var(&margin, "margin", tooltip.DefaultMargin, "clearance to the viewport edges")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
