package cli

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/galaxy/pkg/config"
	gerrors "github.com/matzehuels/galaxy/pkg/errors"
	"github.com/matzehuels/galaxy/pkg/profile"
)

type seedOpts struct {
	batch   int
	workers int
	seed    uint64
}

func (c *CLI) seedCommand() *cobra.Command {
	var opts seedOpts
	cmd := &cobra.Command{
		Use:   "seed <count>",
		Short: "Write synthetic profiles into MongoDB",
		Long: `Generates deterministic synthetic profiles and upserts them into the users
collection of the configured MongoDB database. Seeding the same count and seed
twice leaves the collection unchanged.`,
		Example: `  GALAXY_MONGO_URI=mongodb://localhost:27017 galaxy seed 10000`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return gerrors.New(gerrors.ErrCodeInvalidInput, "count must be an integer, got %q", args[0])
			}
			if err := gerrors.ValidateItemCount(n); err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Store.Driver != config.StoreMongo {
				return gerrors.New(gerrors.ErrCodeInvalidConfig, "seed needs the mongo store; set %s or store.mongo_uri", config.EnvMongoURI)
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			b, err := openBackend(ctx, cfg, logger, true)
			if err != nil {
				return err
			}
			defer b.Close(context.Background())

			if err := b.Mongo.EnsureIndexes(ctx); err != nil {
				return err
			}
			return seed(ctx, b.Mongo, n, opts)
		},
	}
	cmd.Flags().IntVar(&opts.batch, "batch", 1000, "profiles per write")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "concurrent writes")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "generator seed")
	return cmd
}

// seed writes n synthetic profiles to w in concurrent batches.
func seed(ctx context.Context, w profile.Writer, n int, opts seedOpts) error {
	prog := newProgress(loggerFromContext(ctx))
	batch := max(opts.batch, 1)
	start := time.Now().UTC().Add(-time.Duration(n) * time.Minute)
	details := profile.Synthetic(n, opts.seed, start)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Seeding 0/%d", n))
	spinner.Start()

	var written atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.workers, 1))
	for i := 0; i < n; i += batch {
		chunk := details[i:min(i+batch, n)]
		g.Go(func() error {
			if err := w.Insert(gctx, chunk); err != nil {
				return err
			}
			spinner.SetMessage(fmt.Sprintf("Seeding %d/%d", written.Add(int64(len(chunk))), n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		spinner.StopWithError(fmt.Sprintf("Seeded %d of %d profiles", written.Load(), n))
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Seeded %d profiles", n))
	prog.done(fmt.Sprintf("Seeded %d profiles", n))
	return nil
}
