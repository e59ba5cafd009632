package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ncobase/feature/config"
	"github.com/ncobase/feature/ctxutil"
	"github.com/spf13/cobra"
)

// NewStartCommand creates the start command
func NewStartCommand() *cobra.Command {
	var (
		configFile string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start every configured feature",
		Long: `Start every configured feature in dependency order.

With --watch the process keeps running until interrupted and applies
feature log level changes from the config file as they are saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			ctx := cmd.Context()
			if watch {
				var stop context.CancelFunc
				ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
			}
			return start(ctx, cfg, watch, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and reload feature log levels on config changes")
	return cmd
}

// start starts every feature in cfg. With watch it then blocks until ctx is
// done, applying log level changes; reload errors are written to errOut.
func start(ctx context.Context, cfg *config.Config, watch bool, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, cleanup, err := initializeApp(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, _ = ctxutil.EnsureTraceID(ctx)
	if err := a.manager.StartAll(ctx); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	a.watch(cfg, func(err error) {
		fmt.Fprintf(errOut, "config reload: %v\n", err)
	})
	<-ctx.Done()
	return nil
}
