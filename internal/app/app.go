package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/five82/bgcheck/internal/alert"
	"github.com/five82/bgcheck/internal/config"
	"github.com/five82/bgcheck/internal/dexcom"
	"github.com/five82/bgcheck/internal/glucose"
	"github.com/five82/bgcheck/internal/logging"
	"github.com/five82/bgcheck/internal/metrics"
	"github.com/five82/bgcheck/internal/monitor"
	"github.com/five82/bgcheck/internal/source"
	"github.com/five82/bgcheck/internal/ui"
)

// Options configure the bgcheck application.
type Options struct {
	ConfigPath string    // empty uses $BGCHECK_CONFIG or ~/.config/bgcheck/config.toml
	PrefsPath  string    // empty uses ~/.config/bgcheck/prefs.toml
	Simulated  bool      // replay the built-in sequence every 10s
	Stdout     io.Writer // closing report; nil uses os.Stdout
	Stderr     io.Writer // startup warnings; nil uses os.Stderr
}

// Run boots the gauge until the user quits, the context is cancelled or the
// session fails. The final readings are reported either way.
func Run(ctx context.Context, opts Options) error {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Simulated {
		cfg.Interval = config.SimulatedInterval
	}

	logger, closeLog, logErr := logging.NewOrNop(logging.Options{
		Path:   cfg.LogPath,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	defer func() { _ = closeLog() }()
	if logErr != nil {
		fmt.Fprintf(stderr, "bgcheck: logging disabled: %v\n", logErr)
	}

	src, label, err := newSource(cfg, opts.Simulated, logger)
	if err != nil {
		return err
	}

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		if err := m.Serve(ctx, cfg.MetricsAddr, logger); err != nil {
			return fmt.Errorf("start metrics listener: %w", err)
		}
	}

	session := monitor.New(monitor.Options{
		Source:           src,
		Player:           newPlayer(cfg, stderr, logger),
		Interval:         cfg.Interval,
		HistorySize:      cfg.HistorySize,
		DroppedThreshold: cfg.DroppedThreshold,
		Logger:           logger,
		Metrics:          m,
	})

	runErr := ui.Run(ui.Options{
		Context:   ctx,
		Session:   session,
		Logger:    logger,
		Label:     label,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath,
	})

	report(stdout, logger, session.Readings())
	return runErr
}

// newSource picks the simulated sequence or a live Dexcom Share client.
func newSource(cfg config.Config, simulated bool, logger *zap.Logger) (source.Source, string, error) {
	if simulated {
		logger.Info("using simulated readings", zap.Int("count", len(source.SimulatedSequence)))
		return source.NewSimulated(), "simulated", nil
	}

	creds, err := config.LoadCredentials(cfg.EnvFile)
	if err != nil {
		return nil, "", err
	}
	client, err := dexcom.NewClient(dexcom.Options{
		Account:  creds.Account,
		Password: creds.Password,
		Region:   cfg.Region,
		Logger:   logger.Named("dexcom"),
	})
	if err != nil {
		return nil, "", fmt.Errorf("init dexcom client: %w", err)
	}
	return client, "dexcom " + cfg.Region, nil
}

// newPlayer always rings the terminal bell and adds the external sound player
// when one is configured and installed.
func newPlayer(cfg config.Config, bell io.Writer, logger *zap.Logger) alert.Player {
	players := alert.Multi{alert.Bell{W: bell}}
	if cfg.SoundPlayer == "" {
		return players
	}
	cmd, err := alert.NewCommand(cfg.SoundPlayer, cfg.CriticalSound, cfg.StartupSound, logger)
	if err != nil {
		logger.Warn("sound player unavailable, using terminal bell", zap.Error(err))
		return players
	}
	return append(players, cmd)
}

// report prints the closing message and the final buffer contents.
func report(w io.Writer, logger *zap.Logger, readings []glucose.Reading) {
	list := glucose.FormatList(readings)
	fmt.Fprintln(w, "Closing program")
	fmt.Fprintln(w, list)
	logger.Info("closing program", zap.String("readings", list))
}
