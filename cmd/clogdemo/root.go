package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/handler"
	"github.com/Philipp01105/clog/handler/consolehandler"
	"github.com/Philipp01105/clog/handler/filehandler"
	"github.com/Philipp01105/clog/handler/logrushandler"
	"github.com/Philipp01105/clog/handler/multihandler"
	"github.com/Philipp01105/clog/handler/zaphandler"
	"github.com/Philipp01105/clog/handler/zerologhandler"
	"github.com/Philipp01105/clog/internal/config"
	"github.com/Philipp01105/clog/logger"
)

type options struct {
	configPath  string
	minLevel    string
	filterLevel string
	disableTags []string
	noColor     bool
	backend     string
	file        string
	stats       bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "clogdemo",
		Short:         "Log a scripted series of messages through clog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), opts)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts.stats)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.minLevel, "min-level", "", "runtime minimum level of the context")
	flags.StringVar(&opts.filterLevel, "filter-level", "", "initial minimum level of the sink filter")
	flags.StringSliceVar(&opts.disableTags, "disable-tag", nil, "tags the filter rejects from the start")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored console output")
	flags.StringVar(&opts.backend, "backend", "", "sink backend: console, zap, zerolog or logrus")
	flags.StringVar(&opts.file, "file", "", "also append plain lines to this file")
	flags.BoolVar(&opts.stats, "stats", false, "print delivery statistics to stderr")

	return cmd
}

// loadConfig reads the config file, if any, and applies the flags that
// were set on top of it.
func loadConfig(flags *pflag.FlagSet, opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}

	if flags.Changed("min-level") {
		cfg.MinLevel = opts.minLevel
	}
	if flags.Changed("filter-level") {
		cfg.FilterLevel = opts.filterLevel
	}
	if flags.Changed("backend") {
		cfg.Backend = opts.backend
	}
	if flags.Changed("file") {
		cfg.File.Path = opts.file
	}
	if opts.noColor {
		color := false
		cfg.Color = &color
	}
	if len(opts.disableTags) > 0 && cfg.Tags == nil {
		cfg.Tags = make(map[string]bool, len(opts.disableTags))
	}
	for _, name := range opts.disableTags {
		cfg.Tags[name] = false
	}

	return cfg, cfg.Validate()
}

func run(stdout, stderr io.Writer, cfg config.Config, printStats bool) error {
	h, err := newHandler(stdout, cfg)
	if err != nil {
		return err
	}

	filter := handler.NewLevelTagFilter(cfg.Filter())
	for _, name := range tagNames {
		filter.EnableTag(name, cfg.TagEnabled(name))
	}
	stats := handler.NewStats()

	ctx := logger.NewBuilder().
		WithAdapters(handler.Counted(handler.NewAdapter(h, filter.Filter), stats)).
		WithTags(tagNames).
		WithBufferSize(cfg.BufferSize).
		WithMinLevel(cfg.Level()).
		Build()

	runDemo(ctx, filter)

	if printStats {
		printSnapshot(stderr, stats.GetSnapshot())
	}
	return h.Close()
}

// newHandler builds the backend sink, teeing into a file when configured
func newHandler(w io.Writer, cfg config.Config) (handler.Handler, error) {
	var h handler.Handler

	switch cfg.Backend {
	case config.BackendZap:
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		// hide Sync: stdout cannot be synced on most terminals
		ws := zapcore.AddSync(struct{ io.Writer }{w})
		h = zaphandler.New(zap.New(zapcore.NewCore(enc, ws, zapcore.DebugLevel)))
	case config.BackendZerolog:
		h = zerologhandler.New(zerolog.New(w).Level(zerolog.TraceLevel).With().Timestamp().Logger())
	case config.BackendLogrus:
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.TraceLevel)
		h = logrushandler.New(l)
	default:
		h = consolehandler.New(consolehandler.Config{
			Writer:     w,
			BufferSize: cfg.BufferSize,
			Color:      colorMode(cfg.Color),
		})
	}

	if cfg.File.Path == "" {
		return h, nil
	}
	fh, err := filehandler.New(filehandler.Config{
		Filename:   cfg.File.Path,
		BufferSize: cfg.BufferSize,
		MaxSize:    cfg.File.MaxSize,
		MaxBackups: cfg.File.MaxBackups,
	})
	if err != nil {
		return nil, err
	}
	return multihandler.NewMultiHandler(h, fh), nil
}

func colorMode(color *bool) consolehandler.ColorMode {
	switch {
	case color == nil:
		return consolehandler.ColorAuto
	case *color:
		return consolehandler.ColorAlways
	default:
		return consolehandler.ColorNever
	}
}

func printSnapshot(w io.Writer, snap handler.Snapshot) {
	for l := core.Trace; l <= core.Unknown; l++ {
		d, f := snap.Delivered[l], snap.Filtered[l]
		if d == 0 && f == 0 {
			continue
		}
		fmt.Fprintf(w, "%s delivered=%d filtered=%d\n", l, d, f)
	}
	fmt.Fprintf(w, "failed=%d\n", snap.Failed)
}
