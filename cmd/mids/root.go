package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"mids/internal/engine"
	"mids/internal/format"
	"mids/internal/logging"
	"mids/internal/model"
	"mids/internal/record"
	"mids/internal/sssom"
)

// version is set at build time via -ldflags.
var version = "dev"

// envSSSOMDir overrides the embedded mapping files when set.
const envSSSOMDir = "MIDS_SSSOM_DIR"

type options struct {
	discipline string
	sssomDir   string
	logLevel   string
	logFormat  string
	format     string
	timeout    time.Duration
	gbifAPI    string

	mode format.Mode
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "mids",
		Short: "Check records against the MIDS levels",
		Long: "mids compiles the SSSOM mapping of a discipline into MIDS elements\n" +
			"and reports which levels a record reaches.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.discipline, "discipline", model.Biology.String(), "Discipline whose mapping is used")
	f.StringVar(&opts.sssomDir, "sssom-dir", os.Getenv(envSSSOMDir), "Directory with SSSOM mapping files (default: embedded, env "+envSSSOMDir+")")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")
	f.StringVar(&opts.format, "format", "ascii", "Table format: ascii or markdown")
	f.DurationVar(&opts.timeout, "timeout", record.DefaultTimeout, "Timeout for fetching a record")
	f.StringVar(&opts.gbifAPI, "gbif-api", record.DefaultGBIFBaseURL, "GBIF API base URL")

	root.AddCommand(newReportCmds(opts)...)
	root.AddCommand(newCheckCmds(opts)...)
	root.AddCommand(newElementsCmd(opts))
	root.AddCommand(newDisciplinesCmd(opts))

	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}

	logging.Init(level, o.logFormat, cmd.ErrOrStderr())

	o.mode, err = format.ParseMode(o.format)

	return err
}

// mappingFS returns the directory given by --sssom-dir, or the embedded
// mapping files.
func (o *options) mappingFS() fs.FS {
	if o.sssomDir != "" {
		return sssom.Dir(o.sssomDir)
	}

	return sssom.Embedded()
}

// resolveDiscipline accepts the shipped disciplines, plus any discipline
// that has mapping files in --sssom-dir.
func (o *options) resolveDiscipline(fsys fs.FS) (model.Discipline, error) {
	if d, err := model.ParseDiscipline(o.discipline); err == nil || o.sssomDir == "" {
		return d, err
	}

	available, err := sssom.Available(fsys)
	if err != nil {
		return "", fmt.Errorf("failed to list mappings in %s: %w", o.sssomDir, err)
	}

	d := model.Discipline(o.discipline)
	if !slices.Contains(available, d) {
		return "", fmt.Errorf("%w %q in %s (available: %v)", model.ErrUnknownDiscipline, o.discipline, o.sssomDir, available)
	}

	return d, nil
}

func (o *options) engine() (*engine.MIDS, error) {
	fsys := o.mappingFS()

	d, err := o.resolveDiscipline(fsys)
	if err != nil {
		return nil, err
	}

	return engine.Init(d, fsys, logging.New("engine"))
}

func (o *options) client() *record.Client {
	return record.NewClient(
		record.WithGBIFBaseURL(o.gbifAPI),
		record.WithLogger(logging.New("record")),
	)
}

// source fetches a record for a command argument.
type source func(ctx context.Context, c *record.Client, arg string) (model.Record, error)

func (o *options) fetch(cmd *cobra.Command, src source, arg string) (model.Record, error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	r, err := src(ctx, o.client(), arg)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded record", slog.String("source", arg), slog.Int("fields", len(r)))

	return r, nil
}
