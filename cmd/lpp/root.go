package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"lpp/internal/config"
)

// errFailed makes the command exit non-zero after its own output already
// explained why.
var errFailed = errors.New("failed")

var log = commonlog.GetLogger("lpp.cli")

type options struct {
	configPath string
	verbosity  int
	logFile    string
	noColor    bool
	jobs       int
	reference  bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "lpp",
		Short: "Front end tools for the lpp language",
		Long: `lpp lexes and parses lpp programs.

Settings are read from the nearest .lpp.yaml and can be overridden with
flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: nearest "+config.FileName+")")
	flags.IntVarP(&opts.verbosity, "verbose", "v", 0, "log verbosity (0-5)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newTokensCmd(),
		newParseCmd(),
		newCheckCmd(opts),
		newGrammarCmd(),
		newReplCmd(),
	)
	return root
}

// load reads the config file, applies flag overrides and sets up logging
// and color.
func (o *options) load(cmd *cobra.Command) error {
	path := o.configPath
	if path == "" {
		path = config.Find(".")
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			printError("loading config", err)
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Log.Verbosity = o.verbosity
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if flags.Changed("no-color") {
		enabled := !o.noColor
		cfg.Color = &enabled
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		cfg.Jobs = o.jobs
	}
	if flags.Lookup("reference") != nil && flags.Changed("reference") {
		cfg.Reference = o.reference
	}
	if err := cfg.Validate(); err != nil {
		printError("invalid settings", err)
		return err
	}

	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)

	if cfg.Color != nil {
		color.NoColor = !*cfg.Color
	}

	if path != "" {
		log.Infof("using config %s", path)
	}
	o.cfg = cfg
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s: %v\n", color.RedString("error"), msg, err)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
