// Command mwmap is a CLI tool for classifying and querying CodeWarrior
// linker map files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/alecthomas/kong"

	"github.com/mwtools/mwmap"
	"github.com/mwtools/mwmap/mapfile"
)

// Exit codes.
const (
	exitOK      = 0 // success
	exitError   = 1 // user error or processing failure
	exitFailure = 2 // one or more lines did not classify
)

const defaultConfig = "~/.config/mwmap/config.yaml"

const description = `Classify and query CodeWarrior linker map files.

Examples:
  mwmap parse main.MAP
  mwmap dump --kind SectionSymbol --filter 'size > 0x100' main.MAP
  mwmap sizes build/*.MAP
  mwmap find main.MAP CMemory
  mwmap refs --callers main.MAP memset
  mwmap explain '  UNUSED   000024 ........    unused_func main.o '`

// globals holds the flags shared by every command.
type globals struct {
	Config     kong.ConfigFlag `help:"Configuration file (YAML)." placeholder:"FILE" type:"path"`
	LogLevel   string          `default:"warn" enum:"trace,debug,info,warn,error" help:"Log level (${enum})."`
	LogFormat  string          `default:"text" enum:"text,json" help:"Log format (${enum})."`
	Verbose    int             `help:"Increase log verbosity (-v debug, -vv trace)." short:"v" type:"counter"`
	Workers    int             `help:"Goroutines classifying lines (0 means one per CPU)." default:"0"`
	SkipErrors bool            `help:"Keep going past lines that do not classify."`
	Profile    string          `default:"" enum:",${profileModes}" help:"Write a runtime profile (${enum})."`
	ProfileDir string          `default:"." help:"Profile output directory." type:"path"`

	stdout io.Writer
	stderr io.Writer
	ctx    context.Context
}

type cli struct {
	Globals globals `embed:""`

	Parse   parseCmd   `cmd:"" help:"Classify every line and report failures."`
	Dump    dumpCmd    `cmd:"" help:"Output classified lines as JSON or YAML."`
	Sizes   sizesCmd   `cmd:"" help:"Summarize code and data sizes."`
	Find    findCmd    `cmd:"" help:"Fuzzy search for symbols."`
	Refs    refsCmd    `cmd:"" help:"Query the link tree reference graph."`
	Explain explainCmd `cmd:"" help:"Show how a single line classifies."`
	Version versionCmd `cmd:"" help:"Show version."`
}

// exitCode is an error carrying a process exit status. Its message has
// already been printed.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) (code int) {
	c := cli{Globals: globals{stdout: stdout, stderr: stderr, ctx: ctx}}

	exited := false
	parser, err := kong.New(&c,
		kong.Name("mwmap"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(status int) {
			exited = true
			code = status
		}),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Configuration(loadConfig, defaultConfig),
		kong.Vars{"profileModes": profileModeEnum()},
	)
	if err != nil {
		printError(stderr, "%v", err)
		return exitError
	}

	ktx, err := parser.Parse(args)
	if exited {
		return code
	}
	if err != nil {
		parser.Errorf("%v", err)
		return exitError
	}

	defer c.Globals.startProfile()()

	if err := ktx.Run(&c.Globals); err != nil {
		var ec exitCode
		if errors.As(err, &ec) {
			return int(ec)
		}
		printError(stderr, "%v", err)
		return exitError
	}
	return exitOK
}

// logger builds the stderr logger selected by the log flags.
func (g *globals) logger() *slog.Logger {
	level := parseLevel(g.LogLevel)
	switch {
	case g.Verbose >= 2:
		level = min(level, mwmap.LevelTrace)
	case g.Verbose == 1:
		level = min(level, slog.LevelDebug)
	}

	opts := &slog.HandlerOptions{Level: level}
	if g.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(g.stderr, opts))
	}
	return slog.New(slog.NewTextHandler(g.stderr, opts))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return mwmap.LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (g *globals) options() []mwmap.Option {
	opts := []mwmap.Option{mwmap.WithLogger(g.logger())}
	if g.Workers > 0 {
		opts = append(opts, mwmap.WithWorkers(g.Workers))
	}
	if g.SkipErrors {
		opts = append(opts, mwmap.WithErrorPolicy(mwmap.Skip))
	}
	return opts
}

// load classifies one file. Under --skip-errors, failures are reported on
// stderr and the remaining lines are returned.
func (g *globals) load(path string) ([]mapfile.Line, error) {
	res, err := mwmap.ParseFile(g.ctx, path, g.options()...)
	if err != nil {
		var perr *mapfile.ParseError
		if errors.As(err, &perr) {
			printParseError(g.stderr, path, perr)
			return nil, exitCode(exitFailure)
		}
		return nil, err
	}
	for _, perr := range res.Errors {
		printParseError(g.stderr, path, perr)
	}
	return res.Lines, nil
}

func printParseError(w io.Writer, path string, perr *mapfile.ParseError) {
	fmt.Fprintf(w, "%s:%d:%d: %s", path, perr.Line, perr.Column(), perr.Kind)
	if perr.Expected != "" {
		fmt.Fprintf(w, ": expected %s", perr.Expected)
	}
	fmt.Fprintln(w)
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "error: "+format+"\n", args...)
}

type versionCmd struct{}

func (versionCmd) Run(g *globals) error {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Fprintf(g.stdout, "mwmap %s\n", version)
	return nil
}
