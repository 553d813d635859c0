// Command mazefinder solves text mazes with the search catalog.
//
//	mazefinder [-config file] list
//	mazefinder [-config file] solve [-strategy name] [-animate=false] <maze>
//	mazefinder [-config file] serve [-addr host:port]
//	mazefinder [-config file] config -o file
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazefinder/internal/config"
	"github.com/katalvlaran/mazefinder/internal/server"
	"github.com/katalvlaran/mazefinder/maze"
	"github.com/katalvlaran/mazefinder/render"
	"github.com/katalvlaran/mazefinder/search"
)

const usage = `usage: mazefinder [-config file] <command> [flags]

commands:
  list     list maze files and strategies
  solve    solve one maze (path, or file name found in the maze directories)
  serve    run the HTTP API
  config   write the effective configuration to a file
`

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	switch {
	case errors.Is(err, errUsage):
		if err != errUsage {
			fmt.Fprintln(os.Stderr, "mazefinder:", err)
		}
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, "mazefinder:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("mazefinder", flag.ContinueOnError)
	global.SetOutput(stderr)
	cfgFile := global.String("config", "", "config file (default $MAZEFINDER_CONFIG or ./mazefinder.toml)")
	if err := global.Parse(args); err != nil {
		return errUsage
	}
	if global.NArg() == 0 {
		return errUsage
	}

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		return err
	}
	log, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		return err
	}

	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "list":
		return list(cfg, stdout)
	case "solve":
		return solve(ctx, cfg, log, rest, stdout, stderr)
	case "serve":
		return serve(ctx, cfg, log, rest, stderr)
	case "config":
		return writeConfig(cfg, rest, stderr)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func list(cfg config.Config, w io.Writer) error {
	files, err := maze.Discover(cfg.Mazes.Dirs...)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Mazes:")
	if len(files) == 0 {
		fmt.Fprintf(w, "  (none in %s)\n", strings.Join(cfg.Mazes.Dirs, ", "))
	}
	for _, f := range files {
		fmt.Fprintf(w, "  %s\n", f)
	}

	fmt.Fprintln(w, "Strategies:")
	for _, f := range search.Families() {
		fmt.Fprintf(w, "  %s\n", f)
		for _, e := range search.ByFamily(f) {
			fmt.Fprintf(w, "    %-28s %s\n", e.Name, e.Title)
		}
	}
	return nil
}

func solve(ctx context.Context, cfg config.Config, log *slog.Logger, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	strategy := fs.String("strategy", "astar-manhattan", "strategy name (see list)")
	animate := fs.Bool("animate", cfg.Animation.Enabled, "animate the search in the terminal")
	color := fs.Bool("color", cfg.Animation.Color, "use colored blocks")
	spf := fs.Float64("spf", cfg.Animation.SecondsPerFrame, "seconds per animated frame")
	speed := fs.Float64("speed", cfg.Animation.SimulationSpeed, "simulation speed")
	seed := fs.Int64("seed", cfg.Search.Seed, "random search seed (0 = default)")
	maxDepth := fs.Int("max-depth", cfg.Search.MaxDepth, "recursive DFS depth bound")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: solve takes exactly one maze", errUsage)
	}

	entry, err := search.Lookup(*strategy)
	if err != nil {
		return err
	}
	path, err := resolveMaze(fs.Arg(0), cfg.Mazes.Dirs)
	if err != nil {
		return err
	}
	p, err := maze.Load(path)
	if err != nil {
		return err
	}

	theme := render.Plain()
	if *color {
		theme = render.Color(stdout, nil)
	}
	var viz search.Visualizer = search.NopHook{}
	if *animate {
		a, err := render.NewAnimator(stdout,
			render.WithTheme(theme),
			render.WithLabel(fmt.Sprintf("%s: %s", filepath.Base(path), entry.Title)),
			render.WithSecondsPerFrame(*spf),
			render.WithSimulationSpeed(*speed),
		)
		if err != nil {
			return err
		}
		viz = a
	}

	log.Debug("solving", slog.String("maze", path), slog.String("strategy", entry.Name))
	res, err := search.Solve(p, entry, viz,
		search.WithContext(ctx),
		search.WithSeed(*seed),
		search.WithMaxDepth(*maxDepth),
	)
	if err != nil {
		return err
	}
	if a, ok := viz.(*render.Animator); ok && a.Err() != nil {
		return a.Err()
	}
	if !*animate {
		fmt.Fprintln(stdout, theme.Grid(p.Grid()))
	}

	fmt.Fprintf(stdout, "Outcome: %s\n", res.Outcome)
	fmt.Fprintf(stdout, "Nodes visited: %d\n", res.Explored)
	if res.Found() {
		fmt.Fprintf(stdout, "Path length: %d\n", len(res.Path))
		fmt.Fprintf(stdout, "Path: %s\n", render.FormatPath(res.Path))
	}
	return nil
}

// resolveMaze accepts a path, or a file name (with or without .txt) found by
// maze.Discover in dirs.
func resolveMaze(arg string, dirs []string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}
	files, err := maze.Discover(dirs...)
	if err != nil {
		return "", err
	}
	name := strings.TrimSuffix(arg, maze.FileExt) + maze.FileExt
	for _, f := range files {
		if filepath.Base(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("maze %q not found in %s", arg, strings.Join(dirs, ", "))
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", cfg.Server.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	cfg.Server.Addr = *addr

	if !log.Enabled(ctx, slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	return server.New(cfg, log).ListenAndServe(ctx)
}

func writeConfig(cfg config.Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("o", "mazefinder.toml", "output file (.toml, .yaml or .json)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if err := config.Save(cfg, *out); err != nil {
		return err
	}
	fmt.Fprintln(stderr, "wrote", *out)
	return nil
}
