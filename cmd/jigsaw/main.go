// Command jigsaw cuts a board into jigsaw pieces and prints the outlines.
//
// By default it writes an SVG element with one clip path per piece, ready to
// be embedded in a page that clips an image of the whole board. With
// -format preview it writes a standalone SVG drawing of the outlines, and
// with -format json the raw path segments.
//
// The defaults of -x, -y and -seed can be set with the JIGSAW_PIECES_X,
// JIGSAW_PIECES_Y and JIGSAW_SEED environment variables.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"honnef.co/go/jigsaw"
	"honnef.co/go/jigsaw/curve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// envConfig returns the default configuration with environment overrides
// applied.
func envConfig(getenv func(string) string) (jigsaw.Config, error) {
	cfg := jigsaw.DefaultConfig()
	for _, v := range []struct {
		name string
		dst  *int
	}{
		{"JIGSAW_PIECES_X", &cfg.PiecesX},
		{"JIGSAW_PIECES_Y", &cfg.PiecesY},
	} {
		s := getenv(v.name)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return jigsaw.Config{}, fmt.Errorf("invalid %s %q: %w", v.name, s, err)
		}
		*v.dst = n
	}
	if seed := getenv("JIGSAW_SEED"); seed != "" {
		cfg.Seed = seed
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	defaults, err := envConfig(getenv)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("jigsaw", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := defaults
	fs.IntVar(&cfg.PiecesX, "x", defaults.PiecesX, "number of `columns`")
	fs.IntVar(&cfg.PiecesY, "y", defaults.PiecesY, "number of `rows`")
	fs.StringVar(&cfg.Seed, "seed", defaults.Seed, "random seed")
	format := fs.String("format", "svg", "output `format`: svg, preview or json")
	width := fs.Float64("width", 1000, "preview width in `pixels`")
	height := fs.Float64("height", 1000, "preview height in `pixels`")
	output := fs.String("o", "", "write to `file` instead of standard output")
	verbose := fs.Bool("v", false, "log debug messages")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments %q\n", fs.Args())
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	jigsaw.SetLogger(logger)
	defer jigsaw.SetLogger(nil)

	var write func(io.Writer, *jigsaw.PieceSet) error
	switch *format {
	case "svg":
		write = func(w io.Writer, set *jigsaw.PieceSet) error { return set.WriteSVG(w) }
	case "preview":
		size := curve.Sz(*width, *height)
		if size.Empty() {
			fmt.Fprintf(stderr, "Error: %v\n", fmt.Errorf("%w: got %s", jigsaw.ErrInvalidSize, size))
			return 1
		}
		write = func(w io.Writer, set *jigsaw.PieceSet) error { return set.WritePreview(w, size) }
	case "json":
		write = func(w io.Writer, set *jigsaw.PieceSet) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(set)
		}
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q\n", *format)
		return 1
	}

	set, err := jigsaw.Cutout(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var buf bytes.Buffer
	if err := write(&buf, set); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *output == "" {
		_, err = stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(*output, buf.Bytes(), 0o644)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger.Debug("wrote cutout",
		slog.String("format", *format),
		slog.Int("pieces", len(set.Pieces)),
		slog.Int("bytes", buf.Len()))
	return 0
}
