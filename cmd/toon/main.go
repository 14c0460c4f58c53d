package main

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/toonfmt/toon"
)

func main() {
	decode := pflag.Bool("decode", false, "decode TOON input instead of encoding")
	from := pflag.String("from", "json", "input format when encoding: json|jsonc|yaml")
	to := pflag.String("to", "json", "output format when decoding: json|yaml")
	contextName := pflag.String("context", "tool-result", "usage context for format selection: tool-result|prompt|config|generic")
	useSelector := pflag.Bool("select", false, "let the context policy pick TOON vs JSON and add the format marker")
	indent := pflag.Int("indent", 2, "indent size for nested rendering")
	maxDepth := pflag.Int("max-depth", 3, "nesting depth before collapsing to inline JSON")
	zstdIO := pflag.Bool("zstd", false, "zstd-compress encoded output / decompress input when decoding")
	stats := pflag.Bool("stats", false, "log token savings versus JSON")
	output := pflag.StringP("output", "o", "", "output file (default stdout)")
	verbose := pflag.BoolP("verbose", "v", false, "debug logging")
	pflag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	data, err := readInput(pflag.Arg(0), *decode && *zstdIO)
	if err != nil {
		logger.Fatal("read input", zap.Error(err))
	}

	opts := toon.Options{
		IndentSize:     *indent,
		MaxDepth:       *maxDepth,
		CompactStrings: true,
	}

	var out []byte
	if *decode {
		out, err = runDecode(data, *to, opts)
	} else {
		out, err = runEncode(data, *from, opts, *useSelector, toon.ParseContext(*contextName), *stats, logger)
	}
	if err != nil {
		logger.Fatal("convert", zap.Error(err))
	}

	if err := writeOutput(*output, out, !*decode && *zstdIO); err != nil {
		logger.Fatal("write output", zap.Error(err))
	}
}

func runEncode(data []byte, from string, opts toon.Options, useSelector bool, ctx toon.Context, stats bool, logger *zap.Logger) ([]byte, error) {
	var v *toon.Value
	var err error
	switch from {
	case "json":
		v, err = toon.FromJSON(data)
	case "jsonc":
		v, err = toon.FromJSONC(data)
	case "yaml", "yml":
		v, err = toon.FromYAML(data)
	default:
		return nil, fmt.Errorf("unknown input format %q", from)
	}
	if err != nil {
		return nil, err
	}

	if stats {
		r := toon.Savings(v, opts)
		logger.Info("token savings",
			zap.Int("toon_tokens", r.TOONTokens),
			zap.Int("json_tokens", r.JSONTokens),
			zap.Float64("savings_percent", r.SavingsPercent))
	}

	if useSelector {
		sel := toon.NewSelector(opts)
		logger.Debug("format selection",
			zap.Stringer("context", ctx),
			zap.Bool("tabular", sel.ShouldUseTabular(v, ctx)))
		return []byte(sel.Format(v, ctx) + "\n"), nil
	}
	return []byte(toon.EncodeWithOptions(v, opts) + "\n"), nil
}

func runDecode(data []byte, to string, opts toon.Options) ([]byte, error) {
	// Selector.Parse tolerates the format marker and plain-JSON fallback
	// output as well as bare TOON bodies.
	v, err := toon.NewSelector(opts).Parse(string(data))
	if err != nil {
		return nil, err
	}

	switch to {
	case "json":
		out := toon.ToJSONIndent(v)
		return append(out, '\n'), nil
	case "yaml", "yml":
		return toon.ToYAML(v)
	default:
		return nil, fmt.Errorf("unknown output format %q", to)
	}
}

func readInput(path string, compressed bool) ([]byte, error) {
	var in io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	if compressed {
		zr, err := zstd.NewReader(in)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		in = zr
	}

	return io.ReadAll(in)
}

func writeOutput(path string, data []byte, compress bool) error {
	var out io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if compress {
		zw, err := zstd.NewWriter(out)
		if err != nil {
			return err
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	}

	_, err := out.Write(data)
	return err
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	return logger
}
