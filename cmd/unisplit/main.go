// Command unisplit splits documents into lines or text boundaries and prints
// the result as JSON, one array of pieces per document.
//
// Usage:
//
//	unisplit [flags] lines|lines1|boundaries <input>...
//
// Inputs are file paths or s3://, minio:// and file:// URIs. With -literal
// the inputs themselves are split; with -json the single input names a JSON
// array of strings (null for NA), or "-" for stdin.
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
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/unisplit"
	"github.com/hupe1980/unisplit/codec"
	"github.com/hupe1980/unisplit/internal/resource"
	"github.com/hupe1980/unisplit/source"
	"github.com/hupe1980/unisplit/source/minio"
	"github.com/hupe1980/unisplit/source/s3"
	"github.com/hupe1980/unisplit/vector"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type cliConfig struct {
	maxPieces     int
	omitEmpty     bool
	boundary      string
	locale        string
	codec         string
	jsonInput     bool
	literal       bool
	parallel      int
	memLimit      int64
	ioLimit       int64
	workers       int64
	minioEndpoint string
	minioSecure   bool
	logLevel      string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg cliConfig

	fs := flag.NewFlagSet("unisplit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.maxPieces, "max", -1, "maximum number of pieces per document for lines (negative: unbounded)")
	fs.BoolVar(&cfg.omitEmpty, "omit-empty", false, "drop empty lines")
	fs.StringVar(&cfg.boundary, "boundary", "word", "boundary kind: character, line_break, sentence or word")
	fs.StringVar(&cfg.locale, "locale", "", "locale identifier (default from LC_ALL, LC_CTYPE, LANG)")
	fs.StringVar(&cfg.codec, "codec", codec.Default.Name(), "output codec: "+strings.Join(codec.Names(), ", "))
	fs.BoolVar(&cfg.jsonInput, "json", false, "read the input vector from a JSON array")
	fs.BoolVar(&cfg.literal, "literal", false, "split the arguments themselves")
	fs.IntVar(&cfg.parallel, "parallel", 1, "number of split workers (0: GOMAXPROCS)")
	fs.Int64Var(&cfg.memLimit, "mem-limit", 0, "maximum bytes of loaded documents (0: unlimited)")
	fs.Int64Var(&cfg.ioLimit, "io-limit", 0, "maximum read throughput in bytes per second (0: unlimited)")
	fs.Int64Var(&cfg.workers, "workers", 4, "documents loaded concurrently")
	fs.StringVar(&cfg.minioEndpoint, "minio-endpoint", os.Getenv("MINIO_ENDPOINT"), "MinIO endpoint for minio:// inputs")
	fs.BoolVar(&cfg.minioSecure, "minio-secure", true, "use TLS for MinIO")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: unisplit [flags] lines|lines1|boundaries <input>...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return exitUsage
	}
	op, inputs := fs.Arg(0), fs.Args()[1:]
	switch op {
	case "lines", "lines1", "boundaries":
	default:
		fmt.Fprintf(stderr, "unisplit: unknown operation %q\n", op)
		return exitUsage
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		fmt.Fprintf(stderr, "unisplit: invalid -log-level: %v\n", err)
		return exitUsage
	}
	logger := unisplit.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	enc, ok := codec.ByName(cfg.codec)
	if !ok {
		fmt.Fprintf(stderr, "unisplit: unknown codec %q\n", cfg.codec)
		return exitUsage
	}
	if cfg.jsonInput && len(inputs) != 1 {
		fmt.Fprintln(stderr, "unisplit: -json takes exactly one input")
		return exitUsage
	}

	str, closeInput, err := loadInput(ctx, cfg, enc, inputs, stdin)
	if err != nil {
		logger.ErrorContext(ctx, "loading input failed", "error", err)
		return exitError
	}
	defer closeInput()

	splitter := unisplit.New(
		unisplit.WithLogger(logger),
		unisplit.WithDefaultLocale(cfg.locale),
		unisplit.WithParallelism(cfg.parallel),
	)

	var out any
	switch op {
	case "lines":
		out, err = splitter.SplitLines(ctx, str, unisplit.LinesParams{
			MaxPieces: vector.Of(cfg.maxPieces),
			OmitEmpty: vector.Of(cfg.omitEmpty),
		})
	case "lines1":
		out, err = splitter.SplitLines1(ctx, str)
	case "boundaries":
		out, err = splitter.SplitBoundaries(ctx, str, unisplit.BoundaryParams{
			Kinds: vector.Of(cfg.boundary),
		})
	}
	if err != nil {
		logger.ErrorContext(ctx, "split failed", "op", op, "error", err)
		return exitError
	}

	data, err := enc.Marshal(out)
	if err != nil {
		logger.ErrorContext(ctx, "encoding result failed", "error", err)
		return exitError
	}
	if _, err := fmt.Fprintf(stdout, "%s\n", data); err != nil {
		return exitError
	}
	return exitOK
}

func loadInput(ctx context.Context, cfg cliConfig, dec codec.Codec, inputs []string, stdin io.Reader) (*vector.Strings, func(), error) {
	noop := func() {}

	switch {
	case cfg.literal:
		str, err := vector.NewStrings(inputs)
		return str, noop, err
	case cfg.jsonInput:
		data, err := readJSONInput(inputs[0], stdin)
		if err != nil {
			return nil, noop, err
		}
		var str vector.Strings
		if err := dec.Unmarshal(data, &str); err != nil {
			return nil, noop, fmt.Errorf("decode %s: %w", inputs[0], err)
		}
		return &str, noop, nil
	}

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   cfg.memLimit,
		MaxWorkers:         cfg.workers,
		IOLimitBytesPerSec: cfg.ioLimit,
	})

	router, err := newRouter(ctx, cfg, rc, inputs)
	if err != nil {
		return nil, noop, err
	}

	batch, err := source.NewLoader(source.WithController(rc)).Load(ctx, router, inputs)
	if err != nil {
		return nil, noop, err
	}
	closeBatch := func() { _ = batch.Close() }

	str, err := batch.Strings()
	if err != nil {
		closeBatch()
		return nil, noop, err
	}
	return str, closeBatch, nil
}

func readJSONInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// newRouter registers only the sources the inputs refer to, so local runs do
// not need cloud credentials.
func newRouter(ctx context.Context, cfg cliConfig, rc *resource.Controller, inputs []string) (*source.Router, error) {
	router := source.NewRouter()
	router.Register(source.SchemeFile, source.NewLocal(""))

	schemes := make(map[string]bool)
	for _, in := range inputs {
		loc, err := source.Resolve(in)
		if err != nil {
			return nil, err
		}
		schemes[loc.Scheme] = true
	}

	if schemes[source.SchemeS3] {
		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		router.Register(source.SchemeS3, s3.New(awss3.NewFromConfig(awsCfg), s3.WithController(rc)))
	}

	if schemes[source.SchemeMinIO] {
		if cfg.minioEndpoint == "" {
			return nil, errors.New("minio:// inputs require -minio-endpoint")
		}
		client, err := miniogo.New(cfg.minioEndpoint, &miniogo.Options{
			Creds: credentials.NewChainCredentials([]credentials.Provider{
				&credentials.EnvMinio{},
				&credentials.EnvAWS{},
			}),
			Secure: cfg.minioSecure,
		})
		if err != nil {
			return nil, fmt.Errorf("create MinIO client: %w", err)
		}
		router.Register(source.SchemeMinIO, minio.New(client, minio.WithController(rc)))
	}

	return router, nil
}
