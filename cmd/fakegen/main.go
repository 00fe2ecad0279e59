package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/fakegen/cmd/fakegen/fields"
	"pkg.jsn.cam/fakegen/pkg/fakegen"
	"pkg.jsn.cam/fakegen/pkg/generators/en"
	"pkg.jsn.cam/fakegen/pkg/locale"
	"pkg.jsn.cam/fakegen/pkg/storage"
)

/* writes fixture data, one generated value per line */

var (
	Field      = flag.String("field", "address.full", "Field to generate (see -list)")
	Count      = flag.Int64("count", 100, "Number of lines to generate")
	Seed       = flag.Uint64("seed", 0, "Seed for the random source; equal seeds give equal output")
	OutputPath = flag.String("output", "", "Output file path (stdout when empty)")
	LocaleDir  = flag.String("locale-dir", "", "Directory of <locale>/<kind>.yaml metadata (bundled data when empty)")
	CachePath  = flag.String("cache", "", "bbolt file caching decoded locale metadata")
	ListFields = flag.Bool("list", false, "List available fields and exit")
)

type options struct {
	field      string
	count      int64
	seed       uint64
	outputPath string
	localeDir  string
	cachePath  string
	list       bool
}

func main() {
	flag.Parse()

	opts := options{
		field:      *Field,
		count:      *Count,
		seed:       *Seed,
		outputPath: *OutputPath,
		localeDir:  *LocaleDir,
		cachePath:  *CachePath,
		list:       *ListFields,
	}
	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run returns every failure instead of exiting, so the cache and output
// file are always closed.
func run(opts options, stdout io.Writer) (err error) {
	if opts.count < 0 {
		return fmt.Errorf("count must not be negative, got %d", opts.count)
	}

	reg, closeCache, err := buildRegistry(opts)
	if err != nil {
		return fmt.Errorf("failed to load generators: %w", err)
	}
	defer func() {
		err = errors.Join(err, closeCache())
	}()

	if opts.list {
		for _, line := range reg.Describe() {
			fmt.Fprintln(stdout, line)
		}
		return nil
	}

	field, err := reg.Get(opts.field)
	if err != nil {
		return fmt.Errorf("%w (use -list to see available fields)", err)
	}

	out, bar, closeOut, err := openOutput(opts.outputPath, opts.count, stdout)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}

	written, err := writeLines(out, field, opts, bar)
	bar.Finish()
	if cerr := closeOut(); cerr != nil && err == nil {
		err = fmt.Errorf("failed to close output: %w", cerr)
	}
	if err != nil {
		return err
	}

	if opts.outputPath != "" {
		log.Printf("[FAKEGEN] Wrote %s %s lines (%s) to %s",
			humanize.Comma(opts.count), field.Name, humanize.Bytes(uint64(written)), opts.outputPath)
	}
	return nil
}

// writeLines flushes whatever was generated even when generation fails.
func writeLines(out io.Writer, field fields.Field, opts options, bar *progressbar.ProgressBar) (int64, error) {
	w := bufio.NewWriter(out)
	r := fakegen.NewSource(opts.seed)

	var written int64
	var genErr error
	for i := int64(0); i < opts.count; i++ {
		n, err := field.WriteLine(w, r)
		written += int64(n)
		if err != nil {
			genErr = fmt.Errorf("failed to generate %s: %w", field.Name, err)
			break
		}
		bar.Add(1)
	}
	if err := w.Flush(); err != nil && genErr == nil {
		genErr = fmt.Errorf("failed to write output: %w", err)
	}
	return written, genErr
}

func buildRegistry(opts options) (fields.Registry, func() error, error) {
	var loaderOpts []locale.Option
	closeCache := func() error { return nil }
	if opts.cachePath != "" {
		backend, err := storage.NewBboltBackend(opts.cachePath)
		if err != nil {
			return nil, nil, err
		}
		loaderOpts = append(loaderOpts, locale.WithCache(backend))
		closeCache = backend.Close
	}

	loader := locale.Default(loaderOpts...)
	if opts.localeDir != "" {
		loader = locale.NewLoader(os.DirFS(opts.localeDir), loaderOpts...)
	}

	addr, names, err := en.NewUnitedStates(loader)
	if err != nil {
		return nil, nil, errors.Join(err, closeCache())
	}
	return fields.NewRegistry(fields.Set{Address: addr, Name: names}), closeCache, nil
}

// openOutput returns stdout with a silent bar, or the created file with a
// visible one on stderr.
func openOutput(path string, count int64, stdout io.Writer) (io.Writer, *progressbar.ProgressBar, func() error, error) {
	if path == "" {
		return stdout, progressbar.DefaultSilent(count), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, nil, err
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, nil, err
	}
	return file, progressbar.Default(count, "generating"), file.Close, nil
}
