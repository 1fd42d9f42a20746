package main

import (
	"bufio"
	"flag"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mhr3/pwstat/cgram"
	"github.com/mhr3/pwstat/filter"
	"github.com/mhr3/pwstat/hexline"
	"github.com/mhr3/pwstat/internal/lineio"
	"github.com/mhr3/pwstat/mask"
	"github.com/mhr3/pwstat/stats"
)

// commonFlags are accepted by every command.
type commonFlags struct {
	input    string
	output   string
	logLevel string
	quiet    bool
}

func newFlagSet(e env, name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet("pwstat "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	c := &commonFlags{}
	fs.StringVar(&c.input, "i", "", "input `file` (default stdin)")
	fs.StringVar(&c.output, "o", "", "output `file` (default stdout)")
	fs.StringVar(&c.logLevel, "log-level", "info", "log `level`: debug, info, warn or error")
	fs.BoolVar(&c.quiet, "q", false, "do not write the summary to stderr")
	return fs, c
}

func windowFlags(fs *flag.FlagSet) *mask.Window {
	w := mask.DefaultWindow
	fs.IntVar(&w.Min, "min-length", w.Min, "skip passwords shorter than `n`")
	fs.IntVar(&w.Max, "max-length", w.Max, "skip passwords longer than `n`")
	return &w
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return &usageError{err: err, printed: true}
	}
	if fs.NArg() > 0 {
		return usagef("unexpected arguments %q", fs.Args())
	}
	return nil
}

// session is the state of one command run.
type session struct {
	log  *zap.SugaredLogger
	in   io.Reader
	out  *lineio.Writer
	diag io.Writer
}

// exec opens the input and output named by c, runs fn and closes them. Any
// error is logged before it is returned.
func (c *commonFlags) exec(e env, name string, fn func(s *session) error) (err error) {
	log, err := newLogger(e.stderr, c.logLevel, name)
	if err != nil {
		return usagef("-log-level: %w", err)
	}
	defer func() {
		if err != nil {
			log.Errorw("failed", "error", err)
		}
		_ = log.Sync()
	}()

	in, err := lineio.Open(c.input, e.stdin)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, in.Close()) }()

	out, err := lineio.Create(c.output, e.stdout)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, out.Close()) }()

	s := &session{log: log, in: in, out: out}
	if !c.quiet {
		s.diag = e.stderr
	}
	log.Debugw("start", "input", displayName(c.input, "stdin"), "output", displayName(c.output, "stdout"))
	return fn(s)
}

func displayName(name, std string) string {
	if name == "" {
		return std
	}
	return name
}

func runStatsgen(e env, name string, args []string) error {
	fs, common := newFlagSet(e, name)
	window := windowFlags(fs)
	sep := fs.String("sep", "\t", "field `separator` of the tsv output")
	table := fs.String("table", string(stats.Masks), "`table` written as tsv: masks, simple, charsets or lengths")
	format := fs.String("format", string(stats.TSV), "output `format`: tsv or cbor")
	top := fs.Int("top", stats.DefaultTop, "masks shown in the summary, negative for all")
	if err := parse(fs, args); err != nil {
		return err
	}

	opts := stats.Options{Window: window, Separator: *sep, Top: *top}
	var err error
	if opts.Table, err = stats.ParseTable(*table); err != nil {
		return usagef("-table: %w", err)
	}
	if opts.Format, err = stats.ParseFormat(*format); err != nil {
		return usagef("-format: %w", err)
	}
	if err := window.Validate(); err != nil {
		return usagef("%w", err)
	}
	if *top == 0 {
		return usagef("-top must not be 0")
	}

	return common.exec(e, name, func(s *session) error {
		sum, err := stats.Generate(s.in, s.out.Writer, s.diag, opts)
		if err != nil {
			return err
		}
		s.log.Infow("done",
			"processed", sum.Processed,
			"skipped", sum.Skipped,
			"accepted", sum.Accepted,
			"rows", sum.Rows,
		)
		return nil
	})
}

func runCgrams(e env, name string, args []string) error {
	fs, common := newFlagSet(e, name)
	window := windowFlags(fs)
	var opts cgram.Options
	fs.BoolVar(&opts.Sort, "sort", false, "count the c-grams and write them by frequency")
	fs.BoolVar(&opts.IgnoreCase, "ignore-case", false, "put upper and lower case letters in one class")
	fs.BoolVar(&opts.Normalize, "normalize", false, "also emit a lowercased copy of c-grams with upper case letters")
	fs.IntVar(&opts.Top, "top", stats.DefaultTop, "c-grams shown in the summary of a sorted run, negative for all")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := window.Validate(); err != nil {
		return usagef("%w", err)
	}
	if opts.Top == 0 {
		return usagef("-top must not be 0")
	}
	opts.Window = window

	return common.exec(e, name, func(s *session) error {
		sum, err := cgram.Run(s.in, s.out.Writer, s.diag, opts)
		if err != nil {
			return err
		}
		s.log.Infow("done",
			"processed", sum.Processed,
			"skipped", sum.Skipped,
			"runs", sum.Runs,
			"distinct", sum.Distinct,
		)
		return nil
	})
}

func runFiltermask(e env, name string, args []string) error {
	fs, common := newFlagSet(e, name)
	pattern := fs.String("mask", "", "`mask` to keep, letters l, u, d, s, a, b, e.g. ?u?l?l?d")
	if err := parse(fs, args); err != nil {
		return err
	}
	f := filter.Parse(*pattern)
	if f.Len() == 0 {
		return usagef("-mask %q: %w", *pattern, filter.ErrEmptyMask)
	}

	return common.exec(e, name, func(s *session) error {
		if n := f.Unknown(); n > 0 {
			s.log.Warnw("mask has unknown characters, their positions match nothing", "mask", *pattern, "unknown", n)
		}
		sum, err := filter.Run(s.in, s.out.Writer, f)
		if err != nil {
			return err
		}
		s.log.Infow("done", "processed", sum.Total, "matched", sum.Matched, "skipped", sum.Skipped)
		return nil
	})
}

func runUnhex(e env, name string, args []string) error {
	return runTranscode(e, name, args, hexline.Unhex, "unwrapped")
}

func runHex(e env, name string, args []string) error {
	return runTranscode(e, name, args, hexline.Hex, "wrapped")
}

func runTranscode(e env, name string, args []string, fn func(io.Reader, *bufio.Writer) (int, error), counter string) error {
	fs, common := newFlagSet(e, name)
	if err := parse(fs, args); err != nil {
		return err
	}

	return common.exec(e, name, func(s *session) error {
		n, err := fn(s.in, s.out.Writer)
		if err != nil {
			return err
		}
		s.log.Infow("done", counter, n)
		return nil
	})
}
