package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/lmp"
	"github.com/lestrrat-go/lmp/encoding"
	"github.com/lestrrat-go/lmp/s11n"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

type cmdopts struct {
	Encoding     string `long:"encoding" description:"character encoding of the input (default: utf-8)"`
	List         bool   `long:"list" description:"print a node listing instead of the markup"`
	HighBitNames bool   `long:"high-bit-names" description:"accept non-ASCII bytes in tag names"`
	Trace        bool   `long:"trace" description:"log recovered syntax errors to stderr"`
	Version      bool   `long:"version" description:"display the version of the library used"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("lmp-lint: using lmp version %s\n", lmp.Version)
}

func showUsage() {
	fmt.Printf(`Usage : lmp-lint [options] FILES ...
	Parse the files (or stdin) and output the result of the parsing
	--encoding=NAME   : decode the input from NAME before parsing
	--list            : print a node listing instead of the markup
	--high-bit-names  : accept non-ASCII bytes in tag names
	--trace           : log recovered syntax errors to stderr
	--version         : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	if len(args) == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		showUsage()
		return 1
	}

	ctx := context.Background()
	if opts.Trace {
		tlog := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = lmp.WithTraceLogger(ctx, tlog)
	}

	if err := run(ctx, &opts, args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	return 0
}

// run lints each named file, or stdin when no file is given
func run(ctx context.Context, opts *cmdopts, args []string, stdin io.Reader, out io.Writer) error {
	p := lmp.NewParser(lmp.WithHighBitNames(opts.HighBitNames))

	if len(args) == 0 {
		return lint(ctx, p, opts, stdin, out)
	}

	for _, f := range args {
		fh, err := os.Open(f)
		if err != nil {
			return err
		}
		err = lint(ctx, p, opts, fh, out)
		_ = fh.Close()
		if err != nil {
			return errors.Wrapf(err, `failed to lint %s`, f)
		}
	}
	return nil
}

func lint(ctx context.Context, p *lmp.Parser, opts *cmdopts, in io.Reader, out io.Writer) error {
	buf, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, `failed to read input`)
	}

	buf, err = encoding.Decode(opts.Encoding, buf)
	if err != nil {
		return err
	}

	doc, err := p.Parse(ctx, buf)
	if err != nil {
		return err
	}

	if opts.List {
		var l s11n.Lister
		return l.ListDoc(out, doc)
	}

	var d s11n.Dumper
	if err := d.DumpDoc(out, doc); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}
