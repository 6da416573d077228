// Command calculator drives a keypad calculator from the terminal.
//
// Each argument, or each line of input if there are no arguments, is a list
// of key labels separated by spaces, e.g. "1 2 + 3 =". After each list, the
// expression line and the input line of the display are printed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/afero"

	calc "github.com/zephyrtronium/calculator"
)

type config struct {
	inname string
	prec   int
	trace  bool
	dump   bool
}

func main() {
	log.SetFlags(0)
	var cfg config
	flag.StringVar(&cfg.inname, "in", "", "key script file (default stdin if no args given)")
	flag.IntVar(&cfg.prec, "p", calc.DefaultPrec, "precision of calculations in bits")
	flag.BoolVar(&cfg.trace, "trace", false, "print the display after every key")
	flag.BoolVar(&cfg.dump, "dump", false, "dump the final display to stderr")
	flag.Parse()
	if cfg.prec <= 0 {
		log.Fatalf("precision (%d) must be positive", cfg.prec)
	}
	if err := run(afero.NewOsFs(), cfg, flag.Args(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(fs afero.Fs, cfg config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts := []calc.Option{calc.Prec(uint(cfg.prec))}
	if cfg.trace {
		opts = append(opts, calc.OnRender(func(d calc.Display) {
			fmt.Fprintf(stdout, "%s | %s\n", d.Expression, d.Input)
		}))
	}
	eng := calc.New(opts...)

	f, closer, err := infile(fs, cfg.inname, len(args) == 0, stdin)
	if err != nil {
		return err
	}
	defer closer()
	if f != nil {
		scan := bufio.NewScanner(f)
		for n := 1; scan.Scan(); n++ {
			if err := press(eng, scan.Text()); err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
			show(stdout, eng.Display())
		}
		if err := scan.Err(); err != nil {
			return err
		}
	}
	for _, arg := range args {
		if err := press(eng, arg); err != nil {
			return err
		}
		show(stdout, eng.Display())
	}

	if cfg.dump {
		spew.Fdump(stderr, eng.Display())
	}
	return nil
}

// press presses each key in a space-separated list of labels.
func press(eng *calc.Engine, keys string) error {
	for _, label := range strings.Fields(keys) {
		if err := eng.PressLabel(label); err != nil {
			return err
		}
	}
	return nil
}

func show(w io.Writer, d calc.Display) {
	fmt.Fprintf(w, "%s\n%s\n", d.Expression, d.Input)
}

// infile opens the key script. The result is nil if there is none to read.
func infile(fs afero.Fs, inname string, std bool, stdin io.Reader) (io.Reader, func(), error) {
	switch {
	case inname != "" && inname != "-":
		f, err := fs.Open(inname)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	case inname == "-", std:
		return stdin, func() {}, nil
	}
	return nil, func() {}, nil
}
