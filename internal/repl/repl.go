// Package repl drives the calculator one line at a time, the way the gocalc
// command uses it interactively and in batch mode.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/mattn/gocalc"
)

// Logger is the subset of *logger.Logger (github.com/jcgregorio/logger) the
// session needs.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

type Options struct {
	MaxDepth   int  // Parenthesis nesting limit, <= 0 for none
	ShowTokens bool // Print a token table before evaluating
	ShowAST    bool // Print the parsed tree before evaluating
	Color      bool // Color errors and results
}

// LineReader is implemented by *term.Terminal.
type LineReader interface {
	ReadLine() (string, error)
}

type Session struct {
	out  io.Writer
	log  Logger
	opts Options
	errc *color.Color
	resc *color.Color
}

func New(out io.Writer, log Logger, opts Options) *Session {
	errc := color.New(color.FgRed)
	resc := color.New(color.FgGreen)
	if opts.Color {
		errc.EnableColor()
		resc.EnableColor()
	} else {
		errc.DisableColor()
		resc.DisableColor()
	}
	return &Session{
		out:  out,
		log:  log,
		opts: opts,
		errc: errc,
		resc: resc,
	}
}

func isExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "exit")
}

// Line evaluates one line of input and prints the result or the error. quit
// is true when the line asked to leave the session.
func (s *Session) Line(line string) (quit bool, err error) {
	if strings.TrimSpace(line) == "" {
		return false, nil
	}
	if isExit(line) {
		fmt.Fprintln(s.out, "Bye.")
		return true, nil
	}
	s.log.Debugf("evaluating %q", line)

	v, err := s.eval(line)
	if err != nil {
		s.log.Debugf("failed: %v", err)
		s.errc.Fprintln(s.out, err)
		return false, err
	}
	s.log.Debugf("result %v", v)
	s.resc.Fprintln(s.out, v)
	return false, nil
}

func (s *Session) eval(line string) (gocalc.Value, error) {
	if s.opts.ShowTokens {
		if err := s.printTokens(line); err != nil {
			return gocalc.Value{}, err
		}
	}

	p := gocalc.NewParser(gocalc.NewLexer(strings.NewReader(line)))
	p.SetMaxDepth(s.opts.MaxDepth)
	node, err := p.Parse()
	if err != nil {
		return gocalc.Value{}, err
	}
	s.log.Debugf("parsed %v", node)

	if s.opts.ShowAST {
		if err := gocalc.Fprint(s.out, node); err != nil {
			return gocalc.Value{}, errors.Wrap(err, "failed to print tree")
		}
	}
	return gocalc.Evaluate(node)
}

func (s *Session) printTokens(line string) error {
	toks, err := gocalc.Tokenize(line)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Pos", "Kind", "Text"})
	for _, tok := range toks {
		table.Append([]string{fmt.Sprint(tok.Pos), tok.Kind.String(), tok.Text()})
	}
	table.Render()
	return nil
}

// Loop reads lines from rl until the input ends or an exit command is
// given. Errors in a line are printed and do not end the loop.
func (s *Session) Loop(rl LineReader) error {
	s.log.Debugf("starting interactive session")
	for {
		line, err := rl.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to read line")
		}
		if quit, _ := s.Line(line); quit {
			return nil
		}
	}
}

// Run evaluates every line of r. It keeps going past failing lines and
// returns their errors combined, or nil when every line succeeded.
func (s *Session) Run(r io.Reader) error {
	var result *multierror.Error
	buf := bufio.NewReader(r)
	n, failed := 0, 0
	for {
		line, rerr := buf.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			result = multierror.Append(result, errors.Wrap(rerr, "failed to read input"))
			break
		}
		if rerr == io.EOF && line == "" {
			break
		}
		n++
		quit, err := s.Line(strings.TrimRight(line, "\r\n"))
		if err != nil {
			failed++
			result = multierror.Append(result, errors.Wrapf(err, "line %d", n))
		}
		if quit || rerr == io.EOF {
			break
		}
	}
	s.log.Infof("evaluated %d lines, %d failed", n, failed)
	return result.ErrorOrNil()
}
