package runner

import (
	"fmt"
	"io"
	"os"
	"stackvm/pkg/color"
	"stackvm/pkg/lexer"
	"stackvm/pkg/stackvm"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

type Runner struct {
	Help       bool   // Show help message
	Verbose    bool   // Enable verbose output
	NoColor    bool   // Disable colored output
	Trace      bool   // Log every executed operation
	ShowStack  bool   // Print the remaining stack when the program ends
	Capacity   int    // Initial operand stack capacity
	ConfigFile string // Path to the TOML configuration file
	SourceFile string // Path to the word file; empty or "-" reads stdin

	Stdin  io.Reader // program source or readline input, defaults to os.Stdin
	Stdout io.Writer // print output, defaults to os.Stdout
	Stderr io.Writer // diagnostics, defaults to os.Stderr
}

// Run scans the source into words and feeds them to a fresh machine in order.
// Literals are pushed, names are executed; the first failure stops the run.
func (opts *Runner) Run() error {
	opts.defaults()

	src, err := opts.readSource()
	if err != nil {
		return err
	}

	tokens := lexer.NewLexer(src).Tokens()

	if opts.Verbose {
		fmt.Fprintln(opts.Stdout, color.GreenText("=== Words ==="))
		for i, tok := range tokens {
			if tok.Type == lexer.EOF {
				break
			}
			fmt.Fprintf(opts.Stdout, "%s: (%s, %s, %s)\n",
				color.CyanText(fmt.Sprintf("%d", i)),
				color.YellowText(tok.Type.String()),
				color.BlueText(tok.Lexeme),
				color.GrayText(tok.Pos.String()))
		}
		fmt.Fprintln(opts.Stdout, color.GreenText("\n=== Program Output ==="))
	}

	m := stackvm.New(opts.machineOptions()...)

	for _, tok := range tokens {
		if err := step(m, tok); err != nil {
			fmt.Fprintln(opts.Stderr, color.ErrorWithPosition(tok.Pos, err.Error(), tok.Lexeme))
			return &StoppedError{Word: tok.Lexeme, Pos: tok.Pos, Err: err}
		}
	}

	if opts.ShowStack {
		if err := m.PrintStack(); err != nil {
			return err
		}
	}

	log.Info("Program finished", "depth", m.Len())
	return nil
}

// StoppedError is returned once the failing word has already been reported
// on Stderr. Its message is only a summary; Unwrap gives the cause.
type StoppedError struct {
	Word string
	Pos  lexer.Position
	Err  error
}

func (e *StoppedError) Error() string {
	return fmt.Sprintf("execution stopped at %s", e.Pos)
}

func (e *StoppedError) Unwrap() error {
	return e.Err
}

func (opts *Runner) defaults() {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
}

func (opts *Runner) fromStdin() bool {
	return opts.SourceFile == "" || opts.SourceFile == "-"
}

func (opts *Runner) readSource() (string, error) {
	if opts.fromStdin() {
		log.Info("Processing stdin")
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	log.Info("Processing file", "file", opts.SourceFile)
	data, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", opts.SourceFile, err)
	}
	return string(data), nil
}

func (opts *Runner) machineOptions() []stackvm.Option {
	machineOpts := []stackvm.Option{
		stackvm.WithOutput(stackvm.NewWriterOutput(opts.Stdout)),
		stackvm.WithErrorReporter(stackvm.NewLogReporter(log.Default())),
	}

	// stdin already holds the program when no file is given
	if opts.fromStdin() {
		machineOpts = append(machineOpts, stackvm.WithInput(strings.NewReader("")))
	} else {
		machineOpts = append(machineOpts, stackvm.WithInput(opts.Stdin))
	}

	if opts.Capacity > 0 {
		machineOpts = append(machineOpts, stackvm.WithCapacity(opts.Capacity))
	}

	if opts.Trace {
		machineOpts = append(machineOpts, stackvm.WithLogger(log.Default()))
	}

	return machineOpts
}

// step applies one word to the machine
func step(m *stackvm.Machine, tok lexer.Token) error {
	switch tok.Type {
	case lexer.EOF:
		return nil
	case lexer.NUM:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", tok.Literal, err)
		}
		return m.Push(stackvm.Number(f))
	case lexer.STRING:
		return m.Push(stackvm.Text(tok.Literal))
	case lexer.TRUE:
		return m.Push(stackvm.Boolean(true))
	case lexer.FALSE:
		return m.Push(stackvm.Boolean(false))
	case lexer.WORD:
		return m.Exec(tok.Lexeme)
	default:
		return fmt.Errorf("illegal input %q", tok.Lexeme)
	}
}
