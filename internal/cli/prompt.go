package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// Prompter reads one line of user input.
type Prompter interface {
	// Prompt shows message and returns the raw answer. Closed input and
	// interrupts return io.EOF.
	Prompt(message string) (string, error)
}

// LinePrompter reads answers line by line from a plain reader.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt prints message followed by the ">> " marker and reads a line.
func (p *LinePrompter) Prompt(message string) (string, error) {
	if message != "" {
		fmt.Fprintln(p.out, message)
	}
	fmt.Fprint(p.out, ">> ")

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// SurveyPrompter asks through a survey input on a terminal.
type SurveyPrompter struct {
	in  terminal.FileReader
	out terminal.FileWriter
	err io.Writer
}

// NewSurveyPrompter creates a SurveyPrompter.
func NewSurveyPrompter(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *SurveyPrompter {
	return &SurveyPrompter{in: in, out: out, err: errOut}
}

// Prompt asks a single free-text question.
func (p *SurveyPrompter) Prompt(message string) (string, error) {
	var answer string
	prompt := &survey.Input{Message: message}

	err := survey.AskOne(prompt, &answer, survey.WithStdio(p.in, p.out, p.err))
	if errors.Is(err, terminal.InterruptErr) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return answer, nil
}

// terminalConsole renders a session on the terminal.
type terminalConsole struct {
	out         io.Writer
	prompter    Prompter
	clearScreen bool
}

// newTerminalConsole picks the survey prompter when both ends are terminals
// and the line prompter otherwise. The screen is only cleared on a terminal.
func newTerminalConsole(in io.Reader, out io.Writer, clearScreen bool) *terminalConsole {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	interactive := inOK && outOK && isTerminal(inFile) && isTerminal(outFile)

	var prompter Prompter
	if interactive {
		prompter = NewSurveyPrompter(inFile, outFile, outFile)
	} else {
		prompter = NewLinePrompter(in, out)
	}

	return &terminalConsole{
		out:         out,
		prompter:    prompter,
		clearScreen: clearScreen && interactive,
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *terminalConsole) Clear() {
	if c.clearScreen {
		fmt.Fprint(c.out, "\033[H\033[2J")
	}
}

func (c *terminalConsole) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *terminalConsole) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *terminalConsole) Success(msg string) {
	fmt.Fprintln(c.out, formatSuccess(msg))
}

func (c *terminalConsole) Warn(msg string) {
	fmt.Fprintln(c.out, formatWarning(msg))
}

func (c *terminalConsole) Error(msg string) {
	fmt.Fprintln(c.out, formatError(msg))
}

func (c *terminalConsole) Ask(message string) (string, error) {
	return c.prompter.Prompt(message)
}
