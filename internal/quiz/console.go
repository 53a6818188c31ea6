package quiz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console reads answers one line at a time and writes prompts and feedback.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask writes prompt and blocks until a line of input arrives. The line
// terminator is stripped; everything else is returned as typed. io.EOF is
// returned only when the input is exhausted before any character was read.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			fmt.Fprintln(c.out)
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) printChoices(choices []string) {
	for idx, choice := range choices {
		c.Printf("%d) %s\n", idx+1, choice)
	}
}
