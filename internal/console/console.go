package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// QuitInput is the line that ends the session from any prompt.
const QuitInput = "0"

var ErrQuit = errors.New("player quit the game")

type Console struct {
	ctx context.Context
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return NewContext(context.Background(), in, out)
}

// NewContext returns a console whose prompts return ErrQuit once ctx is
// done, even while waiting for input.
func NewContext(ctx context.Context, in io.Reader, out io.Writer) *Console {
	return &Console{
		ctx: ctx,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt writes text and reads one line, split into fields. The quit input,
// the end of input and a done context all return ErrQuit.
func (c *Console) Prompt(text string) ([]string, error) {
	fmt.Fprint(c.out, text)

	line, err := c.readLine()
	if errors.Is(err, ErrQuit) {
		return nil, ErrQuit
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return nil, ErrQuit
	}
	line = strings.TrimRight(line, "\r\n")
	if line == QuitInput {
		return nil, ErrQuit
	}
	return strings.Fields(line), nil
}

type readResult struct {
	line string
	err  error
}

func (c *Console) readLine() (string, error) {
	done := c.ctx.Done()
	if done == nil {
		return c.in.ReadString('\n')
	}
	if c.ctx.Err() != nil {
		return "", ErrQuit
	}

	// The reader is abandoned on cancellation; no prompt reads after that.
	ch := make(chan readResult, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		ch <- readResult{line, err}
	}()
	select {
	case r := <-ch:
		return r.line, r.err
	case <-done:
		fmt.Fprintln(c.out)
		return "", ErrQuit
	}
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Writer() io.Writer {
	return c.out
}
