package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/ytget/yt-fetch/internal/errs"
	"github.com/ytget/yt-fetch/internal/model"
)

// Prompt messages
const (
	urlPromptMsg     = "Enter YouTube video URL: "
	menuHeaderMsg    = "\nAvailable video qualities:"
	qualityPromptMsg = "\nSelect quality (enter number): "
)

// Prompter reads interactive input. A background goroutine feeds lines into
// a channel so waits can be cancelled by context.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	lines chan string
	once  sync.Once
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    in,
		out:   out,
		lines: make(chan string),
	}
}

// initReader starts the input reading goroutine on first use.
func (p *Prompter) initReader() {
	p.once.Do(func() {
		go func() {
			reader := bufio.NewReader(p.in)
			for {
				input, err := reader.ReadString('\n')
				line := strings.TrimSpace(input)
				if err != nil {
					if line != "" {
						p.lines <- line
					}
					close(p.lines)
					return
				}
				p.lines <- line
			}
		}()
	})
}

// ReadLine displays promptMsg and waits for one line of input or cancellation.
func (p *Prompter) ReadLine(ctx context.Context, promptMsg string) (string, error) {
	p.initReader()
	fmt.Fprint(p.out, promptMsg)

	select {
	case line, ok := <-p.lines:
		if !ok {
			// Input stream closed mid-prompt; nothing more will arrive.
			return "", errs.ErrUserInterrupt
		}
		return line, nil
	case <-ctx.Done():
		return "", errs.ErrUserInterrupt
	}
}

// ReadURL prompts for a video URL.
func (p *Prompter) ReadURL(ctx context.Context) (string, error) {
	line, err := p.ReadLine(ctx, urlPromptMsg)
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", fmt.Errorf("%w: URL is required", errs.ErrInvalidURL)
	}
	return line, nil
}

// SelectFormat renders the numbered quality menu and reprompts until the user
// picks a valid entry or the run is cancelled.
func (p *Prompter) SelectFormat(ctx context.Context, formats []model.Format) (model.Format, error) {
	fmt.Fprintln(p.out, menuHeaderMsg)
	for i, f := range formats {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, f.Resolution)
	}

	for {
		line, err := p.ReadLine(ctx, qualityPromptMsg)
		if err != nil {
			return model.Format{}, err
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(formats) {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d\n", len(formats))
			continue
		}
		return formats[choice-1], nil
	}
}
