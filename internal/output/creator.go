package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// OverwriteMode decides what happens when an output file already exists
type OverwriteMode int

const (
	// Ask prompts for every existing file
	Ask OverwriteMode = iota
	OverwriteAll
	SkipAll
)

// String returns the flag spelling of the mode.
func (m OverwriteMode) String() string {
	switch m {
	case OverwriteAll:
		return "overwrite"
	case SkipAll:
		return "skip"
	default:
		return "ask"
	}
}

// ErrSkipped is returned by Create when an existing file is kept
var ErrSkipped = errors.New("file exists, skipped")

// FileCreator creates output files and applies the overwrite policy.
// Answering "all" in a prompt switches the mode for the remaining files.
type FileCreator struct {
	mode OverwriteMode
	in   *bufio.Reader
	out  io.Writer
}

// NewFileCreator returns a creator reading prompt answers from in and
// writing questions to out. in and out are only used in Ask mode.
func NewFileCreator(mode OverwriteMode, in io.Reader, out io.Writer) *FileCreator {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &FileCreator{mode: mode, in: bufio.NewReader(in), out: out}
}

// Mode returns the current policy, which an answer may have changed.
func (c *FileCreator) Mode() OverwriteMode {
	return c.mode
}

// Create creates or truncates filename. It returns ErrSkipped when the file
// exists and the policy keeps it.
func (c *FileCreator) Create(filename string) (*os.File, error) {
	if _, err := os.Stat(filename); err == nil {
		overwrite, err := c.shouldOverwrite(filename)
		if err != nil {
			return nil, err
		}
		if !overwrite {
			return nil, ErrSkipped
		}
	}
	return os.Create(filename)
}

func (c *FileCreator) shouldOverwrite(filename string) (bool, error) {
	switch c.mode {
	case OverwriteAll:
		return true, nil
	case SkipAll:
		return false, nil
	}

	for {
		fmt.Fprintf(c.out, "WARNING! osmpoly wanted to create the file %s, but it exists already. [s]kip, [o]verwrite, s[k]ip all, overwrite [a]ll?\n", filename)

		line, err := c.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if err != nil && answer == "" {
			// no more input: keep the existing file
			return false, fmt.Errorf("read answer: %w", err)
		}

		switch answer {
		case "s":
			return false, nil
		case "o":
			return true, nil
		case "k":
			c.mode = SkipAll
			return false, nil
		case "a":
			c.mode = OverwriteAll
			return true, nil
		}
	}
}
