// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package api

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Quit is the input line that ends a session.
//
const Quit = "quit"

// A Session reads commands line by line, evaluates them and writes the
// responses, one per line.
//
type Session struct {
	it     *Interpreter
	tee    io.Writer
	prompt func()
}

// NewSession returns a new session for the given interpreter.
//
func NewSession(it *Interpreter) *Session {
	return &Session{it: it}
}

// SetTranscript sets a writer that receives a copy of every input line,
// including the final quit. If w has a Flush method, it is called after each
// line.
//
func (s *Session) SetTranscript(w io.Writer) {
	s.tee = w
}

// SetPrompt sets a function called before reading each input line.
//
func (s *Session) SetPrompt(f func()) {
	s.prompt = f
}

// Run reads commands from in and writes responses to out until a quit line or
// the end of the input. Lines can be of any length. Command failures do not
// end the session; Run only returns an error if reading in or writing out or
// the transcript fails.
//
func (s *Session) Run(in io.Reader, out io.Writer) error {
	br := bufio.NewReader(in)
	for {
		line, ok, err := s.next(br)
		if err != nil {
			return errors.Wrap(err, "read command")
		}
		if !ok {
			return nil
		}
		if err := s.transcribe(line); err != nil {
			return err
		}
		if line == Quit {
			return nil
		}
		if _, err := io.WriteString(out, s.it.Eval(line)+"\n"); err != nil {
			return errors.Wrap(err, "write response")
		}
	}
}

// next returns the next input line without its line terminator. ok is false
// at the end of the input.
//
func (s *Session) next(br *bufio.Reader) (line string, ok bool, err error) {
	if s.prompt != nil {
		s.prompt()
	}
	line, err = br.ReadString('\n')
	switch {
	case err == io.EOF:
		if line == "" {
			return "", false, nil
		}
	case err != nil:
		return "", false, err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true, nil
}

func (s *Session) transcribe(line string) error {
	if s.tee == nil {
		return nil
	}
	if _, err := io.WriteString(s.tee, line+"\n"); err != nil {
		return errors.Wrap(err, "write transcript")
	}
	if f, ok := s.tee.(interface{ Flush() error }); ok {
		return errors.Wrap(f.Flush(), "flush transcript")
	}
	return nil
}
