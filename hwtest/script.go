// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/hwprobe/api"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
)

// ParseScript parses a protocol transcript. Command lines start with "> " and
// are followed by exactly one expected response line, except for the quit
// command. Empty lines and lines starting with '#' are ignored.
//
//	# poke and read back
//	> wire_poke Top.io_in h1f
//	true
//	> wire_peek Top.io_in
//	31
//
func ParseScript(script string) (cmds, want []string, err error) {
	expect := false
	for i, l := range strings.Split(strings.TrimSuffix(script, "\n"), "\n") {
		l = strings.TrimRight(l, "\r")
		if !expect && (l == "" || l[0] == '#') {
			continue
		}
		cmd, isCmd := strings.CutPrefix(l, "> ")
		switch {
		case expect && isCmd:
			return nil, nil, errors.Errorf("line %d: missing response to %q", i+1, cmds[len(cmds)-1])
		case expect:
			want = append(want, l)
			expect = false
		case !isCmd:
			return nil, nil, errors.Errorf("line %d: response without command", i+1)
		default:
			cmds = append(cmds, cmd)
			expect = cmd != api.Quit
		}
	}
	if expect {
		return nil, nil, errors.Errorf("missing response to %q", cmds[len(cmds)-1])
	}
	return cmds, want, nil
}

// RunScript runs the commands of a transcript in a new session of it and
// compares the responses with the expected ones.
//
func RunScript(t testing.TB, it *api.Interpreter, script string) {
	t.Helper()
	cmds, want, err := ParseScript(script)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) == 0 {
		return
	}
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(cmds, "\n") + "\n")
	if err := api.NewSession(it).Run(in, &out); err != nil {
		t.Fatal(err)
	}
	got := strings.Split(out.String(), "\n")
	got = got[:len(got)-1]
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("responses mismatch (-want +got):\n%s", diff)
	}
}
