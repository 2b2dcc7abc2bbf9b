// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/db47h/hwprobe/api"
	"github.com/db47h/hwprobe/netlist"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var serveCmd = &cobra.Command{
	Use:   "serve --netlist file",
	Short: "serve the introspection protocol on stdin/stdout.",
	Long: `Build the circuit described by the netlist file, then read commands from
standard input, one per line, and write one response line per command to
standard output until a "quit" line or the end of the input. Diagnostics are
written to standard error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nl, err := setup(cmd)
		if err != nil {
			return err
		}
		var tee io.Writer
		if name := getString(cmd, "tee"); name != "" {
			f, err := os.Create(name)
			if err != nil {
				return errors.Wrap(err, "create transcript")
			}
			defer f.Close()
			bw := bufio.NewWriter(f)
			defer bw.Flush()
			tee = bw
		}
		var prompt func()
		if getFlag(cmd, "prompt") && term.IsTerminal(int(os.Stdin.Fd())) {
			prompt = func() { fmt.Fprint(cmd.ErrOrStderr(), "> ") }
		}
		return serve(nl, cmd.InOrStdin(), cmd.OutOrStdout(), tee, prompt)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("netlist", "", "circuit netlist file (YAML)")
	serveCmd.Flags().String("tee", "", "write a transcript of all input lines to this file")
	serveCmd.Flags().Bool("prompt", false, "print a prompt on stderr when stdin is a terminal")
	_ = serveCmd.MarkFlagRequired("netlist")
}

// serve builds the circuit and runs a session over in and out.
//
func serve(nl *netlist.Netlist, in io.Reader, out io.Writer, tee io.Writer, prompt func()) error {
	c, err := nl.Build()
	if err != nil {
		return err
	}
	it := api.NewInterpreter(c, log.WithField("circuit", c.Name()))
	s := api.NewSession(it)
	if tee != nil {
		s.SetTranscript(tee)
	}
	if prompt != nil {
		s.SetPrompt(prompt)
	}
	log.WithFields(log.Fields{
		"wires": len(it.Registry().Values()),
		"mems":  len(it.Registry().Memories()),
	}).Debug("session started")
	return s.Run(in, out)
}
