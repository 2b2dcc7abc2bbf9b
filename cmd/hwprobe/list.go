// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/db47h/hwprobe/api"
	"github.com/db47h/hwprobe/netlist"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list --netlist file",
	Short: "list the wires and memories of a circuit.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nl, err := setup(cmd)
		if err != nil {
			return err
		}
		return list(nl, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("netlist", "", "circuit netlist file (YAML)")
	_ = listCmd.MarkFlagRequired("netlist")
}

// list prints one line per wire with its width, then one line per memory with
// its width and depth.
//
func list(nl *netlist.Netlist, out io.Writer) error {
	c, err := nl.Build()
	if err != nil {
		return err
	}
	reg := api.NewRegistry(log.StandardLogger())
	c.Declare(reg)
	tw := tabwriter.NewWriter(out, 0, 8, 1, ' ', 0)
	for _, n := range reg.Values() {
		fmt.Fprintf(tw, "wire\t%s\t%s\n", n, reg.Value(n).Width())
	}
	for _, n := range reg.Memories() {
		m := reg.Memory(n)
		fmt.Fprintf(tw, "mem\t%s\t%s\t%s\n", n, m.Width(), m.Depth())
	}
	return tw.Flush()
}
