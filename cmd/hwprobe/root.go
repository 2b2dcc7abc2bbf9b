// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"runtime/debug"

	"github.com/db47h/hwprobe/api"
	"github.com/db47h/hwprobe/netlist"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at link time with -ldflags "-X main.Version=...".
var Version string

var rootCmd = &cobra.Command{
	Use:   "hwprobe",
	Short: "Circuit simulator with a peek/poke introspection protocol.",
	Long: `hwprobe simulates a circuit described by a YAML netlist and lets a driver
inspect and modify its wires and memories, and clock it, through a line based
text protocol.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !getFlag(cmd, "version") {
			return cmd.Help()
		}
		fmt.Fprint(cmd.OutOrStdout(), "hwprobe ")
		if Version != "" {
			fmt.Fprint(cmd.OutOrStdout(), Version)
		} else if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Fprint(cmd.OutOrStdout(), info.Main.Version)
		} else {
			fmt.Fprint(cmd.OutOrStdout(), "(unknown version)")
		}
		fmt.Fprintf(cmd.OutOrStdout(), " (%s %s)\n", api.HostName, api.APIVersion)
		return nil
	},
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

func getFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(err)
	}
	return v
}

func getString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(err)
	}
	return v
}

// setup configures logging and loads the netlist named by the --netlist flag.
//
func setup(cmd *cobra.Command) (*netlist.Netlist, error) {
	log.SetOutput(cmd.ErrOrStderr())
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	return netlist.LoadFile(getString(cmd, "netlist"))
}
