// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hwprobe loads a circuit netlist and serves the introspection
// protocol on its standard input and output.
//
//	hwprobe serve --netlist circuit.yaml [--tee transcript.txt] [--prompt] [--verbose]
//	hwprobe list --netlist circuit.yaml
//
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
