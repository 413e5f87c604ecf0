// SPDX-License-Identifier: MIT

// Command bfsviz picks shortest paths on a small positioned graph.
//
// It drives the same selection machine a graphical front end would, either
// by canvas coordinates (click) or by node ID (select), and prints the
// resulting frames as styled text or JSON.
//
//	bfsviz path A C
//	bfsviz click 750,400 642,605
//	bfsviz --graph my.yaml --json select A I
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
