// SPDX-License-Identifier: Apache-2.0

// Command valueset evaluates value set expressions and merges weighted
// binnings from the command line:
//
//	valueset union "{1},[2,3)" "{},[3,5]"
//	valueset contains "{},(0,10]" 10
//	valueset merge --config bins.yaml --min-weight 0.05
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
