// Command goschedcp runs detectable-precedences scheduling propagation over
// a set of unary-resource tasks given on the command line.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.StandardLogger().Errorf("goschedcp: %v", err)
		os.Exit(1)
	}
}
