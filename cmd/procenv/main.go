// Package main provides the procenv command: a small tool that exercises the process
// capability of the running host and checks providers against the contract suite.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ruffel/procenv/detect"
)

func main() {
	boot, err := detect.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := newApp(detect.New)
	code := a.run(context.Background(), boot)

	a.process(boot).Exit(code)
}
