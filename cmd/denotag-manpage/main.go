package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/denotag/cmd/denotag"
	"github.com/arthur-debert/denotag/internal/version"
)

func main() {
	if err := generate(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

func generate(w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "DENOTAG",
		Section: "1",
		Source:  "denotag " + version.Version,
		Manual:  "denotag manual",
	}
	return doc.GenMan(denotag.NewRootCmd(), header, w)
}
