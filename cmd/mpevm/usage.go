package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// usageError reports a wrong invocation. It is printed without the
// surrounding error chain and maps to exit status 2.
type usageError struct {
	line string
}

func (e *usageError) Error() string {
	return e.line
}

func exactlyOneInput(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &usageError{line: fmt.Sprintf("USAGE: %s <miniprot GFF file>", cmd.CommandPath())}
	}
	return nil
}
