package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/rtfm"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	for _, s := range rtfm.AllSources() {
		line := fmt.Sprintf("%-12s %s", s.Key, s.URL)
		if len(s.Aliases) > 0 {
			line += fmt.Sprintf("  (aliases: %s)", strings.Join(s.Aliases, ", "))
		}
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
