package main

import (
	"fmt"

	"github.com/fwojciec/rtfm"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	source, err := rtfm.FindSource(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rtfm.ErrorMessage(err))
		return err
	}

	inv, err := deps.Inventories.FetchInventory(deps.Ctx, source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rtfm.ErrorMessage(err))
		return err
	}

	matches := inv.Search(c.Query)
	if len(matches) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found.")
		return nil
	}
	if len(matches) > c.Limit {
		matches = matches[:c.Limit]
	}

	for _, e := range matches {
		fmt.Fprintf(deps.Stdout, "%s\n    %s\n", e.Name, e.URL)
	}
	return nil
}
