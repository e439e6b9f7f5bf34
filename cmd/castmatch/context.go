package main

import (
	"encoding/json"
	"fmt"
)

// Run executes the context command.
func (c *ContextCmd) Run(deps *Dependencies) error {
	page, err := loadPageContext(deps, c.URL, c.HTML, c.Browser)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(page)
}
