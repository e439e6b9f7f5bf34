package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/fwojciec/castmatch"
)

// Run executes the match command.
func (c *MatchCmd) Run(deps *Dependencies) error {
	logger := deps.Logger.With("resolution", uuid.NewString())
	logger.Debug("matching page", "url", c.URL)

	page, err := loadPageContext(deps, c.URL, c.HTML, c.Browser)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	resolution, err := deps.Resolver.Resolve(deps.Ctx, page, c.Title)
	if err != nil {
		switch castmatch.ErrorCode(err) {
		case castmatch.ENOTFOUND:
			fmt.Fprintln(deps.Stderr, "Couldn't match this page to an Overcast episode. Try a page with a clear episode title.")
		case castmatch.ERATELIMIT:
			fmt.Fprintln(deps.Stderr, "Overcast is rate-limiting requests. Try again in a few minutes.")
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", castmatch.ErrorMessage(err))
		}
		return err
	}

	var itemID string
	if c.ItemID {
		itemID, err = deps.Pages.ItemID(deps.Ctx, resolution.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", castmatch.ErrorMessage(err))
			return err
		}
	}

	if c.JSON {
		out := struct {
			URL    string `json:"url"`
			Source string `json:"source"`
			ItemID string `json:"itemID,omitempty"`
		}{resolution.URL, resolution.Source, itemID}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(deps.Stdout, "%s (%s)\n", resolution.URL, resolution.Source)
	if itemID != "" {
		fmt.Fprintf(deps.Stdout, "item ID: %s\n", itemID)
	}
	return nil
}
