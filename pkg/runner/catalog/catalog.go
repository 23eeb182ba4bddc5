// Package catalog provides CLI helpers to list the block types the slash
// menu offers.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/menu"
)

// Catalog prints the block type catalog, optionally narrowed by a slash
// filter exactly as the menu would narrow it.
type Catalog struct {
	Filter string
	JSON   bool
	Out    io.Writer
}

// Do renders the matching entries to Out, or color.Output when unset.
func (c *Catalog) Do(ctx context.Context) error {
	entries := block.Catalog()
	if c.Filter != "" {
		if !menu.IsCommand(c.Filter) {
			return fmt.Errorf("filter %q must start with %q", c.Filter, menu.Trigger)
		}
		entries = menu.Filter(entries, strings.ToLower(c.Filter))
	}

	out := c.Out
	if out == nil {
		out = color.Output
	}
	if c.JSON {
		return c.printJSON(out, entries)
	}
	c.Table(ctx, out, entries)
	return nil
}

func (c *Catalog) printJSON(out io.Writer, entries []block.Descriptor) error {
	if entries == nil {
		entries = []block.Descriptor{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: encode: %w", err)
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

// Table renders entries as an aligned table.
func (c *Catalog) Table(_ context.Context, out io.Writer, entries []block.Descriptor) {
	if termenv.EnvColorProfile() == termenv.Ascii {
		color.NoColor = true
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, faint.Sprint("No results"))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Icon"), bold.Sprint("Command"), bold.Sprint("Type"), bold.Sprint("Description"))
	for _, d := range entries {
		tbl.AddRow(d.Icon, d.Command, d.Label, faint.Sprint(d.Description))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
