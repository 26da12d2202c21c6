// SPDX-License-Identifier: MPL-2.0

package layout

import (
	"slices"
	"strings"

	"github.com/clidoc/clidoc/pkg/item"
)

const (
	// TitlePositional heads the positional section.
	TitlePositional = "Available positional items:"
	// TitleOptions heads the flag and argument section.
	TitleOptions = "Available options:"
	// TitleCommands heads the command section.
	TitleCommands = "Available commands:"
)

// Section is a titled group of items sharing one column width.
type Section struct {
	Title string
	Items []item.Item
}

// Sections partitions items into the positional, option and command
// sections, keeping declaration order. Empty sections are omitted.
func Sections(items []item.Item) []Section {
	groups := []struct {
		title string
		keep  func(item.Item) bool
	}{
		{TitlePositional, item.IsPositional},
		{TitleOptions, item.IsFlag},
		{TitleCommands, item.IsCommand},
	}

	var sections []Section
	for _, g := range groups {
		var picked []item.Item
		for _, it := range items {
			if g.keep(it) {
				picked = append(picked, it)
			}
		}
		if len(picked) > 0 {
			sections = append(sections, Section{Title: g.title, Items: picked})
		}
	}
	return sections
}

// Width returns the column width for items: their largest FullWidth.
func Width(items []item.Item) int {
	width := 0
	for _, it := range items {
		width = max(width, it.FullWidth())
	}
	return width
}

// Render writes the title followed by one expanded row per item.
func (s Section) Render(opts Options) string {
	items := s.Items
	if opts.Sort {
		items = slices.Clone(items)
		item.Sort(items)
	}

	width := Width(items)

	rows := make([]string, 0, len(items)+1)
	rows = append(rows, opts.Styles.Title.Render(s.Title))
	for _, it := range items {
		if opts.NoEnv {
			it = withoutEnv(it)
		}
		row := item.Expanded(it, width, opts.Env)
		if row == "" {
			continue
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// withoutEnv drops the environment binding so no annotation is rendered.
func withoutEnv(it item.Item) item.Item {
	if a, ok := it.(item.Argument); ok {
		a.Env = ""
		return a
	}
	return it
}
