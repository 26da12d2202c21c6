// SPDX-License-Identifier: MPL-2.0

package clidesc

import (
	"fmt"

	"github.com/clidoc/clidoc/pkg/item"
)

// helpFlag is the implicit flag appended when Description.HelpFlag allows it.
var helpFlag = item.Flag{Name: item.Both('h', "help"), Help: "Prints help information"}

// Named returns the alias set of a flag or argument entry.
func (e *Entry) Named() item.Named {
	n := item.Named{Long: e.Long, Help: e.Help}
	for _, s := range e.Short {
		n.Short = append(n.Short, firstRune(s))
	}
	if e.Env != "" {
		n.Env = []string{e.Env}
	}
	return n
}

// Item converts the entry after validating it.
func (e *Entry) Item() (item.Item, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e.item(), nil
}

// item converts an entry that already passed validation.
func (e *Entry) item() item.Item {
	switch e.Kind {
	case EntryHeading:
		return item.NewDecoration(e.Help)
	case EntryFlag:
		n := e.Named()
		return n.Flag()
	case EntryArgument:
		n := e.Named()
		return n.Argument(e.Metavar)
	case EntryPositional:
		return item.Positional{Metavar: e.Metavar, Help: e.Help}
	case EntryCommand:
		c := item.Command{Name: e.Name, Help: e.Help}
		if e.Alias != "" {
			c.Short = firstRune(e.Alias)
		}
		return c
	}
	panic(fmt.Sprintf("clidesc: unvalidated entry kind %q", e.Kind))
}

// Items validates the description and returns its items in declaration
// order, followed by the implicit help flag when enabled.
func (d *Description) Items() ([]item.Item, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	items := make([]item.Item, 0, len(d.Entries)+1)
	for i := range d.Entries {
		items = append(items, d.Entries[i].item())
	}
	if d.HasHelpFlag() {
		items = append(items, helpFlag)
	}
	return items, nil
}

// Metas validates the description and returns the usage leaves of its
// entries. The implicit help flag is not part of the usage line.
func (d *Description) Metas() ([]item.Meta, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	metas := make([]item.Meta, 0, len(d.Entries))
	for i := range d.Entries {
		e := &d.Entries[i]
		metas = append(metas, item.Required(e.item(), e.Required))
	}
	return metas, nil
}
