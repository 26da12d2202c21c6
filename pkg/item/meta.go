// SPDX-License-Identifier: MPL-2.0

package item

type (
	// Meta is a node of a usage grammar. This package only produces leaves:
	// a MetaItem, optionally wrapped in a MetaOptional.
	Meta interface {
		// String renders the compact usage form.
		String() string
		isMeta()
	}

	// MetaItem is a mandatory item.
	MetaItem struct {
		Item Item
	}

	// MetaOptional marks its inner meta as optional.
	MetaOptional struct {
		Inner Meta
	}
)

// Required wraps it as a usage leaf. A non-required item is wrapped in a
// MetaOptional.
func Required(it Item, required bool) Meta {
	if required {
		return MetaItem{Item: it}
	}
	return MetaOptional{Inner: MetaItem{Item: it}}
}

// Leaf returns the item at the bottom of m.
func Leaf(m Meta) Item {
	for {
		switch v := m.(type) {
		case MetaItem:
			return v.Item
		case MetaOptional:
			m = v.Inner
		default:
			return nil
		}
	}
}

// IsOptional reports whether m is wrapped as optional.
func IsOptional(m Meta) bool {
	_, ok := m.(MetaOptional)
	return ok
}

func (m MetaItem) String() string { return m.Item.Compact() }

func (m MetaOptional) String() string {
	inner := m.Inner.String()
	if inner == "" {
		return ""
	}
	return "[" + inner + "]"
}

func (MetaItem) isMeta()     {}
func (MetaOptional) isMeta() {}
