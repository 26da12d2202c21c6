// SPDX-License-Identifier: MPL-2.0

// Package layout assembles complete help pages from items.
//
// Items are partitioned into sections (positional items, options, commands)
// with the item predicates. Each section is rendered with its own column
// width, the maximum FullWidth of its items, so descriptions line up within a
// section and the expanded-rendering width contract always holds.
package layout
