// SPDX-License-Identifier: MPL-2.0

package layout

import (
	"fmt"
	"strings"

	"github.com/clidoc/clidoc/pkg/clidesc"
	"github.com/clidoc/clidoc/pkg/item"
)

const (
	usagePrefix   = "Usage:"
	examplesTitle = "Examples:"
	exampleIndent = "    "
)

type (
	// MarkdownRenderer turns markdown into terminal text.
	MarkdownRenderer func(markdown string) (string, error)

	// Options controls page rendering.
	Options struct {
		// Env resolves environment annotations; nil reads the process environment.
		Env item.EnvLookup
		// NoEnv suppresses environment annotations entirely.
		NoEnv bool
		// Sort orders each section with item.Sort instead of declaration order.
		Sort bool
		// Styles decorates titles and the usage line.
		Styles Styles
		// Markdown renders about and footer text; nil prints them verbatim.
		Markdown MarkdownRenderer
	}

	// Page is a complete help page.
	Page struct {
		Program  string
		Usage    []item.Meta
		About    string
		Sections []Section
		Examples []clidesc.Example
		Footer   string
	}
)

// Build lays out the page for desc.
func Build(desc *clidesc.Description) (*Page, error) {
	items, err := desc.Items()
	if err != nil {
		return nil, err
	}
	metas, err := desc.Metas()
	if err != nil {
		return nil, err
	}

	return &Page{
		Program:  desc.Program,
		Usage:    metas,
		About:    desc.About,
		Sections: Sections(items),
		Examples: desc.Examples,
		Footer:   desc.Footer,
	}, nil
}

// Usage renders the one-line synopsis, e.g.
// "Usage: tar [-v] -f FILE <PATH> COMMAND ...". Empty fragments are
// skipped and the command placeholder appears once.
func Usage(program string, metas []item.Meta) string {
	parts := []string{usagePrefix, program}
	seenCommand := false
	for _, m := range metas {
		frag := m.String()
		if frag == "" {
			continue
		}
		if leaf := item.Leaf(m); leaf != nil && item.IsCommand(leaf) {
			if seenCommand {
				continue
			}
			seenCommand = true
		}
		parts = append(parts, frag)
	}
	return strings.Join(parts, " ")
}

// RenderUsage renders the synopsis line with the usage style applied to the
// prefix.
func (p *Page) RenderUsage(opts Options) string {
	line := Usage(p.Program, p.Usage)
	return opts.Styles.Usage.Render(usagePrefix) + strings.TrimPrefix(line, usagePrefix)
}

// Render renders the whole page: usage, about, sections, examples and
// footer, separated by blank lines and terminated by a newline.
func (p *Page) Render(opts Options) (string, error) {
	blocks := []string{p.RenderUsage(opts)}

	if p.About != "" {
		about, err := renderMarkdown(opts.Markdown, p.About)
		if err != nil {
			return "", fmt.Errorf("render about text: %w", err)
		}
		blocks = append(blocks, about)
	}

	for _, s := range p.Sections {
		blocks = append(blocks, s.Render(opts))
	}

	if len(p.Examples) > 0 {
		blocks = append(blocks, p.renderExamples(opts))
	}

	if p.Footer != "" {
		footer, err := renderMarkdown(opts.Markdown, p.Footer)
		if err != nil {
			return "", fmt.Errorf("render footer text: %w", err)
		}
		blocks = append(blocks, footer)
	}

	return strings.Join(blocks, "\n\n") + "\n", nil
}

func (p *Page) renderExamples(opts Options) string {
	lines := []string{opts.Styles.Title.Render(examplesTitle)}
	for _, ex := range p.Examples {
		if ex.Description != "" {
			lines = append(lines, exampleIndent+ex.Description)
		}
		if len(ex.Args) > 0 || ex.Description == "" {
			lines = append(lines, exampleIndent+opts.Styles.Command.Render("$ "+ex.CommandLine(p.Program)))
		}
	}
	return strings.Join(lines, "\n")
}

func renderMarkdown(render MarkdownRenderer, text string) (string, error) {
	if render == nil {
		return text, nil
	}
	out, err := render(text)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
