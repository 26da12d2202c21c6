// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Catalog entries. Zero means "no catalog entry".
const (
	DescriptionNotFoundId Id = iota + 1
	DescriptionParseErrorId
	DescriptionInvalidId
	UnsupportedFormatId
	ConfigLoadFailedId
	WatchFailedId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is the Markdown guidance of an issue.
	MarkdownMsg string

	// Issue is a catalog entry with Markdown guidance.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

var (
	render = glamour.Render

	descriptionNotFoundIssue = &Issue{
		id: DescriptionNotFoundId,
		mdMsg: `
# Description file not found!

clidoc reads the help page of a program from a description file.

## Things you can try:
- Check the path passed on the command line
- Create a description, for example ` + "`tar.cue`" + `:
~~~cue
program: "tar"
about:   "Manipulate tape archives."
entries: [
	{kind: "flag", short: ["v"], long: ["verbose"], help: "Print processed files"},
]
~~~`,
	}

	descriptionParseErrorIssue = &Issue{
		id: DescriptionParseErrorId,
		mdMsg: `
# Failed to parse the description!

The file is not valid CUE, TOML or YAML, or it uses a field the schema does not know.

## Things you can try:
- Look at the position reported above and fix the syntax
- Check field names: program, about, footer, help_flag, entries, examples
- Entry fields are kind, help, short, long, metavar, env, name, alias and required`,
	}

	descriptionInvalidIssue = &Issue{
		id: DescriptionInvalidId,
		mdMsg: `
# The description is invalid!

Every problem is listed above with the path of the offending field.

## Common causes:
- A flag or argument without any short or long name
- A short or long name declared twice, or clashing with ` + "`-h, --help`" + `
- An argument or positional without a metavar

## Things you can try:
- Set ` + "`help_flag: false`" + ` to declare your own ` + "`-h`" + `
- Run ` + "`clidoc check FILE`" + ` after every edit`,
	}

	unsupportedFormatIssue = &Issue{
		id: UnsupportedFormatId,
		mdMsg: `
# Unsupported description format!

The format is picked from the file extension.

## Supported extensions:
- ` + "`.cue`" + `
- ` + "`.toml`" + `
- ` + "`.yaml`" + ` and ` + "`.yml`",
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the configuration!

## Things you can try:
- Show the file in use:
~~~
$ clidoc config path
~~~

- Recreate it with defaults:
~~~
$ clidoc config init
~~~

- Check overrides in the environment (` + "`CLIDOC_UI_COLOR_SCHEME`" + `, ` + "`CLIDOC_RENDER_MARKDOWN_STYLE`" + `, ...)`,
	}

	watchFailedIssue = &Issue{
		id: WatchFailedId,
		mdMsg: `
# Failed to watch the description!

## Things you can try:
- Make sure the directory of the description exists and is readable
- Raise the inotify watch limit on Linux:
~~~
$ sudo sysctl fs.inotify.max_user_watches=524288
~~~`,
	}

	issues = map[Id]*Issue{
		descriptionNotFoundIssue.Id():   descriptionNotFoundIssue,
		descriptionParseErrorIssue.Id(): descriptionParseErrorIssue,
		descriptionInvalidIssue.Id():    descriptionInvalidIssue,
		unsupportedFormatIssue.Id():     unsupportedFormatIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		watchFailedIssue.Id():           watchFailedIssue,
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the guidance with the named glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(strings.TrimSpace(string(i.mdMsg)), stylePath)
}

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
