package go_styledhelp

import (
	"fmt"
	"io"
)

// HelpSyntax writes a guide to the comment and tag forms the rewriter
// understands.
func HelpSyntax(w io.Writer) error {
	_, err := fmt.Fprint(w, `
Styledhelp Syntax Guide

The 'styledhelp' tool turns the doc comments of struct fields into help tags.

Opting In:

  Mark a struct with the directive in its doc comment, or run with --all.

  //styledhelp:generate
  type Options struct { ... }

Field Documentation:

  Every doc comment line of a field becomes part of its help text. Lines are
  joined with a single space.

  // Output file to write.
  // Defaults to stdout.
  Output string `+"`arg:\"output\"`"+`

  becomes

  Output string `+"`arg:\"output\" help:\"Output file to write. Defaults to stdout.\"`"+`

Styled Help:

  When the text contains a style marker the help is tagged for the cstr
  formatter, which renders the markup at runtime.

  // The <c>name</> of the <y>service</>.
  Name string `+"`arg:\"name\"`"+`

  becomes

  Name string `+"`arg:\"name\" help:\"The <c>name</> of the <y>service</>.\" helpfmt:\"cstr\"`"+`

  Markers: <c> </> <s> <u> <k> <r> <g> <b> <y> <m> <cyan> <white>
  Use '<<' for a literal '<' inside styled help.

Explicit Help:

  A field that already has a help or long_help tag, or whose arg tag carries
  a help= or long_help= option, is left untouched, doc comments included.

Directives:

  Comment directives such as //nolint:lll or //go:generate are kept and never
  become help text.

For more details, see: https://github.com/arran4/go-styledhelp
`)
	return err
}
