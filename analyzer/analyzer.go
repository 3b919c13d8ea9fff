// Package analyzer reports struct fields whose doc comments should be help
// tags, with a suggested fix that performs the rewrite.
package analyzer

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"github.com/arran4/go-styledhelp/model"
	"github.com/arran4/go-styledhelp/parsers"
	"github.com/arran4/go-styledhelp/parsers/gosource"
)

// Analyzer checks opted-in structs for fields documented by comments instead
// of help tags.
var Analyzer = &analysis.Analyzer{
	Name: "styledhelp",
	Doc:  "report struct field doc comments that should be help tags",
	URL:  "https://github.com/arran4/go-styledhelp",
	Run:  run,
}

var opts = parsers.DefaultParseOptions()

func init() {
	Analyzer.Flags.StringVar(&opts.Directive, "directive", opts.Directive, "comment directive that opts a struct in")
	Analyzer.Flags.BoolVar(&opts.All, "all", opts.All, "check every struct, not only opted-in ones")
	Analyzer.Flags.StringVar(&opts.Keys.Arg, "arg-key", opts.Keys.Arg, "struct tag key of the argument definition")
	Analyzer.Flags.StringVar(&opts.Keys.Help, "help-key", opts.Keys.Help, "struct tag key the help text is written to")
	Analyzer.Flags.StringVar(&opts.Keys.LongHelp, "long-help-key", opts.Keys.LongHelp, "struct tag key of explicit long help")
	Analyzer.Flags.StringVar(&opts.Keys.Style, "style-key", opts.Keys.Style, "struct tag key that marks styled help")
	Analyzer.Flags.StringVar(&opts.Keys.StyleName, "style-name", opts.Keys.StyleName, "formatter name written to the style key")
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, f := range pass.Files {
		tf := pass.Fset.File(f.Pos())
		if tf == nil {
			continue
		}
		src, err := pass.ReadFile(tf.Name())
		if err != nil {
			return nil, err
		}
		file, err := gosource.ParseFile(token.NewFileSet(), tf.Name(), src, opts)
		if err != nil {
			return nil, err
		}
		for _, w := range file.Warnings {
			pass.Reportf(f.Pos(), "skipping field: %v", w)
		}
		report(pass, tf, file)
	}
	return nil, nil
}

// report emits one diagnostic per rewritten field. Edits are computed on a
// private file set, so offsets are mapped back onto the pass's file.
func report(pass *analysis.Pass, tf *token.File, file *gosource.File) {
	var order []*model.Field
	byField := map[*model.Field][]analysis.TextEdit{}
	for _, e := range file.Edits() {
		if _, ok := byField[e.Field]; !ok {
			order = append(order, e.Field)
		}
		byField[e.Field] = append(byField[e.Field], analysis.TextEdit{
			Pos:     tf.Pos(e.Start),
			End:     tf.Pos(e.End),
			NewText: []byte(e.Text),
		})
	}
	for i := len(order) - 1; i >= 0; i-- {
		field := order[i]
		pos := tf.Pos(file.Fset.Position(field.Pos).Offset)
		pass.Report(analysis.Diagnostic{
			Pos:     pos,
			Message: message(field),
			SuggestedFixes: []analysis.SuggestedFix{{
				Message:   "Move doc comment into help tag",
				TextEdits: byField[field],
			}},
		})
	}
}

func message(field *model.Field) string {
	arg := field.Arg()
	if arg == nil || arg.Help == nil {
		return fmt.Sprintf("field %s has an empty doc comment", field.Name)
	}
	if arg.Help.Styled {
		return fmt.Sprintf("field %s doc comment should be a styled help tag", field.Name)
	}
	return fmt.Sprintf("field %s doc comment should be a help tag", field.Name)
}
