// Package rewriter turns the documentation lines of a field into a help value.
//
// The rewriter works on the language-neutral model in package model and never
// fails: fields it cannot improve are left alone.
package rewriter

import (
	"strings"

	"github.com/arran4/go-styledhelp/model"
)

// Rewriter carries the annotation keys used when a field has no
// argument-definition annotation of its own.
type Rewriter struct {
	Keys model.TagKeys
}

// New returns a Rewriter using keys.
func New(keys model.TagKeys) *Rewriter {
	return &Rewriter{Keys: keys}
}

// HasExplicitHelp reports whether field already has help of its own. Such a
// field is never rewritten and its doc lines are inert.
func HasExplicitHelp(field *model.Field) bool {
	for _, a := range field.Annotations {
		switch a.Kind {
		case model.KindHelp, model.KindLongHelp:
			return true
		case model.KindArg:
			if a.Help != nil || a.HasOption("help") || a.HasOption("long_help") {
				return true
			}
		}
	}
	return false
}

// ExtractDocLines returns the doc payloads of field in source order, each
// with exactly one leading space removed.
func ExtractDocLines(field *model.Field) []string {
	var lines []string
	for _, a := range field.Docs() {
		lines = append(lines, strings.TrimPrefix(a.Value, " "))
	}
	return lines
}

// Combine joins doc lines with a single space.
func Combine(lines []string) string {
	return strings.Join(lines, " ")
}

// BuildHelpValue wraps text as a help value.
func BuildHelpValue(text string, styled bool) *model.HelpValue {
	return &model.HelpValue{Text: text, Styled: styled}
}

// Rewrite converts the doc lines of field into a help value merged into its
// argument-definition annotation and removes the doc lines. It reports
// whether field was modified.
func (r *Rewriter) Rewrite(field *model.Field) bool {
	if HasExplicitHelp(field) {
		return false
	}
	docs := field.Docs()
	if len(docs) == 0 {
		return false
	}
	text := Combine(ExtractDocLines(field))
	stripDocs(field)
	if strings.TrimSpace(text) == "" {
		return true
	}

	value := BuildHelpValue(text, ContainsStyleMarker(text))
	dropKey(field, r.Keys.Style)
	arg := field.Arg()
	if arg == nil {
		arg = &model.Annotation{Kind: model.KindArg, Key: r.Keys.Arg, Implicit: true}
		field.Annotations = append(field.Annotations, arg)
	}
	arg.Help = value
	return true
}

// RewriteDeclaration rewrites every field of decl and returns the ones that
// changed.
func (r *Rewriter) RewriteDeclaration(decl *model.Declaration) []*model.Field {
	var changed []*model.Field
	for _, f := range decl.Fields {
		if r.Rewrite(f) {
			changed = append(changed, f)
		}
	}
	return changed
}

func stripDocs(field *model.Field) {
	filter(field, func(a *model.Annotation) bool { return a.Kind != model.KindDoc })
}

// dropKey removes a leftover style marker so the new help value decides it.
func dropKey(field *model.Field, key string) {
	if key == "" {
		return
	}
	filter(field, func(a *model.Annotation) bool { return a.Kind != model.KindOther || a.Key != key })
}

func filter(field *model.Field, keep func(*model.Annotation) bool) {
	kept := field.Annotations[:0]
	for _, a := range field.Annotations {
		if keep(a) {
			kept = append(kept, a)
		}
	}
	field.Annotations = kept
}
