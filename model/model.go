package model

import (
	"go/token"
	"strings"
)

// AnnotationKind identifies what an annotation means to the rewriter.
type AnnotationKind int

const (
	// KindOther is any annotation the rewriter carries through untouched.
	KindOther AnnotationKind = iota
	// KindDoc is a single documentation comment line.
	KindDoc
	// KindHelp is an explicit help annotation.
	KindHelp
	// KindLongHelp is an explicit long help annotation.
	KindLongHelp
	// KindArg is the argument-definition annotation that receives generated help.
	KindArg
)

func (k AnnotationKind) String() string {
	switch k {
	case KindDoc:
		return "doc"
	case KindHelp:
		return "help"
	case KindLongHelp:
		return "long_help"
	case KindArg:
		return "arg"
	default:
		return "other"
	}
}

// DataModel is the result of parsing a tree of source files.
type DataModel struct {
	// FileSet is the token.FileSet used for parsing.
	FileSet *token.FileSet
	// ModulePath is the module path read from go.mod, empty when there is none.
	ModulePath string
	// Declarations is every eligible declaration found, in walk order.
	Declarations []*Declaration
}

// Declaration is a structured-record declaration whose fields may carry help.
type Declaration struct {
	// Name is the type name.
	Name string
	// File is the path of the file the declaration lives in.
	File string
	// ImportPath is the import path of the package containing the declaration.
	ImportPath string
	// PackageName is the Go package name.
	PackageName string
	// Pos is the position of the type name.
	Pos token.Pos
	// Fields are the named fields in source order.
	Fields []*Field
}

// Field is a named element with an ordered list of annotations.
type Field struct {
	Name        string
	Annotations []*Annotation
	// Pos is the position of the field name, used for diagnostics.
	Pos token.Pos
}

// Annotation is a key plus an optional textual value.
//
// Doc annotations hold one comment line in Value. Arg annotations hold the raw
// argument-definition value and, once rewritten, the generated Help.
type Annotation struct {
	Kind  AnnotationKind
	Key   string
	Value string
	// Help is the help value merged into an Arg annotation.
	Help *HelpValue
	// Implicit marks an Arg annotation created by the rewriter because the
	// field had none. Implicit annotations render only their help keys.
	Implicit bool
}

// HelpValue is the generated help for a field.
type HelpValue struct {
	Text string
	// Styled means Text must be passed through the styling formatter.
	Styled bool
}

// Arg returns the field's argument-definition annotation, or nil.
func (f *Field) Arg() *Annotation {
	for _, a := range f.Annotations {
		if a.Kind == KindArg {
			return a
		}
	}
	return nil
}

// Docs returns the field's doc annotations in source order.
func (f *Field) Docs() []*Annotation {
	var docs []*Annotation
	for _, a := range f.Annotations {
		if a.Kind == KindDoc {
			docs = append(docs, a)
		}
	}
	return docs
}

// Has reports whether the field carries an annotation of kind k.
func (f *Field) Has(k AnnotationKind) bool {
	for _, a := range f.Annotations {
		if a.Kind == k {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{Name: f.Name, Pos: f.Pos}
	for _, a := range f.Annotations {
		na := *a
		if a.Help != nil {
			h := *a.Help
			na.Help = &h
		}
		c.Annotations = append(c.Annotations, &na)
	}
	return c
}

// Options splits a comma separated annotation value into its options.
// Empty options are dropped.
func (a *Annotation) Options() []string {
	var opts []string
	for _, o := range strings.Split(a.Value, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			opts = append(opts, o)
		}
	}
	return opts
}

// HasOption reports whether the annotation value contains the option name,
// either bare or as name=value.
func (a *Annotation) HasOption(name string) bool {
	for _, o := range a.Options() {
		k, _, _ := strings.Cut(o, "=")
		if strings.TrimSpace(k) == name {
			return true
		}
	}
	return false
}

// Status summarises what the rewriter did, or would do, with a field.
func (f *Field) Status() string {
	if f.Has(KindHelp) || f.Has(KindLongHelp) {
		return "explicit"
	}
	if arg := f.Arg(); arg != nil && arg.Help != nil {
		if arg.Help.Styled {
			return "styled"
		}
		return "plain"
	}
	return "none"
}
