// Package gosource maps annotated Go struct declarations onto the model and
// writes rewritten fields back as Go source.
package gosource

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/arran4/go-styledhelp/model"
	"github.com/arran4/go-styledhelp/parsers"
)

func init() {
	parsers.Register("gosource", &SourceParser{})
}

// SourceParser is the parsers.Parser for Go source trees.
type SourceParser struct{}

// File is one parsed Go source file and its eligible declarations.
type File struct {
	Name string
	Src  []byte
	Fset *token.FileSet
	AST  *ast.File
	// Declarations are the eligible struct declarations in source order.
	Declarations []*model.Declaration
	// Warnings collects fields that were skipped, such as fields with a
	// malformed struct tag.
	Warnings []error

	opts  *parsers.ParseOptions
	nodes map[*model.Field]*fieldNode
}

type fieldNode struct {
	field *ast.Field
	// docs are the comments that produced the field's doc annotations.
	docs []*ast.Comment
}

// Parse implements parsers.Parser. It walks fsys from root and returns every
// eligible declaration, with import paths derived from go.mod when present.
func (p *SourceParser) Parse(fsys fs.FS, root string, opts *parsers.ParseOptions) (*model.DataModel, error) {
	if opts == nil {
		opts = parsers.DefaultParseOptions()
	}
	fset := token.NewFileSet()
	d := &model.DataModel{FileSet: fset}
	if goModBytes, err := fs.ReadFile(fsys, path.Join(root, "go.mod")); err == nil {
		d.ModulePath = modfile.ModulePath(goModBytes)
	}

	files, err := parsers.GoFiles(fsys, root, opts)
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		f, err := fsys.Open(name)
		if err != nil {
			return nil, err
		}
		src, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		file, err := ParseFile(fset, name, src, opts)
		if err != nil {
			return nil, err
		}
		importPath := importPathFor(d.ModulePath, root, name)
		for _, decl := range file.Declarations {
			decl.ImportPath = importPath
			d.Declarations = append(d.Declarations, decl)
		}
	}
	return d, nil
}

func importPathFor(modPath, root, name string) string {
	if modPath == "" {
		return ""
	}
	dir := path.Dir(strings.TrimPrefix(strings.TrimPrefix(name, root), "/"))
	if dir == "." {
		return modPath
	}
	return path.Join(modPath, dir)
}

// ParseFile parses src and collects its eligible struct declarations.
func ParseFile(fset *token.FileSet, filename string, src []byte, opts *parsers.ParseOptions) (*File, error) {
	if opts == nil {
		opts = parsers.DefaultParseOptions()
	}
	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution|parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	file := &File{
		Name:  filename,
		Src:   src,
		Fset:  fset,
		AST:   f,
		opts:  opts,
		nodes: make(map[*model.Field]*fieldNode),
	}

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			if !opts.All && !hasDirective(ts.Doc, opts.Directive) && (gd.Lparen.IsValid() || !hasDirective(gd.Doc, opts.Directive)) {
				continue
			}
			file.Declarations = append(file.Declarations, file.declaration(ts, st))
		}
	}
	return file, nil
}

func (file *File) declaration(ts *ast.TypeSpec, st *ast.StructType) *model.Declaration {
	decl := &model.Declaration{
		Name:        ts.Name.Name,
		File:        file.Name,
		PackageName: file.AST.Name.Name,
		Pos:         ts.Name.Pos(),
	}
	for _, af := range st.Fields.List {
		if len(af.Names) == 0 {
			continue
		}
		field, node, err := file.field(af)
		if err != nil {
			file.Warnings = append(file.Warnings, err)
			continue
		}
		decl.Fields = append(decl.Fields, field)
		file.nodes[field] = node
	}
	return decl
}

func (file *File) field(af *ast.Field) (*model.Field, *fieldNode, error) {
	names := make([]string, 0, len(af.Names))
	for _, n := range af.Names {
		names = append(names, n.Name)
	}
	field := &model.Field{Name: strings.Join(names, ", "), Pos: af.Names[0].Pos()}
	node := &fieldNode{field: af}

	if af.Doc != nil {
		for _, c := range af.Doc.List {
			if isDirective(c.Text) {
				continue
			}
			node.docs = append(node.docs, c)
			for _, line := range commentLines(c.Text) {
				field.Annotations = append(field.Annotations, &model.Annotation{Kind: model.KindDoc, Key: "doc", Value: line})
			}
		}
	}

	if af.Tag != nil {
		raw, err := strconv.Unquote(af.Tag.Value)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: field %s: %w", file.Fset.Position(af.Tag.Pos()), field.Name, err)
		}
		tag, err := model.ParseTag(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: field %s: %w", file.Fset.Position(af.Tag.Pos()), field.Name, err)
		}
		for _, p := range tag {
			field.Annotations = append(field.Annotations, &model.Annotation{
				Kind:  file.opts.Keys.Kind(p.Key),
				Key:   p.Key,
				Value: p.Value,
			})
		}
	}
	return field, node, nil
}

// commentLines returns the text payloads of one comment. A line comment has a
// single payload; a general comment has one per line, with a leading "* "
// gutter removed, blank lines at either end dropped and each line re-indented
// by a single space.
func commentLines(text string) []string {
	if strings.HasPrefix(text, "//") {
		return []string{text[2:]}
	}
	body := strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "*" {
			l = ""
		} else if strings.HasPrefix(l, "* ") {
			l = strings.TrimSpace(l[2:])
		}
		lines[i] = l
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = " " + l
	}
	return lines
}

// hasDirective reports whether cg holds the line comment //<directive>,
// optionally followed by arguments.
func hasDirective(cg *ast.CommentGroup, directive string) bool {
	if cg == nil || directive == "" {
		return false
	}
	want := "//" + directive
	for _, c := range cg.List {
		if c.Text == want || strings.HasPrefix(c.Text, want+" ") {
			return true
		}
	}
	return false
}

// isDirective reports whether c is a tool directive rather than
// documentation: //line, //extern, //export or //name:arg.
func isDirective(c string) bool {
	if strings.HasPrefix(c, "//line ") || strings.HasPrefix(c, "//extern ") || strings.HasPrefix(c, "//export ") {
		return true
	}
	if !strings.HasPrefix(c, "//") {
		return false
	}
	c = c[2:]
	colon := strings.Index(c, ":")
	if colon <= 0 || colon+1 >= len(c) {
		return false
	}
	for i := 0; i <= colon+1; i++ {
		if i == colon {
			continue
		}
		b := c[i]
		if !('a' <= b && b <= 'z' || '0' <= b && b <= '9') {
			return false
		}
	}
	return true
}
