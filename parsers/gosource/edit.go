package gosource

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"sort"

	"github.com/arran4/go-styledhelp/model"
	"github.com/arran4/go-styledhelp/rewriter"
)

// Edit replaces Src[Start:End] with Text.
type Edit struct {
	Start int
	End   int
	Text  string
	// Field is the rewritten field the edit belongs to.
	Field *model.Field
}

// Edits runs the rewriter over every eligible field and returns the source
// edits that express the result, sorted by descending start offset. The
// file's model is updated in place, so a second call returns no edits.
func (file *File) Edits() []Edit {
	rw := rewriter.New(file.opts.Keys)
	var edits []Edit
	for _, decl := range file.Declarations {
		for _, field := range rw.RewriteDeclaration(decl) {
			edits = append(edits, file.fieldEdits(field)...)
		}
	}
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Start > edits[j].Start
	})
	return edits
}

func (file *File) fieldEdits(field *model.Field) []Edit {
	node := file.nodes[field]
	if node == nil {
		return nil
	}
	var edits []Edit
	lastEnd := -1
	for _, c := range node.docs {
		start := file.lineStart(file.offset(c.Pos()))
		end := file.lineEnd(file.offset(c.End()))
		if start < lastEnd {
			start = lastEnd
		}
		if start < end {
			edits = append(edits, Edit{Start: start, End: end, Field: field})
		}
		lastEnd = end
	}

	arg := field.Arg()
	if arg == nil || arg.Help == nil {
		return edits
	}
	lit := model.TagFromAnnotations(field.Annotations, file.opts.Keys).Literal()
	if tag := node.field.Tag; tag != nil {
		edits = append(edits, Edit{Start: file.offset(tag.Pos()), End: file.offset(tag.End()), Text: lit, Field: field})
	} else {
		at := file.offset(node.field.Type.End())
		edits = append(edits, Edit{Start: at, End: at, Text: " " + lit, Field: field})
	}
	return edits
}

// Rewrite applies Edits to the source and returns the gofmt formatted result.
// The boolean is false when the file needs no change.
func (file *File) Rewrite() ([]byte, bool, error) {
	edits := file.Edits()
	if len(edits) == 0 {
		return file.Src, false, nil
	}
	out, err := Apply(file.Src, edits)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", file.Name, err)
	}
	return Format(file.Name, file.Src, out)
}

// Format gofmts out, the edited source of the named file, and reports
// whether the result differs from the original src.
func Format(name string, src, out []byte) ([]byte, bool, error) {
	formatted, err := format.Source(out)
	if err != nil {
		return nil, false, fmt.Errorf("failed to format rewritten %s: %w\n%s", name, err, out)
	}
	return formatted, !bytes.Equal(formatted, src), nil
}

// Apply applies edits sorted by descending start offset to src.
func Apply(src []byte, edits []Edit) ([]byte, error) {
	out := append([]byte(nil), src...)
	prev := len(src)
	for _, e := range edits {
		if e.Start < 0 || e.End > prev || e.Start > e.End {
			return nil, fmt.Errorf("invalid edit offsets %d-%d", e.Start, e.End)
		}
		var buf []byte
		buf = append(buf, out[:e.Start]...)
		buf = append(buf, e.Text...)
		buf = append(buf, out[e.End:]...)
		out = buf
		prev = e.Start
	}
	return out, nil
}

func (file *File) offset(p token.Pos) int {
	return file.Fset.Position(p).Offset
}

// lineStart returns the offset of the first byte of the line holding off.
func (file *File) lineStart(off int) int {
	i := bytes.LastIndexByte(file.Src[:off], '\n')
	return i + 1
}

// lineEnd returns the offset just past the newline ending the line holding
// off, or the end of the source.
func (file *File) lineEnd(off int) int {
	i := bytes.IndexByte(file.Src[off:], '\n')
	if i < 0 {
		return len(file.Src)
	}
	return off + i + 1
}
