// Package help reads the help tags written by styledhelp at runtime.
package help

import (
	"reflect"

	"github.com/arran4/go-styledhelp/cstr"
	"github.com/arran4/go-styledhelp/model"
)

// Reader resolves help text for struct fields.
type Reader struct {
	Keys model.TagKeys
	// Render styles marked-up help. It defaults to cstr.Render.
	Render func(string) string
}

// Default uses the default tag keys and cstr.Render.
var Default = &Reader{Keys: model.DefaultTagKeys, Render: cstr.Render}

// Text returns the help for field using the Default reader.
func Text(field reflect.StructField) string {
	return Default.Text(field)
}

// Lookup returns the help for the named field of v using the Default reader.
func Lookup(v any, name string) (string, bool) {
	return Default.Lookup(v, name)
}

// Text returns the help of field. The help key wins over the long help key.
// A value marked with the style key is passed through Render.
func (r *Reader) Text(field reflect.StructField) string {
	text, ok := field.Tag.Lookup(r.Keys.Help)
	if !ok {
		text, ok = field.Tag.Lookup(r.Keys.LongHelp)
	}
	if !ok {
		return ""
	}
	if style, ok := field.Tag.Lookup(r.Keys.Style); ok && style == r.Keys.StyleName {
		render := r.Render
		if render == nil {
			render = cstr.Render
		}
		return render(text)
	}
	return text
}

// Lookup finds the field called name in the struct v, or the struct v points
// to, and returns its help.
func (r *Reader) Lookup(v any, name string) (string, bool) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", false
	}
	f, ok := t.FieldByName(name)
	if !ok {
		return "", false
	}
	return r.Text(f), true
}
