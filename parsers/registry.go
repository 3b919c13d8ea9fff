package parsers

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/arran4/go-styledhelp/model"
)

type Parser interface {
	Parse(fsys fs.FS, root string, opts *ParseOptions) (*model.DataModel, error)
}

var parsers = make(map[string]Parser)

func Register(name string, p Parser) {
	parsers[name] = p
}

func Get(name string) (Parser, error) {
	if p, ok := parsers[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("parser %s not found (available: %s)", name, strings.Join(Names(), ", "))
}

// Names lists the registered parsers.
func Names() []string {
	var names []string
	for name := range parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
