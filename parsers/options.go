package parsers

import "github.com/arran4/go-styledhelp/model"

// DefaultDirective is the comment directive that opts a struct into rewriting.
const DefaultDirective = "styledhelp:generate"

type ParseOptions struct {
	// SearchPaths restricts the walk to these paths relative to the root.
	SearchPaths []string
	Recursive   bool
	// Exclude holds glob patterns matched against slash separated paths
	// relative to the root.
	Exclude []string
	// Directive is the comment directive that marks an eligible struct.
	Directive string
	// All makes every struct type eligible regardless of the directive.
	All  bool
	Keys model.TagKeys
}

// DefaultParseOptions returns options with the default directive and keys.
func DefaultParseOptions() *ParseOptions {
	return &ParseOptions{
		Recursive: true,
		Directive: DefaultDirective,
		Keys:      model.DefaultTagKeys,
	}
}
