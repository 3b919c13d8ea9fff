package a

//styledhelp:generate
type Options struct {
	// The <c>name</> to use.
	Name string `arg:"name"` // want `field Name doc comment should be a styled help tag`

	// Number of workers.
	Workers int // want `field Workers doc comment should be a help tag`

	// Already documented.
	Verbose bool `arg:"verbose" help:"Be chatty."`

	//
	Blank string `arg:"blank"` // want `field Blank has an empty doc comment`
}

type Plain struct {
	// Not opted in.
	Value string `arg:"value"`
}
