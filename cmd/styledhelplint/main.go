package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/arran4/go-styledhelp/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
