package driver

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/parser"
	"sable/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Tree // nil when Err is set
	Bag     *diag.Bag
	Err     error
}

// Parse loads path in the given encoding and parses it.
func Parse(path, encoding string, goal parser.Goal, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.LoadEncoded(path, encoding)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	res := parser.ParseFile(file, parser.Options{Goal: goal, MaxDiagnostics: maxDiagnostics})
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    res.Tree,
		Bag:     res.Bag,
		Err:     res.Err,
	}, nil
}
