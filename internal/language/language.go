package language

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ParseQuery parses a GraphQL request document (the {query} string a
// client sends) into the AST the executor walks. Lexing and grammar are
// entirely gqlparser's concern; this package only re-exports the AST
// shapes the rest of the engine needs names for.
func ParseQuery(source string) (*QueryDocument, error) {
	return parser.ParseQuery(&ast.Source{Input: source})
}

// ParseSchema parses one service's SDL document. name is attached to parse
// errors so a multi-file project build can report which file a syntax
// error came from.
func ParseSchema(name, source string) (*SchemaDocument, error) {
	return parser.ParseSchema(&ast.Source{Name: name, Input: source})
}
