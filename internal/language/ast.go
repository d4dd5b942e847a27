package language

import "github.com/vektah/gqlparser/v2/ast"

// This package is the one place the rest of the engine names gqlparser's
// AST types. Every name below is an alias, not a defined type, so a
// *language.Field IS a *ast.Field: the executor, the IR builder, and
// gqlparser's own parser.ParseQuery/ParseSchema all operate on the exact
// same values with no conversion step at the boundary.

// Document shapes.
type (
	QueryDocument  = ast.QueryDocument
	SchemaDocument = ast.SchemaDocument
	Definition     = ast.Definition
	DefinitionList = ast.DefinitionList
)

// Operation shapes.
type (
	OperationDefinition = ast.OperationDefinition
	Operation           = ast.Operation
)

const (
	Query        Operation = ast.Query
	Mutation     Operation = ast.Mutation
	Subscription Operation = ast.Subscription
)

// Selection shapes: what an operation or fragment actually asks for.
type (
	SelectionSet       = ast.SelectionSet
	Selection          = ast.Selection
	Field              = ast.Field
	InlineFragment     = ast.InlineFragment
	FragmentDefinition = ast.FragmentDefinition
	FragmentSpread     = ast.FragmentSpread
)

// Directive and argument shapes.
type (
	Directive     = ast.Directive
	DirectiveList = ast.DirectiveList
	ArgumentList  = ast.ArgumentList
	Argument      = ast.Argument
	Value         = ast.Value
)

// Type-system definition shapes (SDL side).
type (
	FieldDefinition     = ast.FieldDefinition
	ArgumentDefinition  = ast.ArgumentDefinition
	EnumValueDefinition = ast.EnumValueDefinition
	Type                = ast.Type
	DefinitionKind      = ast.DefinitionKind
)

const (
	Object      DefinitionKind = ast.Object
	Interface   DefinitionKind = ast.Interface
	Union       DefinitionKind = ast.Union
	Scalar      DefinitionKind = ast.Scalar
	Enum        DefinitionKind = ast.Enum
	InputObject DefinitionKind = ast.InputObject
)

// Literal value shapes, as they appear in arguments and default values.
type ValueKind = ast.ValueKind

const (
	Variable     ValueKind = ast.Variable
	IntValue     ValueKind = ast.IntValue
	FloatValue   ValueKind = ast.FloatValue
	StringValue  ValueKind = ast.StringValue
	BlockValue   ValueKind = ast.BlockValue
	BooleanValue ValueKind = ast.BooleanValue
	NullValue    ValueKind = ast.NullValue
	EnumValue    ValueKind = ast.EnumValue
	ListValue    ValueKind = ast.ListValue
	ObjectValue  ValueKind = ast.ObjectValue
)

// Position locates a node in its source document, used for error reporting.
type Position = ast.Position
