package language

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

type (
	QueryDocument       = ast.QueryDocument
	OperationDefinition = ast.OperationDefinition
	SelectionSet        = ast.SelectionSet
	Selection           = ast.Selection
	Field               = ast.Field
	Argument            = ast.Argument
	ArgumentList        = ast.ArgumentList
	Value               = ast.Value

	SchemaDocument          = ast.SchemaDocument
	SchemaDefinition        = ast.SchemaDefinition
	OperationTypeDefinition = ast.OperationTypeDefinition
	Definition              = ast.Definition
	DefinitionList          = ast.DefinitionList
	FieldDefinition         = ast.FieldDefinition
	EnumValueDefinition     = ast.EnumValueDefinition
	Directive               = ast.Directive
	DirectiveList           = ast.DirectiveList
	Type                    = ast.Type
	Source                  = ast.Source
	Position                = ast.Position
)

// Error is the structured error reported by the parser.
type Error = gqlerror.Error

type DefinitionKind = ast.DefinitionKind

type Operation = ast.Operation

type ValueKind = ast.ValueKind

const (
	Query        Operation = ast.Query
	Mutation     Operation = ast.Mutation
	Subscription Operation = ast.Subscription

	Object      DefinitionKind = ast.Object
	Interface   DefinitionKind = ast.Interface
	Union       DefinitionKind = ast.Union
	Scalar      DefinitionKind = ast.Scalar
	Enum        DefinitionKind = ast.Enum
	InputObject DefinitionKind = ast.InputObject

	StringValue ValueKind = ast.StringValue
)
