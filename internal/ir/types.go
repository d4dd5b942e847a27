package ir

import (
	"sort"
	"strings"
)

type Project struct {
	Services    map[ServiceID]*Service             `json:"services"`
	Schema      *Schema                            `json:"schema,omitempty"`
	Definitions map[string]*Definition             `json:"definitions"`
	Directives  map[string]*DirectiveDefinition    `json:"directives"`
	Loaders     map[LoaderID]*LoaderDefinition     `json:"loaders"`
	Resolvers   map[ResolverID]*ResolverDefinition `json:"resolvers"`
}

type Schema struct {
	QueryType        string `json:"queryType,omitempty"`
	MutationType     string `json:"mutationType,omitempty"`
	SubscriptionType string `json:"subscriptionType,omitempty"`
}

type Service struct {
	ID          ServiceID `json:"id"`
	Name        string    `json:"name"`
	PackagePath []string  `json:"packagePath"`
	FilePath    string    `json:"filePath,omitempty"`

	Definitions  []string     `json:"sources"`
	Directives   []string     `json:"directives"`
	Loaders      []LoaderID   `json:"loaders"`
	Resolvers    []ResolverID `json:"resolvers"`
	Dependencies []ServiceID  `json:"dependencies"`
}

// ServiceID is a unique identifier for a service: the service name, which
// both discoveries take from the SDL file name (minus extension).
// ex. "User"
type ServiceID string

type Definition struct {
	Object    *ObjectDefinition    `json:"object,omitempty"`
	Interface *InterfaceDefinition `json:"interface,omitempty"`
	Union     *UnionDefinition     `json:"union,omitempty"`
	Input     *InputDefinition     `json:"input,omitempty"`
	Enum      *EnumDefinition      `json:"enum,omitempty"`
	Scalar    *ScalarDefinition    `json:"scalar,omitempty"`
}

type ObjectDefinition struct {
	Name        string                      `json:"name"`
	Description string                      `json:"description,omitempty"`
	Fields      map[string]*FieldDefinition `json:"fields"`
	Interfaces  map[string]*InterfaceImpl   `json:"interfaces"`
	IDFields    []string                    `json:"idFields"`
}

type InterfaceDefinition struct {
	Name          string                      `json:"name"`
	Description   string                      `json:"description,omitempty"`
	Fields        map[string]*FieldDefinition `json:"fields"`
	Interfaces    map[string]*InterfaceImpl   `json:"interfaces"`
	PossibleTypes []string                    `json:"possibleTypes"`
}

type UnionDefinition struct {
	Name        string                          `json:"name"`
	Description string                          `json:"description,omitempty"`
	Types       map[string]*UnionTypeDefinition `json:"types"`
}

type UnionTypeDefinition struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

type InputDefinition struct {
	Name        string                           `json:"name"`
	Description string                           `json:"description,omitempty"`
	InputValues map[string]*InputValueDefinition `json:"inputValues"`
	OneOf       bool                             `json:"oneOf,omitempty"`
}

type EnumDefinition struct {
	Name        string                          `json:"name"`
	Description string                          `json:"description,omitempty"`
	Values      map[string]*EnumValueDefinition `json:"values"`
}

type EnumValueDefinition struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Index       int          `json:"index"`
	Deprecation *Deprecation `json:"deprecation,omitempty"`
}

type ScalarDefinition struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	MappedToProtoType string `json:"mappedToProtoType,omitempty"`
	SpecifiedByURL    string `json:"specifiedByURL,omitempty"`
}

type DirectiveDefinition struct {
	Name        string                         `json:"name"`
	Description string                         `json:"description,omitempty"`
	Args        map[string]*ArgumentDefinition `json:"args"`
	Repeatable  bool                           `json:"repeatable,omitempty"`
	Locations   []string                       `json:"locations"`
}

type InterfaceImpl struct {
	Interface string `json:"interface"`
	Index     int    `json:"index"`
}

type FieldDefinition struct {
	Name              string                         `json:"name"`
	Description       string                         `json:"description,omitempty"`
	Index             int                            `json:"index"`
	Args              map[string]*ArgumentDefinition `json:"args"`
	Type              *TypeExpr                      `json:"fieldType"`
	IsInternal        bool                           `json:"isInternal,omitempty"`
	Deprecation       *Deprecation                   `json:"deprecation,omitempty"`
	ResolveBySource   *FieldResolveBySource          `json:"bySource,omitempty"`
	ResolveByResolver *FieldResolveByResolver        `json:"byResolver,omitempty"`
	ResolveByLoader   *FieldResolveByLoader          `json:"byLoader,omitempty"`
}

type FieldResolveBySource struct {
	SourceField string `json:"sourceField"`
}

type FieldResolveByResolver struct {
	ResolverID ResolverID        `json:"resolverId"`
	With       map[string]string `json:"with"`
}

type FieldResolveByLoader struct {
	LoaderID LoaderID          `json:"loaderId"`
	With     map[string]string `json:"with"`
}

type ArgumentDefinition struct {
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Index        int          `json:"index"`
	DefaultValue Value        `json:"defaultValue,omitempty"`
	Type         *TypeExpr    `json:"type"`
	Deprecation  *Deprecation `json:"deprecation,omitempty"`
}

type InputValueDefinition struct {
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Index        int          `json:"index"`
	DefaultValue Value        `json:"defaultValue,omitempty"`
	Type         *TypeExpr    `json:"type"`
	Deprecation  *Deprecation `json:"deprecation,omitempty"`
}

type Argument struct {
	Name  string `json:"name"`
	Value Value  `json:"value,omitempty"`
}

type Value = any

type Deprecation struct {
	Reason string `json:"reason,omitempty"`
}

type LoaderDefinition struct {
	ID         LoaderID              `json:"id"`
	TargetType string                `json:"targetType"`      // The type this loader loads (e.g., "User", "Post")
	KeyFields  []string              `json:"keyFields"`       // Field names used as keys (e.g., ["id"] or ["userId", "postId"])
	Batch      bool                  `json:"batch,omitempty"` // true to generate BatchLoad*, false for Load*
	Args       map[string]*MethodArg `json:"args"`            // Arguments for the loader
}

// LoaderID is a unique identifier for a loader.
// e.g. "User:id", "Like:postId:userId"
type LoaderID string

type ResolverDefinition struct {
	ID          ResolverID            `json:"id"`
	Parent      string                `json:"parent"`
	Field       string                `json:"field"`
	Args        map[string]*MethodArg `json:"args"`
	Batch       bool                  `json:"batch,omitempty"`
	ReturnType  *TypeExpr             `json:"returnType"`
	Description string                `json:"description,omitempty"`
}

type MethodArg struct {
	Name        string    `json:"name"`
	Type        *TypeExpr `json:"type"`
	Index       int       `json:"index"`
	Description string    `json:"description,omitempty"`
}

// ResolverID is a unique identifier for a resolver.
// e.g. "User:likes", "Post:author"
type ResolverID string

// TypeExpr represents a GraphQL type expression (e.g. String, [String!], String!).
type TypeExpr struct {
	Kind   TypeExprKind `json:"kind"`
	OfType *TypeExpr    `json:"ofType,omitempty"`
	Named  string       `json:"named,omitempty"`
}

type TypeExprKind string

const (
	TypeExprKindNamed   TypeExprKind = "NAMED"
	TypeExprKindList    TypeExprKind = "LIST"
	TypeExprKindNonNull TypeExprKind = "NON_NULL"
)

// unwrap strips List/NonNull wrappers down to the named type underneath,
// e.g. [String!]! unwraps to "String".
func (t *TypeExpr) unwrap() string {
	if t == nil {
		return ""
	}
	if t.Kind == TypeExprKindNamed {
		return t.Named
	}
	return t.OfType.unwrap()
}

// String renders the GraphQL type-expression syntax: String, [String!], String!.
func (t *TypeExpr) String() string {
	if t == nil {
		return "Unknown"
	}
	switch t.Kind {
	case TypeExprKindNamed:
		return t.Named
	case TypeExprKindList:
		return "[" + t.OfType.String() + "]"
	case TypeExprKindNonNull:
		inner := t.OfType.String()
		if strings.HasSuffix(inner, "!") {
			return inner
		}
		return inner + "!"
	default:
		return "Unknown"
	}
}

// orderedByIndex returns the values of m sorted by the position indexOf
// reports for each. Every *Definition's fields/args/values are stored in
// maps keyed by name (stable lookup, JSON-friendly) but also carry an
// Index recording declaration order, which is what a codegen pass that
// cares about stable output (proto field order, generated arg lists) asks
// for instead of map iteration order.
func orderedByIndex[V any](m map[string]V, indexOf func(V) int) []V {
	items := make([]V, 0, len(m))
	for _, v := range m {
		items = append(items, v)
	}
	sort.Slice(items, func(i, j int) bool {
		return indexOf(items[i]) < indexOf(items[j])
	})
	return items
}

func (e *ObjectDefinition) OrderedFields() []*FieldDefinition {
	return orderedByIndex(e.Fields, func(f *FieldDefinition) int { return f.Index })
}

func (e *EnumDefinition) OrderedValues() []*EnumValueDefinition {
	return orderedByIndex(e.Values, func(v *EnumValueDefinition) int { return v.Index })
}

func (e *InputDefinition) OrderedInputValues() []*InputValueDefinition {
	return orderedByIndex(e.InputValues, func(v *InputValueDefinition) int { return v.Index })
}

func (r *ResolverDefinition) OrderedArgs() []*MethodArg {
	return orderedByIndex(r.Args, func(a *MethodArg) int { return a.Index })
}

func (l *LoaderDefinition) OrderedArgs() []*MethodArg {
	return orderedByIndex(l.Args, func(a *MethodArg) int { return a.Index })
}
