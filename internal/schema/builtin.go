package schema

// builtinScalar declares one of the five spec scalars as a package-level
// *Type singleton. builder.go registers it into every built Schema and
// render.go switches on its identity to recognize a builtin without a
// name comparison, so these vars, not just their values, matter.
func builtinScalar(name, description string) *Type {
	return &Type{Name: name, Kind: TypeKindScalar, Description: description}
}

var (
	stringType = builtinScalar("String",
		"The `String` scalar type represents textual data, represented as UTF-8 character sequences.")

	intType = builtinScalar("Int",
		"The `Int` scalar type represents non-fractional signed whole numeric values.")

	floatType = builtinScalar("Float",
		"The `Float` scalar type represents signed double-precision fractional values.")

	booleanType = builtinScalar("Boolean",
		"The `Boolean` scalar type represents `true` or `false`.")

	idType = builtinScalar("ID",
		"The `ID` scalar type represents a unique identifier, often used to refetch an object or as a key for caching.")
)

func booleanIfArgument(description string) *InputValue {
	return &InputValue{
		Name:        "if",
		Description: description,
		Type:        &TypeRef{Kind: TypeRefKindNonNull, OfType: &TypeRef{Kind: TypeRefKindNamed, Named: "Boolean"}},
	}
}

var executionDirectiveLocations = []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"}

var includeDirective = &Directive{
	Name:        "include",
	Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Arguments:   []*InputValue{booleanIfArgument("Included when true.")},
	Locations:   executionDirectiveLocations,
}

var skipDirective = &Directive{
	Name:        "skip",
	Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Arguments:   []*InputValue{booleanIfArgument("Skipped when true.")},
	Locations:   executionDirectiveLocations,
}
