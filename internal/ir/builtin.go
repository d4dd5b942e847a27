package ir

// builtinScalar is a small helper so the five spec scalars are declared as
// data rather than five near-identical struct literals.
func builtinScalar(name, description, protoType, specURL string) *ScalarDefinition {
	return &ScalarDefinition{
		Name:              name,
		Description:       description,
		MappedToProtoType: protoType,
		SpecifiedByURL:    "https://spec.graphql.org/October2021/#sec-" + specURL,
	}
}

var (
	StringType = builtinScalar("String",
		"The String scalar type represents textual data, represented as UTF-8 character sequences.",
		"string", "String")

	IntType = builtinScalar("Int",
		"The Int scalar type represents non-fractional signed whole numeric values.",
		"int32", "Int")

	FloatType = builtinScalar("Float",
		"The Float scalar type represents signed double-precision fractional values.",
		"double", "Float")

	BooleanType = builtinScalar("Boolean",
		"The Boolean scalar type represents true or false.",
		"bool", "Boolean")

	IDType = builtinScalar("ID",
		"The ID scalar type represents a unique identifier, often used to refetch an object or as a key for caching.",
		"string", "ID")
)
