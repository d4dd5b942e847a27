package protoreg

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// withSuffix appends suffix to a protoreflect.Name, used for the
// Request/Response pairing every method name needs.
func withSuffix(n protoreflect.Name, suffix string) protoreflect.Name {
	return protoreflect.Name(string(n) + suffix)
}

func nameProtoSource(graphQLName string) protoreflect.Name {
	return protoreflect.Name(graphQLName + "Source")
}

func nameProtoField(graphQLName string) protoreflect.Name {
	return protoreflect.Name(snakeCase(graphQLName))
}

func nameProtoEnumValue(graphQLEnumName, graphQLEnumValueName string) protoreflect.Name {
	prefix := strings.ToUpper(snakeCase(graphQLEnumName))
	return protoreflect.Name(prefix + "_" + graphQLEnumValueName)
}

func nameService(serviceName string) protoreflect.Name {
	return protoreflect.Name(capitalize(serviceName) + "Service")
}

func nameSingleResolverMethod(objectType, fieldName string) protoreflect.Name {
	return protoreflect.Name("Resolve" + capitalize(objectType) + capitalize(fieldName))
}

func nameSingleResolverRequest(objectType, fieldName string) protoreflect.Name {
	return withSuffix(nameSingleResolverMethod(objectType, fieldName), "Request")
}

func nameSingleResolverResponse(objectType, fieldName string) protoreflect.Name {
	return withSuffix(nameSingleResolverMethod(objectType, fieldName), "Response")
}

func nameBatchResolverMethod(objectType, fieldName string) protoreflect.Name {
	return protoreflect.Name("BatchResolve" + capitalize(objectType) + capitalize(fieldName))
}

func nameBatchResolverRequest(objectType, fieldName string) protoreflect.Name {
	return withSuffix(nameBatchResolverMethod(objectType, fieldName), "Request")
}

func nameBatchResolverResponse(objectType, fieldName string) protoreflect.Name {
	return withSuffix(nameBatchResolverMethod(objectType, fieldName), "Response")
}

// capitalizedJoin capitalizes each key field and concatenates them, used
// to build the "By<Key1><Key2>" suffix of loader method names.
func capitalizedJoin(keyFields []string) string {
	parts := make([]string, len(keyFields))
	for i, k := range keyFields {
		parts[i] = capitalize(k)
	}
	return strings.Join(parts, "")
}

func nameSingleLoaderMethod(targetType string, keyFields []string) protoreflect.Name {
	return protoreflect.Name("Load" + capitalize(targetType) + "By" + capitalizedJoin(keyFields))
}

func nameSingleLoaderRequest(targetType string, keyFields []string) protoreflect.Name {
	return withSuffix(nameSingleLoaderMethod(targetType, keyFields), "Request")
}

func nameSingleLoaderResponse(targetType string, keyFields []string) protoreflect.Name {
	return withSuffix(nameSingleLoaderMethod(targetType, keyFields), "Response")
}

func nameBatchLoaderMethod(targetType string, keyFields []string) protoreflect.Name {
	return protoreflect.Name("BatchLoad" + capitalize(targetType) + "By" + capitalizedJoin(keyFields))
}

func nameBatchLoaderRequest(targetType string, keyFields []string) protoreflect.Name {
	return withSuffix(nameBatchLoaderMethod(targetType, keyFields), "Request")
}

func nameBatchLoaderResponse(targetType string, keyFields []string) protoreflect.Name {
	return withSuffix(nameBatchLoaderMethod(targetType, keyFields), "Response")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// snakeCase converts a string from CamelCase or PascalCase to snake_case,
// matching the protobuf field-naming convention.
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
