package executor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	language "github.com/lumenary/graphgate/internal/language"
	schema "github.com/lumenary/graphgate/internal/schema"
)

// coerceVariableValues coerces variable values according to their declared
// types. Coercion is all-or-nothing: the first failure aborts the whole call
// and the request is treated as a request-level error by the caller.
func coerceVariableValues(
	sch *schema.Schema,
	operation *language.OperationDefinition,
	variableValues map[string]any,
) (map[string]any, error) {
	if variableValues == nil {
		variableValues = make(map[string]any)
	}
	coerced := make(map[string]any)
	for _, varDef := range operation.VariableDefinitions {
		name := varDef.Variable
		t := varDef.Type
		val, ok := variableValues[name]
		if !ok {
			if v2, ok2 := variableValues[strings.TrimPrefix(name, "$")]; ok2 {
				val = v2
				ok = true
			}
		}
		if !ok {
			if varDef.DefaultValue != nil {
				val = astValueToGo(varDef.DefaultValue)
			} else if t.NonNull {
				return nil, fmt.Errorf("variable $%s of required type %s was not provided", name, t.String())
			} else {
				continue
			}
		}
		if val == nil && t.NonNull {
			return nil, fmt.Errorf("variable $%s of type %s cannot be null", name, t.String())
		}
		cv, err := coerceValue(sch, val, typeRefFromAST(t))
		if err != nil {
			return nil, fmt.Errorf("variable $%s of type %s cannot be coerced: %v", name, t.String(), err)
		}
		coerced[name] = cv
	}
	return coerced, nil
}

// coerceArgumentValues coerces argument values for a field, resolving
// variable references against the already-coerced variable map. Unlike
// variable coercion, a failure here is field-level: it is recorded on the
// execution state and the field proceeds toward a Null completion rather
// than aborting the request.
func coerceArgumentValues(
	fieldDef *schema.Field,
	arguments language.ArgumentList,
	variableValues map[string]any,
	state *executionState,
	path Path,
) map[string]any {
	coerced := make(map[string]any)
	for _, arg := range arguments {
		var argDef *schema.InputValue
		for _, a := range fieldDef.Arguments {
			if a.Name == arg.Name {
				argDef = a
				break
			}
		}
		if argDef == nil {
			continue
		}
		val := valueFromASTWithVars(arg.Value, variableValues)
		cv, err := coerceValue(state.schema, val, argDef.Type)
		if err != nil {
			state.addError(fmt.Sprintf("argument '%s' cannot be coerced: %v", arg.Name, err), path)
			continue
		}
		coerced[arg.Name] = cv
	}
	for _, argDef := range fieldDef.Arguments {
		name := argDef.Name
		if _, ok := coerced[name]; !ok {
			if argDef.DefaultValue != nil {
				coerced[name] = argDef.DefaultValue
			} else if schema.IsNonNull(argDef.Type) {
				state.addError(fmt.Sprintf("argument '%s' of required type was not provided", name), path)
			}
		}
	}
	return coerced
}

// valueFromASTWithVars converts an AST value to a runtime value with variable substitution
func valueFromASTWithVars(value *language.Value, variableValues map[string]any) any {
	if value == nil {
		return nil
	}
	switch value.Kind {
	case language.Variable:
		name := value.Raw
		if v, ok := variableValues[name]; ok {
			return v
		}
		if v, ok := variableValues[strings.TrimPrefix(name, "$")]; ok {
			return v
		}
		return nil
	default:
		return astValueToGo(value)
	}
}

// astValueToGo converts an AST value to a Go value
func astValueToGo(value *language.Value) any {
	if value == nil {
		return nil
	}
	switch value.Kind {
	case language.IntValue:
		iv, _ := strconv.Atoi(value.Raw)
		return iv
	case language.FloatValue:
		fv, _ := strconv.ParseFloat(value.Raw, 64)
		return fv
	case language.StringValue, language.BlockValue:
		return value.Raw
	case language.BooleanValue:
		return value.Raw == "true"
	case language.NullValue:
		return nil
	case language.EnumValue:
		return value.Raw
	case language.ListValue:
		out := make([]any, len(value.Children))
		for i, c := range value.Children {
			out[i] = astValueToGo(c.Value)
		}
		return out
	case language.ObjectValue:
		m := make(map[string]any)
		for _, f := range value.Children {
			m[f.Name] = astValueToGo(f.Value)
		}
		return m
	default:
		return nil
	}
}

// coerceValue coerces a loosely-typed value (as produced by a transport
// decoder or the query AST) into a value conforming to targetType, following
// the GraphQL input-coercion rules: Non-Null unwraps and rejects Null,
// List wraps a lone value into a singleton list, Scalar performs the
// built-in numeric/string/boolean conversions, Enum is accepted by name
// without membership checking, and InputObject validates declared fields
// and rejects unknown keys.
func coerceValue(sch *schema.Schema, value any, targetType *schema.TypeRef) (any, error) {
	if schema.IsNonNull(targetType) {
		if value == nil {
			return nil, fmt.Errorf("cannot provide null for non-null type")
		}
		return coerceValue(sch, value, schema.Unwrap(targetType))
	}

	if value == nil {
		return nil, nil
	}

	if schema.IsList(targetType) {
		return coerceListValue(sch, value, targetType)
	}

	namedType := schema.GetNamedType(targetType)

	switch namedType {
	case "Int":
		return coerceToInt(value)
	case "Float":
		return coerceToFloat(value)
	case "String":
		return coerceToString(value)
	case "Boolean":
		return coerceToBoolean(value)
	case "ID":
		return coerceToID(value)
	}

	if sch != nil {
		if typeObj := sch.Types[namedType]; typeObj != nil {
			switch typeObj.Kind {
			case schema.TypeKindInputObject:
				return coerceInputObjectValue(sch, value, typeObj)
			case schema.TypeKindEnum:
				// Membership is not verified here, and output completion does
				// not verify it either: any string is accepted as the value.
				if s, ok := value.(string); ok {
					return s, nil
				}
				return nil, fmt.Errorf("cannot coerce %v (%T) to enum %s", value, value, namedType)
			}
		}
	}

	// Custom scalars pass through unvalidated.
	return value, nil
}

// coerceInputObjectValue applies §4.3.1's InputObject rule: every declared
// field is looked up in raw, coerced if present, defaulted or nulled if
// absent, and any key in raw that names no declared field fails coercion.
func coerceInputObjectValue(sch *schema.Schema, value any, typeObj *schema.Type) (any, error) {
	raw, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected object value for input type %s, got %T", typeObj.Name, value)
	}

	declared := make(map[string]*schema.InputValue, len(typeObj.InputFields))
	for _, f := range typeObj.InputFields {
		declared[f.Name] = f
	}
	for key := range raw {
		if _, ok := declared[key]; !ok {
			return nil, fmt.Errorf("unknown field %q on input type %s", key, typeObj.Name)
		}
	}

	result := make(map[string]any, len(typeObj.InputFields))
	for _, f := range typeObj.InputFields {
		rv, present := raw[f.Name]
		if !present {
			if f.DefaultValue != nil {
				result[f.Name] = f.DefaultValue
				continue
			}
			if schema.IsNonNull(f.Type) {
				return nil, fmt.Errorf("required field '%s' of input type %s was not provided", f.Name, typeObj.Name)
			}
			result[f.Name] = nil
			continue
		}
		cv, err := coerceValue(sch, rv, f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		result[f.Name] = cv
	}
	return result, nil
}

// coerceListValue coerces a value to a list
func coerceListValue(sch *schema.Schema, value any, listType *schema.TypeRef) (any, error) {
	innerType := schema.Unwrap(listType)

	if slice, ok := value.([]any); ok {
		coercedSlice := make([]any, len(slice))
		for i, item := range slice {
			coercedItem, err := coerceValue(sch, item, innerType)
			if err != nil {
				return nil, err
			}
			coercedSlice[i] = coercedItem
		}
		return coercedSlice, nil
	}

	// A lone value coerces to a singleton list (input-coercion rule for lists).
	coercedItem, err := coerceValue(sch, value, innerType)
	if err != nil {
		return nil, err
	}
	return []any{coercedItem}, nil
}

// coerceToInt enforces the 32-bit signed range and rejects values carrying a
// fractional component, per §4.3.1. Only numeric Go values are accepted;
// strings are a scalar mismatch even when numeric-looking.
func coerceToInt(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return coerceInt64ToInt32(int64(v))
	case int32:
		return int(v), nil
	case int64:
		return coerceInt64ToInt32(v)
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("cannot coerce %v to Int: fractional component", v)
		}
		return coerceInt64ToInt32(int64(v))
	case float32:
		return coerceToInt(float64(v))
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to Int", value, value)
}

func coerceInt64ToInt32(v int64) (any, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nil, fmt.Errorf("Int value %d is outside the 32-bit signed range", v)
	}
	return int(v), nil
}

func coerceToFloat(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to Float", value, value)
}

func coerceToString(value any) (any, error) {
	if v, ok := value.(string); ok {
		return v, nil
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to String", value, value)
}

func coerceToBoolean(value any) (any, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to Boolean", value, value)
}

// coerceToID accepts strings directly and stringifies integers (the source's
// round-trip behavior is canonicalized to string per §9's open question).
func coerceToID(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return nil, fmt.Errorf("cannot coerce %v (%T) to ID", value, value)
	}
}
