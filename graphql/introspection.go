/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	jsoniter "github.com/json-iterator/go"
)

//===-----------------------------------------------------------------------------------------===//
// Snapshot data
//===-----------------------------------------------------------------------------------------===//

// IntrospectionTypeRef describes a reference to a type in an introspection snapshot: a named type,
// or a List/NonNull wrapper chain ending in one. Wrapper entries carry no name and link the
// wrapped type through OfType.
type IntrospectionTypeRef struct {
	Kind   TypeKind              `json:"kind"`
	Name   string                `json:"name,omitempty"`
	OfType *IntrospectionTypeRef `json:"ofType,omitempty"`
}

// IntrospectionInputValue describes a field argument or an InputObject field. DefaultValue is a
// GraphQL-formatted string representing the default, empty when the input value defines none.
type IntrospectionInputValue struct {
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	Type         *IntrospectionTypeRef `json:"type"`
	DefaultValue string                `json:"defaultValue,omitempty"`
}

// IntrospectionField describes a field of an Object or Interface type.
type IntrospectionField struct {
	Name              string                    `json:"name"`
	Description       string                    `json:"description,omitempty"`
	Args              []IntrospectionInputValue `json:"args"`
	Type              *IntrospectionTypeRef     `json:"type"`
	IsDeprecated      bool                      `json:"isDeprecated"`
	DeprecationReason string                    `json:"deprecationReason,omitempty"`
}

// IntrospectionEnumValue describes one value of an Enum type.
type IntrospectionEnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	IsDeprecated      bool   `json:"isDeprecated"`
	DeprecationReason string `json:"deprecationReason,omitempty"`
}

// IntrospectionType describes one named type. Which lists are non-null depends on the kind:
// Fields and Interfaces for Objects, Fields and PossibleTypes for Interfaces, PossibleTypes for
// Unions, EnumValues for Enums and InputFields for InputObjects. The lists of the other kinds
// serialize as null, following the introspection system's convention.
type IntrospectionType struct {
	Kind          TypeKind                  `json:"kind"`
	Name          string                    `json:"name"`
	Description   string                    `json:"description,omitempty"`
	Fields        []IntrospectionField      `json:"fields"`
	Interfaces    []*IntrospectionTypeRef   `json:"interfaces"`
	PossibleTypes []*IntrospectionTypeRef   `json:"possibleTypes"`
	EnumValues    []IntrospectionEnumValue  `json:"enumValues"`
	InputFields   []IntrospectionInputValue `json:"inputFields"`
}

// IntrospectionSchema is the content of the "__schema" field in an introspection snapshot.
type IntrospectionSchema struct {
	QueryType        *IntrospectionTypeRef `json:"queryType"`
	MutationType     *IntrospectionTypeRef `json:"mutationType"`
	SubscriptionType *IntrospectionTypeRef `json:"subscriptionType"`
	Types            []IntrospectionType   `json:"types"`
}

// IntrospectionData wraps a snapshot under the "__schema" key, the way introspection responses
// nest it.
type IntrospectionData struct {
	Schema IntrospectionSchema `json:"__schema"`
}

//===-----------------------------------------------------------------------------------------===//
// Snapshot construction
//===-----------------------------------------------------------------------------------------===//

// IntrospectSchema takes a snapshot of a validated schema in the shape produced by the standard
// introspection query. The snapshot lists the registered types, including the built-in scalars,
// in lexicographic name order, followed by the introspection system's own types (__Schema,
// __Type, ...), so the same schema always produces the same snapshot. The schema must be in the
// Validated state.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Introspection
func IntrospectSchema(schema *Schema) (*IntrospectionData, error) {
	if schema.state.Load() != SchemaStateValidated {
		return nil, schema.notReadyError("IntrospectSchema")
	}

	var result IntrospectionSchema
	if query := schema.Query(); query != nil {
		result.QueryType = introspectTypeRef(query)
	}
	if mutation := schema.Mutation(); mutation != nil {
		result.MutationType = introspectTypeRef(mutation)
	}
	if subscription := schema.Subscription(); subscription != nil {
		result.SubscriptionType = introspectTypeRef(subscription)
	}

	typeMap := schema.TypeMap()
	names := typeMap.TypeNames()
	result.Types = make([]IntrospectionType, 0, len(names)+len(introspectionMetaTypes))
	for _, name := range names {
		result.Types = append(result.Types, introspectType(schema, typeMap.Lookup(name)))
	}
	result.Types = append(result.Types, introspectionMetaTypes...)

	return &IntrospectionData{Schema: result}, nil
}

// MarshalIntrospection snapshots the schema and serializes the snapshot to JSON.
func MarshalIntrospection(schema *Schema) ([]byte, error) {
	data, err := IntrospectSchema(schema)
	if err != nil {
		return nil, err
	}
	return jsoniter.Marshal(data)
}

func introspectTypeRef(t Type) *IntrospectionTypeRef {
	switch t := t.(type) {
	case *List:
		return &IntrospectionTypeRef{Kind: TypeKindList, OfType: introspectTypeRef(t.ElementType())}
	case *NonNull:
		return &IntrospectionTypeRef{Kind: TypeKindNonNull, OfType: introspectTypeRef(t.InnerType())}
	}

	ref := &IntrospectionTypeRef{Kind: KindOf(t)}
	if t, ok := t.(TypeWithName); ok {
		ref.Name = t.Name()
	}
	return ref
}

func introspectType(schema *Schema, t Type) IntrospectionType {
	result := IntrospectionType{Kind: KindOf(t)}

	if t, ok := t.(TypeWithName); ok {
		result.Name = t.Name()
	}
	if t, ok := t.(TypeWithDescription); ok {
		result.Description = t.Description()
	}

	switch t := t.(type) {
	case *Object:
		result.Fields = introspectFields(t.Fields())
		interfaces := t.Interfaces()
		refs := make([]*IntrospectionTypeRef, len(interfaces))
		for i, iface := range interfaces {
			refs[i] = introspectTypeRef(iface)
		}
		result.Interfaces = refs

	case *Interface:
		result.Fields = introspectFields(t.Fields())
		result.PossibleTypes = introspectPossibleTypes(schema.possibleTypeSetFor(t))

	case *Union:
		result.PossibleTypes = introspectPossibleTypes(t.PossibleTypes())

	case *Enum:
		values := t.Values()
		enumValues := make([]IntrospectionEnumValue, len(values))
		for i, value := range values {
			enumValues[i] = IntrospectionEnumValue{
				Name:         value.Name(),
				Description:  value.Description(),
				IsDeprecated: value.IsDeprecated(),
			}
			if deprecation := value.Deprecation(); deprecation.Defined() {
				enumValues[i].DeprecationReason = deprecation.Reason
			}
		}
		result.EnumValues = enumValues

	case *InputObject:
		fields := t.Fields()
		inputFields := make([]IntrospectionInputValue, len(fields))
		for i, field := range fields {
			inputFields[i] = IntrospectionInputValue{
				Name:        field.Name(),
				Description: field.Description(),
				Type:        introspectTypeRef(field.Type()),
			}
			if field.HasDefaultValue() {
				inputFields[i].DefaultValue = renderDefaultValue(field.DefaultValue(), field.Type())
			}
		}
		result.InputFields = inputFields
	}

	return result
}

func introspectFields(fields FieldList) []IntrospectionField {
	result := make([]IntrospectionField, len(fields))
	for i, field := range fields {
		result[i] = IntrospectionField{
			Name:         field.Name(),
			Description:  field.Description(),
			Args:         introspectArguments(field.Args()),
			Type:         introspectTypeRef(field.Type()),
			IsDeprecated: field.IsDeprecated(),
		}
		if deprecation := field.Deprecation(); deprecation.Defined() {
			result[i].DeprecationReason = deprecation.Reason
		}
	}
	return result
}

func introspectArguments(args []Argument) []IntrospectionInputValue {
	result := make([]IntrospectionInputValue, len(args))
	for i := range args {
		arg := &args[i]
		result[i] = IntrospectionInputValue{
			Name:        arg.Name(),
			Description: arg.Description(),
			Type:        introspectTypeRef(arg.Type()),
		}
		if arg.HasDefaultValue() {
			result[i].DefaultValue = renderDefaultValue(arg.DefaultValue(), arg.Type())
		}
	}
	return result
}

func introspectPossibleTypes(set PossibleTypeSet) []*IntrospectionTypeRef {
	refs := make([]*IntrospectionTypeRef, len(set))
	for i, object := range set {
		refs[i] = introspectTypeRef(object)
	}
	return refs
}

//===-----------------------------------------------------------------------------------------===//
// The introspection system's own types
//===-----------------------------------------------------------------------------------------===//

// introspectionMetaTypes describes the introspection system's types. They appear in snapshot data
// like any other type but are not registered in schemas.
var introspectionMetaTypes = buildIntrospectionMetaTypes()

func buildIntrospectionMetaTypes() []IntrospectionType {
	var (
		stringRef     = &IntrospectionTypeRef{Kind: TypeKindScalar, Name: "String"}
		booleanRef    = &IntrospectionTypeRef{Kind: TypeKindScalar, Name: "Boolean"}
		typeRef       = &IntrospectionTypeRef{Kind: TypeKindObject, Name: "__Type"}
		fieldRef      = &IntrospectionTypeRef{Kind: TypeKindObject, Name: "__Field"}
		inputValueRef = &IntrospectionTypeRef{Kind: TypeKindObject, Name: "__InputValue"}
		enumValueRef  = &IntrospectionTypeRef{Kind: TypeKindObject, Name: "__EnumValue"}
		typeKindRef   = &IntrospectionTypeRef{Kind: TypeKindEnum, Name: "__TypeKind"}
	)

	nonNull := func(ofType *IntrospectionTypeRef) *IntrospectionTypeRef {
		return &IntrospectionTypeRef{Kind: TypeKindNonNull, OfType: ofType}
	}
	list := func(ofType *IntrospectionTypeRef) *IntrospectionTypeRef {
		return &IntrospectionTypeRef{Kind: TypeKindList, OfType: ofType}
	}

	noArgs := []IntrospectionInputValue{}
	includeDeprecatedArgs := []IntrospectionInputValue{
		{
			Name:         "includeDeprecated",
			Type:         booleanRef,
			DefaultValue: "false",
		},
	}

	return []IntrospectionType{
		{
			Kind: TypeKindObject,
			Name: "__Schema",
			Description: "A GraphQL Schema defines the capabilities of a GraphQL server. It exposes " +
				"all available types on the server, as well as the entry points for query, mutation, " +
				"and subscription operations.",
			Fields: []IntrospectionField{
				{
					Name:        "types",
					Description: "A list of all types supported by this server.",
					Args:        noArgs,
					Type:        nonNull(list(nonNull(typeRef))),
				},
				{
					Name:        "queryType",
					Description: "The type that query operations will be rooted at.",
					Args:        noArgs,
					Type:        nonNull(typeRef),
				},
				{
					Name: "mutationType",
					Description: "If this server supports mutation, the type that mutation operations " +
						"will be rooted at.",
					Args: noArgs,
					Type: typeRef,
				},
				{
					Name: "subscriptionType",
					Description: "If this server support subscription, the type that subscription " +
						"operations will be rooted at.",
					Args: noArgs,
					Type: typeRef,
				},
			},
			Interfaces: []*IntrospectionTypeRef{},
		},
		{
			Kind: TypeKindObject,
			Name: "__Type",
			Description: "The fundamental unit of any GraphQL Schema is the type. There are many " +
				"kinds of types in GraphQL as represented by the `__TypeKind` enum.\n\nDepending on " +
				"the kind of a type, certain fields describe information about that type. Scalar " +
				"types provide no information beyond a name and description, while Enum types provide " +
				"their values. Object and Interface types provide the fields they describe. Abstract " +
				"types, Union and Interface, provide the Object types possible at runtime. List and " +
				"NonNull types compose other types.",
			Fields: []IntrospectionField{
				{Name: "kind", Args: noArgs, Type: nonNull(typeKindRef)},
				{Name: "name", Args: noArgs, Type: stringRef},
				{Name: "description", Args: noArgs, Type: stringRef},
				{Name: "fields", Args: includeDeprecatedArgs, Type: list(nonNull(fieldRef))},
				{Name: "interfaces", Args: noArgs, Type: list(nonNull(typeRef))},
				{Name: "possibleTypes", Args: noArgs, Type: list(nonNull(typeRef))},
				{Name: "enumValues", Args: includeDeprecatedArgs, Type: list(nonNull(enumValueRef))},
				{Name: "inputFields", Args: noArgs, Type: list(nonNull(inputValueRef))},
				{Name: "ofType", Args: noArgs, Type: typeRef},
			},
			Interfaces: []*IntrospectionTypeRef{},
		},
		{
			Kind: TypeKindObject,
			Name: "__Field",
			Description: "Object and Interface types are described by a list of Fields, each of " +
				"which has a name, potentially a list of arguments, and a return type.",
			Fields: []IntrospectionField{
				{Name: "name", Args: noArgs, Type: nonNull(stringRef)},
				{Name: "description", Args: noArgs, Type: stringRef},
				{Name: "args", Args: noArgs, Type: nonNull(list(nonNull(inputValueRef)))},
				{Name: "type", Args: noArgs, Type: nonNull(typeRef)},
				{Name: "isDeprecated", Args: noArgs, Type: nonNull(booleanRef)},
				{Name: "deprecationReason", Args: noArgs, Type: stringRef},
			},
			Interfaces: []*IntrospectionTypeRef{},
		},
		{
			Kind: TypeKindObject,
			Name: "__InputValue",
			Description: "Arguments provided to Fields or Directives and the input fields of an " +
				"InputObject are represented as Input Values which describe their type and optionally " +
				"a default value.",
			Fields: []IntrospectionField{
				{Name: "name", Args: noArgs, Type: nonNull(stringRef)},
				{Name: "description", Args: noArgs, Type: stringRef},
				{Name: "type", Args: noArgs, Type: nonNull(typeRef)},
				{
					Name: "defaultValue",
					Description: "A GraphQL-formatted string representing the default value for this " +
						"input value.",
					Args: noArgs,
					Type: stringRef,
				},
			},
			Interfaces: []*IntrospectionTypeRef{},
		},
		{
			Kind: TypeKindObject,
			Name: "__EnumValue",
			Description: "One possible value for a given Enum. Enum values are unique values, not a " +
				"placeholder for a string or numeric value. However an Enum value is returned in a " +
				"JSON response as a string.",
			Fields: []IntrospectionField{
				{Name: "name", Args: noArgs, Type: nonNull(stringRef)},
				{Name: "description", Args: noArgs, Type: stringRef},
				{Name: "isDeprecated", Args: noArgs, Type: nonNull(booleanRef)},
				{Name: "deprecationReason", Args: noArgs, Type: stringRef},
			},
			Interfaces: []*IntrospectionTypeRef{},
		},
		{
			Kind:        TypeKindEnum,
			Name:        "__TypeKind",
			Description: "An enum describing what kind of type a given `__Type` is.",
			EnumValues: []IntrospectionEnumValue{
				{Name: "SCALAR", Description: "Indicates this type is a scalar."},
				{Name: "OBJECT", Description: "Indicates this type is an object. `fields` and `interfaces` are valid fields."},
				{Name: "INTERFACE", Description: "Indicates this type is an interface. `fields` and `possibleTypes` are valid fields."},
				{Name: "UNION", Description: "Indicates this type is a union. `possibleTypes` is a valid field."},
				{Name: "ENUM", Description: "Indicates this type is an enum. `enumValues` is a valid field."},
				{Name: "INPUT_OBJECT", Description: "Indicates this type is an input object. `inputFields` is a valid field."},
				{Name: "LIST", Description: "Indicates this type is a list. `ofType` is a valid field."},
				{Name: "NON_NULL", Description: "Indicates this type is a non-null. `ofType` is a valid field."},
			},
		},
	}
}
