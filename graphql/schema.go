/**
 * Copyright (c) 2018, The Artemis Authors.
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
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/vektah/gqlparser/v2/ast"
)

// PossibleTypeSet is the set of Object types that may appear at a place whose type is an abstract
// type. For an Interface, these are the Object types implementing it. For a Union, these are its
// member types.
type PossibleTypeSet []*Object

// Contains returns true if t is in the set.
func (set PossibleTypeSet) Contains(t *Object) bool {
	for _, possibleType := range set {
		if possibleType == t {
			return true
		}
	}
	return false
}

// TypeMap keeps track of all named types defined in a schema.
type TypeMap struct {
	types map[string]Type
}

// Lookup finds a type with given name or returns nil if the map doesn't contain one.
func (typeMap TypeMap) Lookup(name string) Type {
	return typeMap.types[name]
}

// Size returns the number of types in the map.
func (typeMap TypeMap) Size() int {
	return len(typeMap.types)
}

// TypeNames returns the names of all types in the map in lexicographic order.
func (typeMap TypeMap) TypeNames() []string {
	names := make([]string, 0, len(typeMap.types))
	for name := range typeMap.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// suggestNames returns names of types in the map that are lexically close to the given name.
func (typeMap TypeMap) suggestNames(name string) []string {
	return suggestionList(name, typeMap.TypeNames())
}

// SchemaState tells how far a Schema has progressed through its life cycle.
type SchemaState uint32

// A Schema starts in the Building state. Build moves it to Validated when the definitions in its
// SchemaConfig resolve and validate cleanly and to Failed otherwise. The state never changes
// again afterwards.
const (
	SchemaStateBuilding SchemaState = iota
	SchemaStateValidated
	SchemaStateFailed
)

// String implements fmt.Stringer.
func (state SchemaState) String() string {
	switch state {
	case SchemaStateBuilding:
		return "Building"
	case SchemaStateValidated:
		return "Validated"
	case SchemaStateFailed:
		return "Failed"
	}
	return fmt.Sprintf("SchemaState(%d)", uint32(state))
}

// schemaStateWord holds the SchemaState of a Schema. It is written by SchemaBuilder.Build and read
// without locks everywhere else.
type schemaStateWord uint32

// Load loads the state word with atomic.LoadUint32 because it is a lock-free variable. This
// suppresses the errors from Go's race detector. On conventional machines (e.g., x86-64), this is
// the same as dereferencing a uint32 pointer. See [0] for more details.
//
// [0]: https://golang.org/doc/articles/race_detector.html#Primitive_unprotected_variable
func (s *schemaStateWord) Load() SchemaState {
	return SchemaState(atomic.LoadUint32((*uint32)(s)))
}

// Store sets the state word.
func (s *schemaStateWord) Store(state SchemaState) {
	atomic.StoreUint32((*uint32)(s), uint32(state))
}

// Schema Definition
//
// A GraphQL service's collective type system capabilities are referred to as that service's
// "schema". A schema is defined in terms of the types it supports as well as the root operation
// types for each kind of operation: query, mutation, and subscription; this determines the place
// in the type system where those operations begin.
//
// A Schema is created with NewSchema (or through a SchemaBuilder) and is immutable once its Build
// has completed. Queries on a validated Schema never take locks and are safe for concurrent use.
// Queries made before validation completed report an error with ErrKindNotReady.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema
type Schema struct {
	// state is advanced by SchemaBuilder.Build and only ever read elsewhere. Once it reaches
	// Validated or Failed it never changes again.
	state schemaStateWord

	// query, mutation and subscription are root operation objects.
	query        *Object
	mutation     *Object
	subscription *Object

	// typeMap contains all named types defined in the schema.
	typeMap TypeMap

	// implementations keeps track of the Object types implementing each Interface, keyed by the
	// interface name.
	implementations map[string]PossibleTypeSet
}

// State tells how far the schema has progressed through its life cycle. See SchemaState.
func (schema *Schema) State() SchemaState {
	return schema.state.Load()
}

// notReadyError builds the error reported for queries made on a schema that has not been
// validated.
func (schema *Schema) notReadyError(op Op) error {
	return NewError(fmt.Sprintf("Schema is not ready (state: %s).", schema.state.Load()), op, ErrKindNotReady)
}

// Type finds the named type defined in the schema. It reports an error with ErrKindUnknownType
// when the schema doesn't define a type with the name and an error with ErrKindNotReady when the
// schema has not been validated.
func (schema *Schema) Type(name string) (Type, error) {
	const op Op = "Schema.Type"

	if schema.state.Load() != SchemaStateValidated {
		return nil, schema.notReadyError(op)
	}

	t := schema.typeMap.Lookup(name)
	if t == nil {
		return nil, NewError(
			fmt.Sprintf(`Unknown type "%s".%s`, name, didYouMean("", schema.typeMap.suggestNames(name))),
			op, ErrKindUnknownType)
	}
	return t, nil
}

// TypeMap returns the map of all named types defined in the schema. Before the schema is
// validated the map is empty.
func (schema *Schema) TypeMap() TypeMap {
	if schema.state.Load() != SchemaStateValidated {
		return TypeMap{}
	}
	return schema.typeMap
}

// Query is one of the three GraphQL Root Operations. It returns nil if the schema has not been
// validated or doesn't define a query root.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Query() *Object {
	if schema.state.Load() != SchemaStateValidated {
		return nil
	}
	return schema.query
}

// Mutation is one of the three GraphQL Root Operations. It returns nil if the schema has not been
// validated or doesn't define a mutation root.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Mutation() *Object {
	if schema.state.Load() != SchemaStateValidated {
		return nil
	}
	return schema.mutation
}

// Subscription is one of the three GraphQL Root Operations. It returns nil if the schema has not
// been validated or doesn't define a subscription root.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Subscription() *Object {
	if schema.state.Load() != SchemaStateValidated {
		return nil
	}
	return schema.subscription
}

// PossibleTypes returns concrete types for an abstract type in the schema. For an Interface, this
// is the set of Object types that implement it. For a Union, this is the set of its member types.
func (schema *Schema) PossibleTypes(t AbstractType) (PossibleTypeSet, error) {
	const op Op = "Schema.PossibleTypes"

	if schema.state.Load() != SchemaStateValidated {
		return nil, schema.notReadyError(op)
	}

	switch t := t.(type) {
	case *Union:
		return t.PossibleTypes(), nil
	case *Interface:
		return schema.implementations[t.Name()], nil
	}
	return nil, NewError(fmt.Sprintf("Cannot find possible types for %s: unsupported abstract type %T.", t, t), op)
}

// IsSubTypeOf reports whether maybeSubType may be used where a value of type superType is
// expected. See IsTypeSubTypeOf for the subtype relation.
func (schema *Schema) IsSubTypeOf(maybeSubType Type, superType Type) (bool, error) {
	const op Op = "Schema.IsSubTypeOf"

	if schema.state.Load() != SchemaStateValidated {
		return false, schema.notReadyError(op)
	}
	return IsTypeSubTypeOf(schema, maybeSubType, superType), nil
}

// possibleTypeSetFor is the lock-free lookup behind PossibleTypes used internally during
// validation, where the schema is still in the Building state.
func (schema *Schema) possibleTypeSetFor(t AbstractType) PossibleTypeSet {
	switch t := t.(type) {
	case *Union:
		return t.PossibleTypes()
	case *Interface:
		return schema.implementations[t.Name()]
	}
	return nil
}

// TypeFromAST returns the Type in the schema that the given AST type notation refers to. For
// example, if provided the parsed AST node for "[User]", a List instance is returned, wrapping
// the type called "User" found in the schema.
func (schema *Schema) TypeFromAST(t *ast.Type) (Type, error) {
	const op Op = "Schema.TypeFromAST"

	if schema.state.Load() != SchemaStateValidated {
		return nil, schema.notReadyError(op)
	}

	if t == nil {
		return nil, NewError("Must provide an AST type notation.", op)
	}

	var result Type
	if len(t.NamedType) != 0 {
		result = schema.typeMap.Lookup(t.NamedType)
		if result == nil {
			return nil, NewError(
				fmt.Sprintf(`Unknown type "%s".%s`, t.NamedType, didYouMean("", schema.typeMap.suggestNames(t.NamedType))),
				op, ErrKindUnknownType)
		}
	} else {
		elementType, err := schema.TypeFromAST(t.Elem)
		if err != nil {
			return nil, err
		}
		result, err = NewListOfType(elementType)
		if err != nil {
			return nil, NewError("cannot build list type from AST notation", err, op)
		}
	}

	if t.NonNull {
		nonNullType, err := NewNonNullOfType(result)
		if err != nil {
			return nil, NewError("cannot build non-null type from AST notation", err, op)
		}
		return nonNullType, nil
	}
	return result, nil
}
