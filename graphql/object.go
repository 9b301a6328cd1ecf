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

// ObjectConfig provides specification to define an Object type. It is given to SchemaConfig.Types
// for creating an Object when the schema is built.
type ObjectConfig struct {
	ThisIsTypeDefinition

	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// Interfaces implemented by the defining Object, referenced by name
	Interfaces []string

	// Fields in the object
	Fields []FieldConfig

	// IsTypeOf, when provided, is stored on the built Object so an engine can ask whether a runtime
	// value belongs to this type. The schema itself never invokes it.
	IsTypeOf IsTypeOf
}

var _ TypeDefinition = (*ObjectConfig)(nil)

// Object Type Definition
//
// GraphQL data is hierarchical and composed, describing a tree of information. While Scalar types
// describe the leaf values of these hierarchies, Objects describe the intermediate levels.
//
// Objects are created by building a schema from an ObjectConfig; their field and interface refs
// require the registered names of the schema to resolve.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object struct {
	name        string
	description string
	fields      FieldList
	interfaces  []*Interface
	isTypeOf    IsTypeOf
}

var (
	_ Type         = (*Object)(nil)
	_ TypeWithName = (*Object)(nil)
)

// graphqlType implements Type.
func (*Object) graphqlType() {}

// String implements Type.
func (o *Object) String() string {
	return o.name
}

// Name implements TypeWithName.
func (o *Object) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *Object) Description() string {
	return o.description
}

// Fields returns the fields in the object in the order they were defined.
func (o *Object) Fields() FieldList {
	return o.fields
}

// Field finds the field with the given name or returns nil if there's no such one.
func (o *Object) Field(name string) *Field {
	return o.fields.Lookup(name)
}

// Interfaces returns the interfaces implemented by the Object type.
func (o *Object) Interfaces() []*Interface {
	return o.interfaces
}

// IsTypeOf returns the stored capability for deciding whether a runtime value belongs to this
// type, or nil when the definition didn't provide one.
func (o *Object) IsTypeOf() IsTypeOf {
	return o.isTypeOf
}
