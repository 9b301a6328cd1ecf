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

// InterfaceConfig provides specification to define an Interface type. It is given to
// SchemaConfig.Types for creating an Interface when the schema is built.
type InterfaceConfig struct {
	ThisIsTypeDefinition

	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Fields that need to be provided by types implementing the Interface
	Fields []FieldConfig
}

var _ TypeDefinition = (*InterfaceConfig)(nil)

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, an Interface type is used to
// describe what types are possible and what fields are in common across all types. Which Object
// types implement an interface is answered by the schema that registered them (see
// Schema.PossibleTypes); determining the Object type for a concrete value is the job of the
// IsTypeOf capability stored on each implementation.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Interfaces
type Interface struct {
	name        string
	description string
	fields      FieldList
}

var (
	_ Type         = (*Interface)(nil)
	_ AbstractType = (*Interface)(nil)
)

// graphqlType implements Type.
func (*Interface) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Interface) graphqlAbstractType() {}

// String implements Type.
func (i *Interface) String() string {
	return i.name
}

// Name implements TypeWithName.
func (i *Interface) Name() string {
	return i.name
}

// Description implements TypeWithDescription.
func (i *Interface) Description() string {
	return i.description
}

// Fields returns the set of fields that needs to be provided when implementing this interface, in
// the order they were defined.
func (i *Interface) Fields() FieldList {
	return i.fields
}

// Field finds the field with the given name or returns nil if there's no such one.
func (i *Interface) Field(name string) *Field {
	return i.fields.Lookup(name)
}
