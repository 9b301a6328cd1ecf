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

// UnionConfig provides specification to define a Union type. It is given to SchemaConfig.Types for
// creating a Union when the schema is built.
type UnionConfig struct {
	ThisIsTypeDefinition

	// Name of the defining Union
	Name string

	// Description for the Union type
	Description string

	// PossibleTypes names the Object types that can be represented by the defining union. Each must
	// resolve to an Object type.
	PossibleTypes []string

	// TypeResolver, when provided, is stored on the built Union so an engine can ask which member
	// type a runtime value belongs to. The schema itself never invokes it.
	TypeResolver TypeResolver
}

var _ TypeDefinition = (*UnionConfig)(nil)

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible as well as providing a capability an engine can use to determine which
// type a concrete value belongs to.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Unions
type Union struct {
	name          string
	description   string
	possibleTypes PossibleTypeSet
	typeResolver  TypeResolver
}

var (
	_ Type         = (*Union)(nil)
	_ AbstractType = (*Union)(nil)
)

// graphqlType implements Type.
func (*Union) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Union) graphqlAbstractType() {}

// String implements Type.
func (u *Union) String() string {
	return u.name
}

// Name implements TypeWithName.
func (u *Union) Name() string {
	return u.name
}

// Description implements TypeWithDescription.
func (u *Union) Description() string {
	return u.description
}

// PossibleTypes returns the member types of the union in the order they were defined.
func (u *Union) PossibleTypes() PossibleTypeSet {
	return u.possibleTypes
}

// TypeResolver returns the stored capability for determining the member type of a runtime value,
// or nil when the definition didn't provide one.
func (u *Union) TypeResolver() TypeResolver {
	return u.typeResolver
}
