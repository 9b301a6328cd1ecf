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

// TypeDefinition defines interfaces that are provided by all the type definition configs
// (ScalarConfig, ObjectConfig, etc.) accepted by SchemaConfig.Types. See the package documentation
// for more information.
type TypeDefinition interface {
	// ThisIsGraphQLTypeDefinition puts a special mark for a TypeDefinition objects.
	ThisIsGraphQLTypeDefinition()
}

// ThisIsTypeDefinition is a marker struct intended to be embedded in every TypeDefinition
// implementation
type ThisIsTypeDefinition struct{}

// ThisIsGraphQLTypeDefinition implements ThisIsGraphQLTypeDefinition.
func (ThisIsTypeDefinition) ThisIsGraphQLTypeDefinition() {}

//===-----------------------------------------------------------------------------------------====//
// Abstract type capabilities
//===-----------------------------------------------------------------------------------------====//

// IsTypeOf examines a runtime value and reports whether it belongs to the Object type that stored
// the capability. An engine uses it to settle which possible type of an abstract type produced a
// value. The function must be pure: same value, same answer, no side effects. The schema stores it
// without ever invoking it.
//
// Reference: https://facebook.github.io/graphql/June2018/#ResolveAbstractType()
type IsTypeOf interface {
	IsTypeOf(value interface{}) bool
}

// IsTypeOfFunc is an adapter to allow the use of ordinary functions as IsTypeOf.
type IsTypeOfFunc func(value interface{}) bool

// IsTypeOf calls f(value).
func (f IsTypeOfFunc) IsTypeOf(value interface{}) bool {
	return f(value)
}

// IsTypeOfFunc implements IsTypeOf.
var _ IsTypeOf = (IsTypeOfFunc)(nil)

// TypeResolver examines a runtime value and returns the name of the Union member type the value
// belongs to, or an empty string when it cannot tell. Like IsTypeOf, the function must be pure and
// is stored by the schema without ever being invoked.
//
// Reference: https://facebook.github.io/graphql/June2018/#ResolveAbstractType()
type TypeResolver interface {
	ResolveType(value interface{}) string
}

// TypeResolverFunc is an adapter to allow the use of ordinary functions as TypeResolver.
type TypeResolverFunc func(value interface{}) string

// ResolveType calls f(value).
func (f TypeResolverFunc) ResolveType(value interface{}) string {
	return f(value)
}

// TypeResolverFunc implements TypeResolver.
var _ TypeResolver = (TypeResolverFunc)(nil)
