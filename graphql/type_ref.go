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
)

// A TypeRef names a type without holding it. Type definitions use refs to describe the types of
// their fields and arguments so definitions can reference each other freely, including mutually
// recursive and self-referential ones, regardless of the order they are given in a SchemaConfig.
// Refs are resolved against the registered type names when a schema is built.
type TypeRef interface {
	// String representation when printing the ref; matches the type notation that the resolved type
	// would print.
	fmt.Stringer

	// graphqlTypeRef is a special mark to limit the set of objects that can be assigned to a
	// TypeRef.
	graphqlTypeRef()
}

// namedTypeRef refers to a named type (e.g., "Dog") to be looked up in the schema being built.
type namedTypeRef struct {
	name string
}

var _ TypeRef = namedTypeRef{}

// String implements TypeRef.
func (ref namedTypeRef) String() string {
	return ref.name
}

// graphqlTypeRef implements TypeRef.
func (namedTypeRef) graphqlTypeRef() {}

// listTypeRef refers to a List type whose element type is given by another ref.
type listTypeRef struct {
	elementRef TypeRef
}

var _ TypeRef = listTypeRef{}

// String implements TypeRef.
func (ref listTypeRef) String() string {
	return fmt.Sprintf("[%s]", ref.elementRef)
}

// graphqlTypeRef implements TypeRef.
func (listTypeRef) graphqlTypeRef() {}

// nonNullTypeRef refers to a NonNull type whose inner type is given by another ref.
type nonNullTypeRef struct {
	innerRef TypeRef
}

var _ TypeRef = nonNullTypeRef{}

// String implements TypeRef.
func (ref nonNullTypeRef) String() string {
	return fmt.Sprintf("%s!", ref.innerRef)
}

// graphqlTypeRef implements TypeRef.
func (nonNullTypeRef) graphqlTypeRef() {}

// NamedOf returns a ref to the type registered under the given name. The name doesn't need to be
// registered at the time the ref is created; it is resolved when the schema is built and an
// unknown name fails the build at that point.
func NamedOf(name string) TypeRef {
	return namedTypeRef{name}
}

// ListOf returns a ref to a List type wrapping the type referred by elementRef.
func ListOf(elementRef TypeRef) TypeRef {
	return listTypeRef{elementRef}
}

// ListOfNamed is a shorthand for ListOf(NamedOf(name)).
func ListOfNamed(name string) TypeRef {
	return listTypeRef{namedTypeRef{name}}
}

// NonNullOf returns a ref to a NonNull type wrapping the type referred by innerRef. A ref which
// wraps a NonNull in another NonNull can be created but fails schema validation when resolved.
func NonNullOf(innerRef TypeRef) TypeRef {
	return nonNullTypeRef{innerRef}
}

// NonNullOfNamed is a shorthand for NonNullOf(NamedOf(name)).
func NonNullOfNamed(name string) TypeRef {
	return nonNullTypeRef{namedTypeRef{name}}
}
