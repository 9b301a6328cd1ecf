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

// IsEqualType returns true if the two given types denote the same type. Wrapping types are equal
// when they wrap equal types. Named types are only equal to themselves.
func IsEqualType(typeA Type, typeB Type) bool {
	// Equivalent types are equal.
	if typeA == typeB {
		return true
	}

	// If either type is non-null, the other must also be non-null.
	if typeA, ok := typeA.(*NonNull); ok {
		if typeB, ok := typeB.(*NonNull); ok {
			return IsEqualType(typeA.InnerType(), typeB.InnerType())
		}
		return false
	}

	// If either type is a list, the other must also be a list.
	if typeA, ok := typeA.(*List); ok {
		if typeB, ok := typeB.(*List); ok {
			return IsEqualType(typeA.ElementType(), typeB.ElementType())
		}
		return false
	}

	return false
}

// IsTypeSubTypeOf returns true when maybeSubType is equal to or a subset of superType
// (covariant). In particular, a non-null type is a subtype of its nullable counterpart and an
// Object type is a subtype of any abstract type that counts it among its possible types.
func IsTypeSubTypeOf(schema *Schema, maybeSubType Type, superType Type) bool {
	// Equivalent type is a valid subtype.
	if maybeSubType == superType {
		return true
	}

	// If superType is non-null, maybeSubType must also be non-null.
	if superType, ok := superType.(*NonNull); ok {
		if maybeSubType, ok := maybeSubType.(*NonNull); ok {
			return IsTypeSubTypeOf(schema, maybeSubType.InnerType(), superType.InnerType())
		}
		return false
	}

	// If superType is nullable, maybeSubType may be non-null or nullable.
	if maybeSubType, ok := maybeSubType.(*NonNull); ok {
		return IsTypeSubTypeOf(schema, maybeSubType.InnerType(), superType)
	}

	// If superType type is a list, maybeSubType type must also be a list.
	if superType, ok := superType.(*List); ok {
		if maybeSubType, ok := maybeSubType.(*List); ok {
			return IsTypeSubTypeOf(schema, maybeSubType.ElementType(), superType.ElementType())
		}
		return false
	}

	// If superType is not a list, maybeSubType must also be not a list.
	if _, ok := maybeSubType.(*List); ok {
		return false
	}

	// If superType type is an abstract type, check whether maybeSubType is one of its currently
	// possible object types.
	if superType, ok := superType.(AbstractType); ok {
		if maybeSubType, ok := maybeSubType.(*Object); ok {
			return schema.possibleTypeSetFor(superType).Contains(maybeSubType)
		}
	}

	// Otherwise, maybeSubType is not a valid subtype of superType.
	return false
}
