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

// Package typeutil provides shared plumbing for implementing scalar coercers.
package typeutil

import (
	"fmt"
	"math"
	"reflect"
)

// CoercionMode tells a coercion handler which of the two coercions defined for scalar types is
// currently running.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type CoercionMode uint

// Enumeration of CoercionMode.
const (
	// ResultCoercionMode prepares an internal value for inclusion in a result.
	ResultCoercionMode CoercionMode = iota
	// InputCoercionMode parses a value read from query variables.
	InputCoercionMode
)

// CoercionContext carries the state shared by coercion handlers during one coercion.
type CoercionContext struct {
	Mode CoercionMode
}

// CoercionHelper coalesces the type switch required by every scalar coercer. Coercing a Go value
// means dealing with the full set of primitive types ({u}int{8,16,32,64} and friends) where most
// of them share one conversion. Go's type switch cannot merge cases with different types into
// common code, so the handlers below form a hierarchy instead: Coerce delivers a value to the
// handler for its exact type, and the default handlers forward to a coarser one (e.g., CoerceInt8
// forwards to CoerceSignedInteger) until an override takes over.
//
// NaN and the infinities never reach the float handlers. Coerce routes them to CoerceNaN and
// CoerceInf which reject them via RaiseNonValue unless overridden. Pointers are unwrapped before
// dispatch, so handlers only ever see values; a nil pointer coerces the same way as an untyped
// nil (i.e., via CoerceNil).
//
// To implement a coercer, define a struct with CoercionHelperBase embedded, override the handlers
// of interest and call SetImpl with the struct itself so the dispatch can see the overrides. Then
// call Coerce to execute a coercion.
type CoercionHelper interface {
	RaiseError(value interface{}, ctx *CoercionContext, format string, a ...interface{}) error

	RaiseInvalidTypeError(value interface{}, ctx *CoercionContext) error
	RaiseNonValue(value interface{}, ctx *CoercionContext) error

	CoerceBool(value bool, ctx *CoercionContext) (interface{}, error)

	CoerceSignedInteger(value int64, ctx *CoercionContext) (interface{}, error)
	CoerceInt(value int, ctx *CoercionContext) (interface{}, error)
	CoerceInt8(value int8, ctx *CoercionContext) (interface{}, error)
	CoerceInt16(value int16, ctx *CoercionContext) (interface{}, error)
	CoerceInt32(value int32, ctx *CoercionContext) (interface{}, error)
	CoerceInt64(value int64, ctx *CoercionContext) (interface{}, error)

	CoerceUnsignedInteger(value uint64, ctx *CoercionContext) (interface{}, error)
	CoerceUint(value uint, ctx *CoercionContext) (interface{}, error)
	CoerceUint8(value uint8, ctx *CoercionContext) (interface{}, error)
	CoerceUint16(value uint16, ctx *CoercionContext) (interface{}, error)
	CoerceUint32(value uint32, ctx *CoercionContext) (interface{}, error)
	CoerceUint64(value uint64, ctx *CoercionContext) (interface{}, error)

	CoerceInf(value interface{}, ctx *CoercionContext) (interface{}, error)
	CoerceNaN(value interface{}, ctx *CoercionContext) (interface{}, error)
	CoerceFloat(value float64, ctx *CoercionContext) (interface{}, error)
	CoerceFloat32(value float32, ctx *CoercionContext) (interface{}, error)
	CoerceFloat64(value float64, ctx *CoercionContext) (interface{}, error)

	CoerceString(value string, ctx *CoercionContext) (interface{}, error)

	CoerceNil(value interface{}, ctx *CoercionContext) (interface{}, error)
}

// CoercionHelperBase supplies the dispatch in Coerce and the default handler implementations that
// wire up the hierarchy described in CoercionHelper.
type CoercionHelperBase struct {
	impl CoercionHelper
}

// SetImpl registers the CoercionHelper whose handlers receive the dispatched values.
func (helper *CoercionHelperBase) SetImpl(impl CoercionHelper) {
	helper.impl = impl
}

// Coerce executes the coercion for given value.
func (helper *CoercionHelperBase) Coerce(value interface{}, ctx CoercionContext) (interface{}, error) {
	impl := helper.impl
	if impl == nil {
		panic("typeutil: SetImpl must be called before running Coerce")
	}

	switch value := value.(type) {
	// Boolean
	case bool:
		return impl.CoerceBool(value, &ctx)

	// Integers
	case int:
		return impl.CoerceInt(value, &ctx)
	case int8:
		return impl.CoerceInt8(value, &ctx)
	case int16:
		return impl.CoerceInt16(value, &ctx)
	case int32:
		return impl.CoerceInt32(value, &ctx)
	case int64:
		return impl.CoerceInt64(value, &ctx)
	case uint:
		return impl.CoerceUint(value, &ctx)
	case uint8:
		return impl.CoerceUint8(value, &ctx)
	case uint16:
		return impl.CoerceUint16(value, &ctx)
	case uint32:
		return impl.CoerceUint32(value, &ctx)
	case uint64:
		return impl.CoerceUint64(value, &ctx)

	// Float
	case float32:
		// Widening to float64 preserves NaN and the infinities.
		if f := float64(value); math.IsNaN(f) {
			return impl.CoerceNaN(value, &ctx)
		} else if math.IsInf(f, 0) {
			return impl.CoerceInf(value, &ctx)
		}
		return impl.CoerceFloat32(value, &ctx)

	case float64:
		if math.IsNaN(value) {
			return impl.CoerceNaN(value, &ctx)
		} else if math.IsInf(value, 0) {
			return impl.CoerceInf(value, &ctx)
		}
		return impl.CoerceFloat64(value, &ctx)

	// String
	case string:
		return impl.CoerceString(value, &ctx)

	// nil value
	case nil:
		return impl.CoerceNil(value, &ctx)
	}

	// Unwrap pointers so the handlers only ever see values. This also covers pointer types the
	// type switch above cannot enumerate (named pointer types, pointers to pointers).
	if v := reflect.ValueOf(value); v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return impl.CoerceNil(nil, &ctx)
		}
		return helper.Coerce(v.Elem().Interface(), ctx)
	}

	return nil, impl.RaiseInvalidTypeError(value, &ctx)
}

// RaiseError implements CoercionHelper.
func (helper *CoercionHelperBase) RaiseError(value interface{}, ctx *CoercionContext, format string, a ...interface{}) error {
	return fmt.Errorf("cannot coerce %+v: %s", value, fmt.Sprintf(format, a...))
}

// RaiseInvalidTypeError implements CoercionHelper.
func (helper *CoercionHelperBase) RaiseInvalidTypeError(value interface{}, ctx *CoercionContext) error {
	switch ctx.Mode {
	case ResultCoercionMode:
		return helper.impl.RaiseError(value, ctx, "unexpected result type `%T`", value)

	case InputCoercionMode:
		return helper.impl.RaiseError(value, ctx, "invalid variable type `%T`", value)
	}

	panic("unknown mode")
}

// RaiseNonValue implements CoercionHelper.
func (helper *CoercionHelperBase) RaiseNonValue(value interface{}, ctx *CoercionContext) error {
	return helper.impl.RaiseError(value, ctx, "not a value")
}

// CoerceBool implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceBool(value bool, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceSignedInteger implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceSignedInteger(value int64, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceInt implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInt(value int, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceSignedInteger(int64(value), ctx)
}

// CoerceInt8 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInt8(value int8, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceSignedInteger(int64(value), ctx)
}

// CoerceInt16 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInt16(value int16, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceSignedInteger(int64(value), ctx)
}

// CoerceInt32 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInt32(value int32, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceSignedInteger(int64(value), ctx)
}

// CoerceInt64 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInt64(value int64, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceSignedInteger(value, ctx)
}

// CoerceUnsignedInteger implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUnsignedInteger(value uint64, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceUint implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUint(value uint, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceUnsignedInteger(uint64(value), ctx)
}

// CoerceUint8 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUint8(value uint8, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceUnsignedInteger(uint64(value), ctx)
}

// CoerceUint16 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUint16(value uint16, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceUnsignedInteger(uint64(value), ctx)
}

// CoerceUint32 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUint32(value uint32, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceUnsignedInteger(uint64(value), ctx)
}

// CoerceUint64 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUint64(value uint64, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceUnsignedInteger(value, ctx)
}

// CoerceInf implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInf(value interface{}, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseNonValue(value, ctx)
}

// CoerceNaN implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceNaN(value interface{}, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseNonValue(value, ctx)
}

// CoerceFloat implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceFloat(value float64, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceFloat32 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceFloat32(value float32, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceFloat(float64(value), ctx)
}

// CoerceFloat64 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceFloat64(value float64, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceFloat(value, ctx)
}

// CoerceString implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceString(value string, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceNil implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceNil(value interface{}, ctx *CoercionContext) (interface{}, error) {
	// Accept nil value in coercion.
	return nil, nil
}
