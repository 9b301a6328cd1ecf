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
	"log"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as "graphql.NewSchema".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of Kind
const (
	ErrKindOther         ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindCoercion                     // Failed to coerce an input or result value for the desired GraphQL type.
	ErrKindDuplicateName                // Two type definitions (or two fields, etc.) share the same name.
	ErrKindUnknownType                  // A type reference doesn't name any registered type.
	ErrKindValidation                   // A type definition breaks a schema validation rule.
	ErrKindNotReady                     // The schema hasn't completed validation and cannot answer queries.
	ErrKindInternal                     // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindCoercion:
		return "coercion error"
	case ErrKindDuplicateName:
		return "duplicate name error"
	case ErrKindUnknownType:
		return "unknown type error"
	case ErrKindValidation:
		return "validation error"
	case ErrKindNotReady:
		return "schema not ready error"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// ErrorExtensions provides an additional entry to a GraphQL error with key "extensions". It is
// useful for attaching vendor-specific error data (such as error code).
//
// Reference: https://github.com/facebook/graphql/pull/407
type ErrorExtensions map[string]interface{}

// TypePath is an array of names that locates an element in the type system: a type name, possibly
// followed by a field (or enum value) name, possibly followed by an argument name. It should be
// presented when an error can be associated to a particular definition in the schema being built.
type TypePath struct {
	keys []string
}

// NewTypePath builds a TypePath from names sorted from the outermost element to the innermost one.
func NewTypePath(keys ...string) TypePath {
	return TypePath{keys}
}

// Empty returns true if the path doesn't contain any path keys.
func (path TypePath) Empty() bool {
	return len(path.keys) == 0
}

// AppendName adds the name of an inner element to the end of current path.
func (path *TypePath) AppendName(name string) {
	path.keys = append(path.keys, name)
}

// Clone makes a deep copy of the path.
func (path TypePath) Clone() TypePath {
	if len(path.keys) == 0 {
		return TypePath{}
	}

	keys := make([]string, len(path.keys))
	copy(keys, path.keys)
	return TypePath{keys}
}

// String serializes a TypePath to more readable format.
func (path TypePath) String() string {
	return strings.Join(path.keys, ".")
}

// typePathMarshaller implements jsoniter.ValEncoder to encode TypePath to JSON.
type typePathMarshaller struct{}

var _ jsoniter.ValEncoder = typePathMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (typePathMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return len((*TypePath)(ptr).keys) == 0
}

// Encode implements jsoniter.ValEncoder.
func (typePathMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	path := (*TypePath)(ptr)
	numPathKeys := len(path.keys)
	stream.WriteArrayStart()
	for i, key := range path.keys {
		stream.WriteString(key)
		if i != numPathKeys-1 {
			stream.WriteMore()
		}
	}
	stream.WriteArrayEnd()
}

// MarshalJSON serializes path keys to JSON.
func (path *TypePath) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(path)
}

// ErrorWithPath indicates an error that contains a path for reporting. If "path" is not given in
// the arguments to NewError, NewError will retrieve the one from the underlying error (if provided)
// that implements this interface.
type ErrorWithPath interface {
	Path() TypePath
}

// ErrorWithExtensions indicates an error that contains extensions data. If "extensions" is not
// given in the arguments to NewError, NewError will retrieve the one from the underlying error (if
// provided) that implements this interface.
type ErrorWithExtensions interface {
	Extensions() ErrorExtensions
}

// An Error describes an error found while defining, building or validating a GraphQL type system,
// or while coercing values for its leaf types. It can be serialized to JSON for reporting.
//
// An Error can be built by wrapping an error value. Information (if unspecified in the arguments
// to NewError) in the error value will be propagated to the newly created Error. Each intermediate
// function either passes the error through to its caller, or wraps it with further information, or
// even rewrites it.
//
// It also includes Op and ErrKind which will show when printing the error value. This makes it
// helpful for programmers.
type Error struct {
	// Message describes the error for debugging purposes.
	Message string

	// Path locates the type system element which experienced the error. It should be presented when
	// an error can be associated to a particular type, field or argument in the schema being built.
	Path TypePath

	// Rule identifies the schema validation rule that found the error. It is only set on errors of
	// kind ErrKindValidation.
	Rule ValidationRule

	// Extensions contains data to be added to the serialized error
	Extensions ErrorExtensions

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

// Error implements Go error interface.
var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Inspired by the design of upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case TypePath:
			e.Path = arg

		case ValidationRule:
			e.Rule = arg

		case ErrorExtensions:
			e.Extensions = arg

		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Propagate path, rule or extensions from underlying error when one is not provided in
	// argument.
	prev := e.Err
	if prev != nil {
		if e.Path.Empty() {
			switch errWithPath := prev.(type) {
			case ErrorWithPath:
				e.Path = errWithPath.Path()
			case *Error:
				if !errWithPath.Path.Empty() {
					e.Path = errWithPath.Path.Clone()
				}
			}
		}

		if len(e.Rule) == 0 {
			if prev, ok := prev.(*Error); ok {
				e.Rule = prev.Rule
			}
		}

		if e.Extensions == nil {
			switch errWithExtensions := prev.(type) {
			case ErrorWithExtensions:
				e.Extensions = errWithExtensions.Extensions()
			case *Error:
				e.Extensions = errWithExtensions.Extensions
			}
		}

		// Pull kind from underlying error.
		if e.Kind == ErrKindOther {
			if prev, ok := prev.(*Error); ok {
				e.Kind = prev.Kind
			}
		}
	}

	return e
}

// WrapError is a convenient wrapper to build an Error value from an underlying error with a
// message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but with the format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// NewCoercionError builds an error which tells the caller of a coercer that the given value cannot
// be represented in the type being coerced. Custom ScalarResultCoercer and ScalarInputCoercer
// implementations should build their errors with this function (or include ErrKindCoercion when
// calling NewError); a returned error of any other kind is taken as an unexpected failure inside
// the coercer rather than a statement about the value, and callers will wrap it with
// NewDefaultResultCoercionError before reporting.
func NewCoercionError(format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), ErrKindCoercion)
}

// NewDefaultResultCoercionError builds a coercion error in the canonical "type cannot represent
// value" form from the name of the type being coerced, the offending value and an optional
// underlying error describing the cause.
func NewDefaultResultCoercionError(typeName string, value interface{}, err error) error {
	if s, ok := value.(string); ok {
		value = strconv.Quote(s)
	}
	if err == nil {
		return NewCoercionError("%s cannot represent %v", typeName, value)
	}
	return NewCoercionError("%s cannot represent %v: %s", typeName, value, err)
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil)
	return b.String()
}

func (e *Error) printError(b *strings.Builder, nextErr *Error) {
	// If the previous error was also one of ours, suppress duplications so the message won't contain
	// the same path, kind or rule twice.
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if !e.Path.Empty() {
		// Don't print path if the next error already did.
		if nextErr == nil || !reflect.DeepEqual(nextErr.Path, e.Path) {
			if b.Len() == initialLen {
				b.WriteString("For ")
			} else {
				b.WriteString(" for ")
			}
			b.WriteString("type system element ")
			b.WriteString(e.Path.String())
		}
	}

	if e.Kind != ErrKindOther {
		// Don't print kind if the next error has the same kind as ours.
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if len(e.Rule) > 0 {
		// Don't print rule if the next error already did.
		if nextErr == nil || nextErr.Rule != e.Rule {
			pad(" (rule: ")
			b.WriteString(string(e.Rule))
			b.WriteString(")")
		}
	}

	if len(e.Extensions) > 0 {
		// Don't print extensions if the next error already did.
		if nextErr == nil || !reflect.DeepEqual(nextErr.Extensions, e.Extensions) {
			pad(" (additional info: ")
			b.WriteString(fmt.Sprintf("%v)", e.Extensions))
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Indent on new line if we are cascading non-empty Error.
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	if !err.Path.Empty() {
		stream.WriteMore()
		stream.WriteObjectField("path")
		stream.WriteVal(&err.Path)
	}

	if len(err.Rule) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("rule")
		stream.WriteString(string(err.Rule))
	}

	numExtensions := len(err.Extensions)
	if numExtensions > 0 {
		stream.WriteMore()
		stream.WriteObjectField("extensions")
		stream.WriteObjectStart()
		for k, v := range err.Extensions {
			stream.WriteObjectField(k)
			stream.WriteVal(v)
			numExtensions--
			if numExtensions > 0 {
				stream.WriteMore()
			}
		}
		stream.WriteObjectEnd()
	}

	stream.WriteObjectEnd()
}

// Errors wraps a list of Error. Intentionally wrapped in a struct instead of a simple alias to
// []*Error (i.e., "type Errors []*Error") to enforce error checks to use errs.HaveOccurred()
// instead of (errs != nil) (errs may be an empty array which should be treat as no error).
type Errors struct {
	Errors []*Error
}

// Errors also implements Go's error interface so a collection can be handed to callers that expect
// a single error value.
var _ error = Errors{}

// ErrorsOf is an utility function to constructs an Errors value. It takes arguments in one of the
// form otherwise it panics:
//
// 1. An array of *graphql.Error's; or
// 2. Arguments that can be taken by NewError to construct an Error value; That is, a string
//    specified the error message followed by other error context (e.g., a path).
// 3. An array of *graphql.Error's followed by arguments that can be taken by NewError.
//
// This is useful for use in construct-and-return. For example,
//
//	func SomethingMightFail() graphql.Errors {
//		...
//
//		// Something wrong; Construct an error and return it.
//		return graphql.ErrorsOf("something wrong")
//	}
func ErrorsOf(args ...interface{}) Errors {
	var errs Errors
	for i, arg := range args {
		switch arg := arg.(type) {
		case error:
			errs.Append(arg)

		case string:
			errs.Emplace(arg, args[(i+1):]...)
			return errs

		default:
			panic("Errors.Emplace: bad call")
		}
	}
	return errs
}

// NoErrors constructs an empty Errors.
func NoErrors() Errors {
	return Errors{}
}

// Emplace constructs an Error from arguments and append to the errs. (We borrowed the name from
// C++'s std::list::emplace.) It updates the list in the receiving Errors object (note about the
// pointer receiver). Note that it would panic if unsupported argument is supplied in args.
func (errs *Errors) Emplace(message string, args ...interface{}) {
	// Construct an Error value from arguments and append to the list.
	errs.Append(NewError(message, args...))
}

// Append appends list of Error's to the end of the Errors. Note that the given error must be an
// graphql.Error otherwise it panics. The update is occurred in-place to the given Errors.
func (errs *Errors) Append(e ...error) {
	for _, err := range e {
		// The type assertion may fail resulting a panic if args contains unsupported type of value
		// (in which NewError will return an error built from fmt.Errorf).
		errs.Errors = append(errs.Errors, err.(*Error))
	}
}

// AppendErrors takes a list of Errors's and pulls every Error in each Errors to append to "errs".
// The update is occurred in-place to the given Errors.
func (errs *Errors) AppendErrors(e ...Errors) {
	size := len(errs.Errors)
	// Compute the new size.
	for _, err := range e {
		size += len(err.Errors)
	}

	// Make a new array.
	newErrors := make([]*Error, size)

	// Make a copy of current errs in new array.
	copy(newErrors, errs.Errors)

	// Make a copy of every Error's in given ones.
	i := len(errs.Errors)
	for _, err := range e {
		copy(newErrors[i:], err.Errors)
		i += len(err.Errors)
	}

	errs.Errors = newErrors
}

// HaveOccurred returns true if some errors exist. Use this instead of relying on "errs != nil" for
// checking existence of error because errs may be an empty array.
func (errs Errors) HaveOccurred() bool {
	return len(errs.Errors) > 0
}

// Error implements Go's error interface. Each error in the collection is printed on its own line.
func (errs Errors) Error() string {
	switch len(errs.Errors) {
	case 0:
		return "no errors"
	case 1:
		return errs.Errors[0].Error()
	}

	var b strings.Builder
	for i, err := range errs.Errors {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func init() {
	jsoniter.RegisterTypeEncoder("graphql.TypePath", typePathMarshaller{})
	jsoniter.RegisterTypeEncoder("graphql.Error", errorMarshaller{})
}
