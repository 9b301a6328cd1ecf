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

package graphql_test

import (
	"encoding/json"
	"errors"

	"github.com/botobag/leto/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func newError(message string, args ...interface{}) *graphql.Error {
	e, ok := graphql.NewError(message, args...).(*graphql.Error)
	Expect(ok).Should(BeTrue())
	return e
}

func wrapError(message string, err error) *graphql.Error {
	e, ok := graphql.WrapError(err, message).(*graphql.Error)
	Expect(ok).Should(BeTrue())
	return e
}

func expectSerializationResult(e error, expected string) {
	s, err := json.Marshal(e)
	Expect(err).ShouldNot(HaveOccurred())
	Expect(s).Should(MatchJSON(expected))
}

func expectOutputResult(e error, expected string) {
	Expect(e.Error()).Should(Equal(expected), e.Error())
}

type errWithPath struct {
	path graphql.TypePath
}

// Path implements graphql.ErrorWithPath.
func (e *errWithPath) Path() graphql.TypePath {
	return e.path
}

// Error implements Go's error interface
func (e *errWithPath) Error() string {
	return "error provided path"
}

type errWithExtensions struct {
	extensions graphql.ErrorExtensions
}

// Extensions implements graphql.ErrorWithExtensions.
func (e *errWithExtensions) Extensions() graphql.ErrorExtensions {
	return e.extensions
}

// Error implements Go's error interface
func (e *errWithExtensions) Error() string {
	return "error provided extensions"
}

var (
	_ graphql.ErrorWithPath       = (*errWithPath)(nil)
	_ graphql.ErrorWithExtensions = (*errWithExtensions)(nil)
	_ error                       = (*errWithPath)(nil)
	_ error                       = (*errWithExtensions)(nil)
)

var _ = Describe("Error", func() {
	var (
		mockPath       graphql.TypePath
		mockExtensions graphql.ErrorExtensions
	)

	BeforeEach(func() {
		mockPath = graphql.NewTypePath("Droid", "friends", "first")

		mockExtensions = graphql.ErrorExtensions{
			"code": "CAN_NOT_FETCH_BY_ID",
		}
	})

	// graphql-js/src/error/__tests__/GraphQLError-test.js
	It("has a message", func() {
		e := newError("msg")
		Expect(e.Message).Should(Equal("msg"))
	})

	It("serializes to include message", func() {
		e := newError("msg")
		expectSerializationResult(e, `{"message":"msg"}`)
	})

	It("serializes to include path", func() {
		e := newError("msg", mockPath)
		Expect(e.Path).Should(Equal(mockPath))
		expectSerializationResult(e, `{"message":"msg","path":["Droid","friends","first"]}`)
		expectOutputResult(e, `msg for type system element Droid.friends.first`)
	})

	It("serializes to include the validation rule", func() {
		e := newError("msg", graphql.RuleFieldsNonEmpty)
		Expect(e.Rule).Should(Equal(graphql.RuleFieldsNonEmpty))
		expectSerializationResult(e, `{"message":"msg","rule":"fields-non-empty"}`)
		expectOutputResult(e, `msg (rule: fields-non-empty)`)
	})

	It("can include an underlying error", func() {
		underlyingErr := errors.New("hello")
		e := newError("msg", underlyingErr)
		Expect(e.Err).Should(Equal(underlyingErr))
	})

	It("can include an op and kind", func() {
		const op graphql.Op = "myop"
		e := newError("msg", op, graphql.ErrKindInternal)
		Expect(e.Op).Should(Equal(op))
		Expect(e.Kind).Should(Equal(graphql.ErrKindInternal))

		// But Op and Kind should not be included in serialization.
		expectSerializationResult(e, `{"message":"msg"}`)
		expectOutputResult(e, `myop: msg: internal error`)
	})

	It("can include extensions", func() {
		e := newError("msg", mockExtensions)
		expectSerializationResult(e,
			`{"message":"msg","extensions":{"code":"CAN_NOT_FETCH_BY_ID"}}`)
		expectOutputResult(e, `msg (additional info: map[code:CAN_NOT_FETCH_BY_ID])`)
	})

	It("pulls path from underlying error", func() {
		// Create an error with an errWithPath.
		e := newError("error with path", &errWithPath{
			path: mockPath,
		})
		Expect(e.Path).Should(Equal(mockPath))
		expectSerializationResult(e,
			`{"message":"error with path","path":["Droid","friends","first"]}`)
		expectOutputResult(e, `error with path for type system element Droid.friends.first: error provided path`)

		// Wrap an error again without given new path.
		e = wrapError("error wraps an error with path", e)
		Expect(e.Path).Should(Equal(mockPath))
		expectSerializationResult(e,
			`{"message":"error wraps an error with path","path":["Droid","friends","first"]}`)
		expectOutputResult(e,
			`error wraps an error with path for type system element Droid.friends.first:
  error with path: error provided path`)

		// Wrap an error with custom path.
		mockPath2 := graphql.NewTypePath("Query", "hero")
		e = newError("error wraps with custom path", e, mockPath2)
		Expect(e.Path).Should(Equal(mockPath2))
		expectSerializationResult(e,
			`{"message":"error wraps with custom path","path":["Query","hero"]}`)

		expectOutputResult(e,
			`error wraps with custom path for type system element Query.hero:
  error wraps an error with path for type system element Droid.friends.first:
  error with path: error provided path`)
	})

	It("pulls extensions from underlying error", func() {
		// Create an error with an errWithExtensions.
		e := newError("error with extensions", &errWithExtensions{
			extensions: mockExtensions,
		})
		Expect(e.Extensions).Should(Equal(mockExtensions))
		expectSerializationResult(e,
			`{"message":"error with extensions","extensions":{"code":"CAN_NOT_FETCH_BY_ID"}}`)
		expectOutputResult(e, `error with extensions (additional info: map[code:CAN_NOT_FETCH_BY_ID]): error provided extensions`)

		// Wrap an error again without given new extensions.
		e = wrapError("error wraps an error with extensions", e)
		Expect(e.Extensions).Should(Equal(mockExtensions))
		expectSerializationResult(e,
			`{"message":"error wraps an error with extensions","extensions":{"code":"CAN_NOT_FETCH_BY_ID"}}`)
		expectOutputResult(e,
			`error wraps an error with extensions (additional info: map[code:CAN_NOT_FETCH_BY_ID]):
  error with extensions: error provided extensions`)

		// Wrap an error with custom extensions.
		mockExtensions2 := graphql.ErrorExtensions{
			"timestamp": "Fri Feb 9 14:33:09 UTC 2018",
		}
		e = newError("error wraps with custom extensions", e, mockExtensions2)
		Expect(e.Extensions).Should(Equal(mockExtensions2))
		expectSerializationResult(e,
			`{"message":"error wraps with custom extensions","extensions":{"timestamp":"Fri Feb 9 14:33:09 UTC 2018"}}`)

		expectOutputResult(e,
			`error wraps with custom extensions (additional info: map[timestamp:Fri Feb 9 14:33:09 UTC 2018]):
  error wraps an error with extensions (additional info: map[code:CAN_NOT_FETCH_BY_ID]):
  error with extensions: error provided extensions`)
	})

	It("pulls rule from underlying error", func() {
		e := newError("field error", graphql.RuleUniqueFieldNames, graphql.ErrKindValidation)
		Expect(e.Rule).Should(Equal(graphql.RuleUniqueFieldNames))

		// Wrapping without a new rule keeps the underlying one.
		e = wrapError("error wraps a rule violation", e)
		Expect(e.Rule).Should(Equal(graphql.RuleUniqueFieldNames))
		expectSerializationResult(e,
			`{"message":"error wraps a rule violation","rule":"unique-field-names"}`)
	})

	It("pulls kind from underlying error", func() {
		e := newError("error without kind")
		Expect(e.Kind).Should(Equal(graphql.ErrKindOther))
		expectOutputResult(e, `error without kind`)

		// Wrap error without a kind still doesn't have kind.
		e = newError("wrap an error without kind", e)
		Expect(e.Kind).Should(Equal(graphql.ErrKindOther))
		expectOutputResult(e, `wrap an error without kind:
  error without kind`)

		// Wrap error with a kind.
		e = newError("wrap an error with kind", e, graphql.ErrKindCoercion)
		Expect(e.Kind).Should(Equal(graphql.ErrKindCoercion))
		expectOutputResult(e, `wrap an error with kind: coercion error:
  wrap an error without kind:
  error without kind`)

		// Wrap error without given a kind again.
		e = newError("wrap an error without kind #2", e)
		Expect(e.Kind).Should(Equal(graphql.ErrKindCoercion))
		expectOutputResult(e, `wrap an error without kind #2: coercion error:
  wrap an error with kind:
  wrap an error without kind:
  error without kind`)

		// Finally, wrap the error with new kind.
		e = newError("wrap an error with new kind", e, graphql.ErrKindValidation)
		Expect(e.Kind).Should(Equal(graphql.ErrKindValidation))
		expectOutputResult(e, `wrap an error with new kind: validation error:
  wrap an error without kind #2: coercion error:
  wrap an error with kind:
  wrap an error without kind:
  error without kind`)
	})

	It("throws error when building from unknown argument", func() {
		e := graphql.NewError("msg", 1)
		Expect(e).ShouldNot(BeNil())
		Expect(e.Error()).Should(Equal("unknown type int, value 1 in error call"))
	})

	It("wraps error with formatting string", func() {
		e := graphql.WrapErrorf(errors.New("internal error"), "error for type %T", 1)
		Expect(e).ShouldNot(BeNil())
		Expect(e.Error()).Should(Equal("error for type int: internal error"))
	})

	Describe("TypePath", func() {
		It("is empty until names are appended", func() {
			var path graphql.TypePath
			Expect(path.Empty()).Should(BeTrue())

			path.AppendName("Dog")
			Expect(path.Empty()).Should(BeFalse())
			Expect(path.String()).Should(Equal("Dog"))

			path.AppendName("nickname")
			Expect(path.String()).Should(Equal("Dog.nickname"))
		})

		It("clones to an independent path", func() {
			path := graphql.NewTypePath("Dog", "barkVolume")
			clone := path.Clone()
			clone.AppendName("deeper")
			Expect(path.String()).Should(Equal("Dog.barkVolume"))
			Expect(clone.String()).Should(Equal("Dog.barkVolume.deeper"))
		})

		It("serializes to an array of names", func() {
			path := graphql.NewTypePath("Dog", "barkVolume")
			s, err := json.Marshal(&path)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s).Should(MatchJSON(`["Dog","barkVolume"]`))
		})
	})

	Describe("Errors", func() {
		It("collects multiple errors", func() {
			var errs graphql.Errors
			Expect(errs.HaveOccurred()).Should(BeFalse())

			errs.Emplace("first error")
			errs.Emplace("second error", graphql.ErrKindValidation)
			Expect(errs.HaveOccurred()).Should(BeTrue())
			Expect(errs.Errors).Should(HaveLen(2))
			Expect(errs.Error()).Should(Equal("first error\nsecond error: validation error"))
		})

		It("appends errors from another collection", func() {
			var errs graphql.Errors
			errs.Emplace("first error")

			var more graphql.Errors
			more.Emplace("second error")
			more.Emplace("third error")

			errs.AppendErrors(more)
			Expect(errs.Errors).Should(HaveLen(3))
		})

		It("treats an empty collection as no error", func() {
			errs := graphql.NoErrors()
			Expect(errs.HaveOccurred()).Should(BeFalse())
			Expect(errs.Error()).Should(Equal("no errors"))
		})

		It("builds a collection with ErrorsOf", func() {
			errs := graphql.ErrorsOf("something wrong", graphql.ErrKindInternal)
			Expect(errs.HaveOccurred()).Should(BeTrue())
			Expect(errs.Errors).Should(HaveLen(1))
			Expect(errs.Errors[0].Kind).Should(Equal(graphql.ErrKindInternal))
		})
	})
})
