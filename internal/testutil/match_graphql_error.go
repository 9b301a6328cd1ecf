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

package testutil

import (
	"github.com/botobag/leto/graphql"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

// ErrorFieldsMatcher sets up fields to match.
type ErrorFieldsMatcher func(gstruct.Fields)

// MessageEqual matches message in a graphql.Error to be the same as the specified string.
func MessageEqual(s string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Message"] = gomega.Equal(s)
	}
}

// MessageContainSubstring matches message in a graphql.Error to contain the specified string.
func MessageContainSubstring(s string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Message"] = gomega.ContainSubstring(s)
	}
}

// PathEqual matches the type system path in the error to be the same as the given one.
func PathEqual(path graphql.TypePath) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Path"] = gomega.Equal(path)
	}
}

// RuleIs matches the validation rule in the error to be the same as the given one.
func RuleIs(rule graphql.ValidationRule) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Rule"] = gomega.Equal(rule)
	}
}

// OpIs matches the operation in the error to be the same as the given one.
func OpIs(op graphql.Op) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Op"] = gomega.Equal(op)
	}
}

// KindIs matches the kind in the error to be the same as the given one.
func KindIs(errKind graphql.ErrKind) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Kind"] = gomega.Equal(errKind)
	}
}

// MatchGraphQLError matches a graphql.Error with given fields.
//
// The following example matches a graphql.Error including "must define one or more fields" in the
// message and the error kind should match graphql.ErrKindValidation.
//
//		Expect(err).Should(MatchGraphQLError(
//			MessageContainSubstring("must define one or more fields"),
//			KindIs(graphql.ErrKindValidation),
//		))
func MatchGraphQLError(matchers ...ErrorFieldsMatcher) types.GomegaMatcher {
	fields := gstruct.Fields{}
	for _, matcher := range matchers {
		matcher(fields)
	}
	return gstruct.PointTo(gstruct.MatchFields(gstruct.IgnoreExtras, fields))
}

// ConsistOfGraphQLErrors is used to match a graphql.Errors like an array of graphql.Error's with
// Gomega's ConsistOf.
//
//		Expect(errs).Should(ConsistOfGraphQLErrors(
//			MatchGraphQLError(
//				MessageContainSubstring("First error"),
//				KindIs(graphql.ErrKindValidation),
//			),
//			MatchGraphQLError(
//				MessageContainSubstring("Second error"),
//			),
//		))
func ConsistOfGraphQLErrors(matchers ...interface{}) types.GomegaMatcher {
	return gstruct.MatchAllFields(gstruct.Fields{
		"Errors": gomega.ConsistOf(matchers...),
	})
}
