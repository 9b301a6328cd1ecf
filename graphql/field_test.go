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
	"github.com/botobag/leto/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Field and Argument", func() {

	// graphql-js/src/type/__tests__/predicate-test.js@8c96dc8
	Describe("IsRequiredArgument", func() {
		It("returns true for required arguments", func() {
			requiredArg := graphql.MockArgument("someArg", "", graphql.MustNewNonNullOfType(graphql.String()), nil)
			Expect(graphql.IsRequiredArgument(&requiredArg)).Should(BeTrue())
		})

		It("returns false for optional arguments", func() {
			optArg1 := graphql.MockArgument("someArg", "", graphql.String(), nil)
			Expect(graphql.IsRequiredArgument(&optArg1)).Should(BeFalse())

			optArg2 := graphql.MockArgument("someArg", "", graphql.String(), graphql.NilArgumentDefaultValue)
			Expect(graphql.IsRequiredArgument(&optArg2)).Should(BeFalse())

			optArg3 := graphql.MockArgument(
				"someArg",
				"",
				graphql.MustNewListOfType(graphql.MustNewNonNullOfType(graphql.String())),
				nil)
			Expect(graphql.IsRequiredArgument(&optArg3)).Should(BeFalse())

			optArg4 := graphql.MockArgument(
				"someArg",
				"",
				graphql.MustNewNonNullOfType(graphql.String()),
				"default",
			)
			Expect(graphql.IsRequiredArgument(&optArg4)).Should(BeFalse())
		})
	})

	Describe("Fields built from a definition", func() {
		var human *graphql.Object

		BeforeEach(func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{
					&graphql.ObjectConfig{
						Name: "Human",
						Fields: []graphql.FieldConfig{
							{
								Name:        "name",
								Description: "Name of the human.",
								Type:        graphql.NamedOf("String"),
							},
							{
								Name: "friends",
								Type: graphql.ListOfNamed("Human"),
								Args: []graphql.ArgumentConfig{
									{
										Name:         "first",
										Type:         graphql.NamedOf("Int"),
										DefaultValue: 10,
									},
									{
										Name: "after",
										Type: graphql.NamedOf("ID"),
									},
									{
										Name:         "sortOrder",
										Type:         graphql.NamedOf("String"),
										DefaultValue: graphql.NilArgumentDefaultValue,
									},
								},
							},
							{
								Name:        "secretBackstory",
								Type:        graphql.NamedOf("String"),
								Deprecation: &graphql.Deprecation{Reason: "Secret backstories are secret."},
							},
						},
					},
				},
			})
			human = schema.TypeMap().Lookup("Human").(*graphql.Object)
		})

		It("preserves the order in which fields are defined", func() {
			fields := human.Fields()
			Expect(fields).Should(HaveLen(3))
			Expect(fields[0].Name()).Should(Equal("name"))
			Expect(fields[1].Name()).Should(Equal("friends"))
			Expect(fields[2].Name()).Should(Equal("secretBackstory"))
		})

		It("provides access to field metadata", func() {
			field := human.Field("name")
			Expect(field).ShouldNot(BeNil())
			Expect(field.Name()).Should(Equal("name"))
			Expect(field.Description()).Should(Equal("Name of the human."))
			Expect(field.Type()).Should(Equal(graphql.String()))
			Expect(field.Args()).Should(BeEmpty())
			Expect(field.IsDeprecated()).Should(BeFalse())
			Expect(field.Deprecation()).Should(BeNil())

			Expect(human.Field("unknownField")).Should(BeNil())
		})

		It("resolves field type from its reference", func() {
			field := human.Field("friends")
			Expect(field.Type()).Should(Equal(graphql.MustNewListOfType(human)))
		})

		It("tags deprecated fields", func() {
			field := human.Field("secretBackstory")
			Expect(field.IsDeprecated()).Should(BeTrue())
			Expect(field.Deprecation().Reason).Should(Equal("Secret backstories are secret."))
		})

		It("preserves the order in which arguments are defined", func() {
			args := human.Field("friends").Args()
			Expect(args).Should(HaveLen(3))
			Expect(args[0].Name()).Should(Equal("first"))
			Expect(args[1].Name()).Should(Equal("after"))
			Expect(args[2].Name()).Should(Equal("sortOrder"))
		})

		It("finds argument by name", func() {
			field := human.Field("friends")

			arg := field.Argument("first")
			Expect(arg).ShouldNot(BeNil())
			Expect(arg.Name()).Should(Equal("first"))
			Expect(arg.Type()).Should(Equal(graphql.Int()))

			Expect(field.Argument("unknownArg")).Should(BeNil())
		})

		It("distinguishes a null default value from an unset one", func() {
			field := human.Field("friends")

			first := field.Argument("first")
			Expect(first.HasDefaultValue()).Should(BeTrue())
			Expect(first.DefaultValue()).Should(Equal(10))

			// No default value at all.
			after := field.Argument("after")
			Expect(after.HasDefaultValue()).Should(BeFalse())
			Expect(after.DefaultValue()).Should(BeNil())

			// Default value that is "null".
			sortOrder := field.Argument("sortOrder")
			Expect(sortOrder.HasDefaultValue()).Should(BeTrue())
			Expect(sortOrder.DefaultValue()).Should(BeNil())
		})
	})
})
