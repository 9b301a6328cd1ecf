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
	"fmt"

	"github.com/botobag/leto/graphql"
	"github.com/botobag/leto/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func buildInputObject(config *graphql.InputObjectConfig) *graphql.InputObject {
	schema := graphql.MustNewSchema(&graphql.SchemaConfig{
		Types: []graphql.TypeDefinition{config},
	})
	return schema.TypeMap().Lookup(config.Name).(*graphql.InputObject)
}

var _ = Describe("InputObject", func() {
	// graphql-js/src/type/__tests__/definition-test.js
	It("does not mutate passed field definitions", func() {
		fields := []graphql.InputFieldConfig{
			{
				Name: "field1",
				Type: graphql.NamedOf("String"),
			},
			{
				Name: "field2",
				Type: graphql.NamedOf("String"),
			},
		}

		testInputObject1 := buildInputObject(&graphql.InputObjectConfig{
			Name:   "Test",
			Fields: fields,
		})
		testInputObject2 := buildInputObject(&graphql.InputObjectConfig{
			Name:   "Test",
			Fields: fields,
		})

		Expect(testInputObject1.Fields()).Should(Equal(testInputObject2.Fields()))
		Expect(fields).Should(Equal([]graphql.InputFieldConfig{
			{
				Name: "field1",
				Type: graphql.NamedOf("String"),
			},
			{
				Name: "field2",
				Type: graphql.NamedOf("String"),
			},
		}))
	})

	It("preserves the order in which fields are defined", func() {
		inputObjectType := buildInputObject(&graphql.InputObjectConfig{
			Name: "Point",
			Fields: []graphql.InputFieldConfig{
				{Name: "x", Type: graphql.NamedOf("Float")},
				{Name: "y", Type: graphql.NamedOf("Float")},
				{Name: "z", Type: graphql.NamedOf("Float")},
			},
		})

		fields := inputObjectType.Fields()
		Expect(fields).Should(HaveLen(3))
		Expect(fields[0].Name()).Should(Equal("x"))
		Expect(fields[1].Name()).Should(Equal("y"))
		Expect(fields[2].Name()).Should(Equal("z"))

		Expect(inputObjectType.Field("y")).Should(Equal(fields[1]))
		Expect(inputObjectType.Field("w")).Should(BeNil())
	})

	It("stringifies to type name", func() {
		inputObjectType := buildInputObject(&graphql.InputObjectConfig{
			Name: "InputObject",
			Fields: []graphql.InputFieldConfig{
				{Name: "f", Type: graphql.NamedOf("String")},
			},
		})
		Expect(fmt.Sprintf("%s", inputObjectType)).Should(Equal("InputObject"))
		Expect(fmt.Sprintf("%v", inputObjectType)).Should(Equal("InputObject"))
	})

	It("rejects creating type without a name", func() {
		_, errs := graphql.NewSchema(&graphql.SchemaConfig{
			Types: []graphql.TypeDefinition{
				&graphql.InputObjectConfig{
					Fields: []graphql.InputFieldConfig{
						{Name: "f", Type: graphql.NamedOf("String")},
					},
				},
			},
		})
		Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
			testutil.MatchGraphQLError(
				testutil.MessageEqual("Must provide name for InputObject."),
			),
		))

		Expect(func() {
			graphql.MustNewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{
					&graphql.InputObjectConfig{},
				},
			})
		}).Should(Panic())
	})

	Describe("having fields", func() {
		It("sets default value to nil", func() {
			inputObjectType := buildInputObject(&graphql.InputObjectConfig{
				Name: "Test",
				Fields: []graphql.InputFieldConfig{
					{
						Name:         "field",
						Type:         graphql.NamedOf("String"),
						DefaultValue: graphql.NilInputFieldDefaultValue,
					},
				},
			})

			Expect(inputObjectType.Fields()).Should(HaveLen(1))
			field := inputObjectType.Field("field")
			Expect(field).ShouldNot(BeNil())
			Expect(field.Name()).Should(Equal("field"))
			Expect(field.Type()).Should(Equal(graphql.String()))
			Expect(field.HasDefaultValue()).Should(BeTrue())
			Expect(field.DefaultValue()).Should(BeNil())
		})

		It("defines without default value", func() {
			inputObjectType := buildInputObject(&graphql.InputObjectConfig{
				Name: "Test",
				Fields: []graphql.InputFieldConfig{
					{
						Name: "field",
						Type: graphql.NamedOf("String"),
					},
				},
			})

			Expect(inputObjectType.Fields()).Should(HaveLen(1))
			field := inputObjectType.Field("field")
			Expect(field).ShouldNot(BeNil())
			Expect(field.Name()).Should(Equal("field"))
			Expect(field.Type()).Should(Equal(graphql.String()))
			Expect(field.HasDefaultValue()).Should(BeFalse())
			Expect(field.DefaultValue()).Should(BeNil())
		})

		// graphql-js/src/type/__tests__/predicate-test.js@8c96dc8
		Describe("IsRequiredInputField", func() {
			It("returns true for required input field", func() {
				inputObjectType := buildInputObject(&graphql.InputObjectConfig{
					Name: "Test",
					Fields: []graphql.InputFieldConfig{
						{
							Name: "field",
							Type: graphql.NonNullOfNamed("String"),
						},
					},
				})
				Expect(graphql.IsRequiredInputField(inputObjectType.Field("field"))).Should(BeTrue())
			})

			It("returns false for optional input field", func() {
				inputObjectType := buildInputObject(&graphql.InputObjectConfig{
					Name: "Test",
					Fields: []graphql.InputFieldConfig{
						{
							Name: "optField1",
							Type: graphql.NamedOf("String"),
						},
						{
							Name:         "optField2",
							Type:         graphql.NamedOf("String"),
							DefaultValue: graphql.NilInputFieldDefaultValue,
						},
						{
							Name: "optField3",
							Type: graphql.ListOfNamed("String"),
						},
						{
							Name:         "optField4",
							Type:         graphql.NonNullOfNamed("String"),
							DefaultValue: "default",
						},
					},
				})
				Expect(graphql.IsRequiredInputField(inputObjectType.Field("optField1"))).Should(BeFalse())
				Expect(graphql.IsRequiredInputField(inputObjectType.Field("optField2"))).Should(BeFalse())
				Expect(graphql.IsRequiredInputField(inputObjectType.Field("optField3"))).Should(BeFalse())
				Expect(graphql.IsRequiredInputField(inputObjectType.Field("optField4"))).Should(BeFalse())
			})
		})
	})
})
