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

package util

import (
	"strings"
)

// OrList formats items into a human readable list of choices, such as "A, B, or C". At most limit
// items are included in the result. When quoted is set, every item is wrapped in double quotes.
// An empty item list produces an empty string.
func OrList(items []string, limit int, quoted bool) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) > limit {
		items = items[:limit]
	}

	var builder strings.Builder
	writeItem := func(item string) {
		if quoted {
			builder.WriteByte('"')
			builder.WriteString(item)
			builder.WriteByte('"')
		} else {
			builder.WriteString(item)
		}
	}

	writeItem(items[0])
	switch n := len(items); n {
	case 1:
		// Single item stands on its own.
	case 2:
		builder.WriteString(" or ")
		writeItem(items[1])
	default:
		for _, item := range items[1 : n-1] {
			builder.WriteString(", ")
			writeItem(item)
		}
		builder.WriteString(", or ")
		writeItem(items[n-1])
	}

	return builder.String()
}
