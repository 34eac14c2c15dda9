// Copyright (c) 2020 the Toolman project authors.
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package compiler

import "github.com/xrash/smetrics"

// suggestName finds the closest name in candidates to want by
// Jaro-Winkler similarity, for the "did you mean" hint on
// CustomTypeNotFound. Returns "" if nothing clears the similarity floor.
func suggestName(want string, candidates []string) string {
	const minSimilarity = 0.75

	best := ""
	bestScore := minSimilarity
	for _, c := range candidates {
		score := smetrics.JaroWinkler(want, c, 0.7, 4)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}
