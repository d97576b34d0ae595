package main

import "math"

// CategoryWeights holds the relative share of generated topics each
// category receives in weighted allocation. Unlisted categories fall
// back to defaultCategoryWeight.
var CategoryWeights = map[string]float64{
	"algebra":        0.4,
	"analysis":       0.3,
	"number_theory":  0.3,
	"probability":    0.3,
	"combinatorics":  0.2,
	"calculus":       0.25,
	"linear_algebra": 0.25,
	"logic":          0.15,
	"set_theory":     0.15,
	"others":         0.1,
}

const defaultCategoryWeight = 0.2

func categoryWeight(category string) float64 {
	if w, ok := CategoryWeights[category]; ok {
		return w
	}
	return defaultCategoryWeight
}

// AllocateTopicCounts distributes total across the given categories.
//
// Weighted mode gives each category round(total*weight/totalWeight)
// and assigns the last category the remainder so the counts sum to
// exactly total. Uniform mode integer-divides and hands the remainder
// to the first categories in order.
//
// When total >= len(categories), every category is bumped to at least
// 1; the realized total may then exceed the request, which is
// accepted rather than corrected a second time.
func AllocateTopicCounts(total int, categories []string, uniform bool) map[string]int {
	counts := make(map[string]int, len(categories))
	if len(categories) == 0 {
		return counts
	}

	if uniform {
		base := total / len(categories)
		rem := total % len(categories)
		for i, c := range categories {
			counts[c] = base
			if i < rem {
				counts[c]++
			}
		}
	} else {
		var totalWeight float64
		for _, c := range categories {
			totalWeight += categoryWeight(c)
		}
		allocated := 0
		for i, c := range categories {
			if i == len(categories)-1 {
				last := total - allocated
				if last < 0 {
					last = 0
				}
				counts[c] = last
				break
			}
			n := int(math.Round(float64(total) * categoryWeight(c) / totalWeight))
			counts[c] = n
			allocated += n
		}
	}

	if total >= len(categories) {
		for _, c := range categories {
			if counts[c] < 1 {
				counts[c] = 1
			}
		}
	}

	return counts
}
