// Package classify assigns a business category to subject-stream disclosures
// by running an ordered keyword cascade over the subject text.
//
// The cascade is a priority list, not a set: several keyword groups overlap
// (a subject can mention both a building and machinery), and the first
// matching rule wins. Reordering the rules changes results, so the sequence
// below must stay exactly as given.
package classify

import (
	"strings"

	"github.com/kaiwen/disclosure-ingest/internal/derive"
)

// Category codes. Uncategorized is the default when no rule matches.
const (
	CategoryEquity            = 1
	CategoryJointVenture      = 2
	CategoryMerger            = 3
	CategoryStructure         = 4
	CategoryBond              = 7
	CategoryStructuredProduct = 8
	CategoryRealEstate        = 11
	CategoryJointConstruction = 12
	CategoryCommissionedBuild = 13
	CategoryEquipment         = 18
	CategoryLease             = 19
	CategoryUncategorized     = 99
)

// Categories lists every assignable category code.
var Categories = []int{1, 2, 3, 4, 7, 8, 11, 12, 13, 18, 19, 99}

// rulbEquityClause is the statute clause number that forces category 1
// regardless of the subject text.
const rulbEquityClause = 24

// input carries everything a rule may inspect.
type input struct {
	subject string
	rulb    *int64
	suffix2 string
	suffix4 string
}

// rule is one (predicate, category) step of the cascade.
type rule struct {
	category int
	match    func(in input) bool
}

// rules is the ordered cascade. Evaluation is strict short-circuit: the first
// match wins and later rules are never consulted.
var rules = []rule{
	{CategoryEquity, func(in input) bool {
		return in.rulb != nil && *in.rulb == rulbEquityClause
	}},
	{CategoryStructure, func(in input) bool {
		return containsAny(in.subject, structureKeywords)
	}},
	{CategoryJointVenture, func(in input) bool {
		return strings.Contains(in.subject, jointVentureKeyword)
	}},
	{CategoryCommissionedBuild, func(in input) bool {
		return containsAny(in.subject, commissionedBuildKeywords) ||
			strings.Contains(in.subject, engineeringKeyword)
	}},
	{CategoryLease, func(in input) bool {
		return !containsAny(in.subject, tradeKeywords) &&
			containsAny(in.subject, leaseKeywords)
	}},
	{CategoryStructuredProduct, func(in input) bool {
		return containsAny(in.subject, structuredProductKeywords)
	}},
	{CategoryJointConstruction, func(in input) bool {
		return strings.Contains(in.subject, jointConstructionKeyword)
	}},
	{CategoryRealEstate, func(in input) bool {
		return !strings.Contains(in.subject, landBankFalsePositive) &&
			containsAny(in.subject, realEstateKeywords)
	}},
	{CategoryEquipment, func(in input) bool {
		return containsAny(in.subject, equipmentKeywords)
	}},
	{CategoryMerger, func(in input) bool {
		return containsAny(in.subject, mergerKeywords)
	}},
	{CategoryBond, func(in input) bool {
		return containsAny(in.subject, bondKeywords)
	}},
	{CategoryEquity, func(in input) bool {
		return containsAny(in.subject, equityKeywords)
	}},
	{CategoryEquity, func(in input) bool {
		return !containsAny(in.subject, assetAcquisitionPhrases) &&
			containsAny(in.subject, acquisitionKeywords)
	}},
	// Fallback on the right-aligned suffixes. The suffixes are trimmed here
	// for matching; the stored suffix fields keep their padding.
	{CategoryJointVenture, func(in input) bool {
		return strings.Contains(strings.TrimSpace(in.suffix2), shareSuffixMarker)
	}},
	{CategoryEquity, func(in input) bool {
		t := strings.TrimSpace(in.suffix4)
		for _, m := range suffix4Markers {
			if t == m {
				return true
			}
		}
		return false
	}},
}

// Classify maps a trimmed subject text and the decoded RULB clause to a
// category code. Pure and total: no match always yields 99.
func Classify(subject string, rulb *int64) int {
	suffix2, suffix4 := derive.Suffixes(subject)
	in := input{subject: subject, rulb: rulb, suffix2: suffix2, suffix4: suffix4}
	for _, r := range rules {
		if r.match(in) {
			return r.category
		}
	}
	return CategoryUncategorized
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
