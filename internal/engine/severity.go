package engine

import "fmt"

// Bundle names and treatment durations are fixed offers.
const (
	BundleStarter   = "SELF LOVE PLUS"
	BundleIntensive = "SELF LOVE PLUS B2GOF"

	// severityBundleCutoff splits the starter from the intensive bundle.
	severityBundleCutoff = 5
)

// Usage holds the per-product instruction strings. Either instruction may be
// replaced by an urgent variant.
type Usage struct {
	Shampoo     string `json:"shampoo"`
	Pomade      string `json:"pomade"`
	Conditioner string `json:"conditioner"`
}

// SeverityRecommendation is the bundle selection derived from a diagnosis and
// the raw answers.
type SeverityRecommendation struct {
	SeverityScore int    `json:"severityScore"`
	Bundle        string `json:"bundle"`
	Months        int    `json:"months"`
	Reasoning     string `json:"reasoning"`
	Usage         Usage  `json:"usage"`
}

var (
	pRingwormSores    = rx(`ringworm|sores`)
	pScalpUrgent      = rx(`ringworm|sores|dandruff`)
	pSixToTwelve      = rx(`6-12 months`)
)

// RecommendSeverity sums independent severity contributions (timing, area
// breadth, diagnosis type, scalp health, secondary count) and thresholds the
// total into one of the two bundles. Two urgent usage overrides and the
// postpartum reasoning addendum apply regardless of which bundle was chosen.
func RecommendSeverity(a Answers, d Diagnosis) SeverityRecommendation {
	score := 0

	whenNoticed := a.Str(QNoticedWhen)
	switch {
	case matchesAny(whenNoticed, pOverTwo):
		score += 3
	case matchesAny(whenNoticed, pOneToTwo):
		score += 2
	case matchesAny(whenNoticed, pSixToTwelve):
		score += 1
	}

	areas := a.List(QAffectedAreas)
	switch {
	case anyEntryMatches(areas, pOverallThin):
		score += 3
	case anyEntryMatches(areas, pCrown):
		score += 2
	case anyEntryMatches(areas, pPatch):
		score += 2
	}
	if len(areas) >= 3 {
		score++
	}

	switch d.Primary {
	case "Cicatricial (Scarring) Alopecia":
		score += 3
	case "Androgenic Alopecia", "Alopecia Areata", "Traction Alopecia":
		score += 2
	}

	scalpIssues := a.List(QScalpIssues)
	if anyEntryMatches(scalpIssues, pRingwormSores) {
		score += 2
	}
	if len(scalpIssues) >= 2 {
		score++
	}

	if len(d.Secondary) >= 2 {
		score += 2
	} else if len(d.Secondary) == 1 {
		score++
	}

	rec := SeverityRecommendation{SeverityScore: score}
	if score >= severityBundleCutoff {
		rec.Bundle = BundleIntensive
		rec.Months = 3
		rec.Reasoning = fmt.Sprintf("Your %s needs a complete 3‑month protocol. The shampoo + pomade + conditioner system addresses both scalp health and breakage for sustained results.", d.Primary)
		rec.Usage = Usage{
			Shampoo:     "Wash 2x per week to prep scalp",
			Pomade:      "Apply to affected areas 2x daily (morning & night)",
			Conditioner: "Use after every wash to prevent breakage",
		}
	} else {
		noticed := whenNoticed
		if noticed == "" {
			noticed = "recently"
		}
		rec.Bundle = BundleStarter
		rec.Months = 1
		rec.Reasoning = fmt.Sprintf("Start with our complete system for 1 month. Since you caught this early (%s), you may see results quickly.", noticed)
		rec.Usage = Usage{
			Shampoo:     "Wash 1–2x per week",
			Pomade:      "Apply 1–2x daily to problem areas",
			Conditioner: "Use after washing to seal moisture",
		}
	}

	if anyEntryMatches(scalpIssues, pScalpUrgent) {
		rec.Usage.Shampoo = "⚠️ CRITICAL: Wash 2-3x per week to clear scalp issues before pomade can work optimally"
	}
	if anyEntryMatches(a.List(QLifeEvents), pPostpartum) {
		rec.Reasoning += " Postpartum hair loss typically reverses within 6-9 months with proper treatment."
	}
	if matchesAny(a.Str(QHairBehavior), pBreaks) || matchesAny(a.Str(QPrimaryConcern), pBreakage) {
		rec.Usage.Conditioner = "⚠️ CRITICAL: Use after EVERY wash. Your hair is breaking, not just shedding — moisture is essential."
	}

	return rec
}
