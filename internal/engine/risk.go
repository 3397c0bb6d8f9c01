package engine

import (
	"math"
	"sort"
)

// RiskLevel classifies aggregate styling-tension risk.
type RiskLevel string

const (
	RiskUnknown  RiskLevel = "unknown"
	RiskMinimal  RiskLevel = "minimal"
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskScore is the aggregate risk derived from a style selection.
type RiskScore struct {
	TotalScore        float64   `json:"totalScore"`
	RiskLevel         RiskLevel `json:"riskLevel"`
	MaxIndividualRisk float64   `json:"maxIndividualRisk"`
	AverageRisk       float64   `json:"averageRisk"`
}

// ConcernFrequency counts how many selected styles share a concern tag.
type ConcernFrequency struct {
	Concern   string `json:"concern"`
	Frequency int    `json:"frequency"`
}

// Concerns aggregates concern tags, areas and damage mechanisms across a
// style selection.
type Concerns struct {
	PrimaryConcerns []ConcernFrequency `json:"primaryConcerns"`
	AffectedAreas   []string           `json:"affectedAreas"`
	TensionTypes    []string           `json:"tensionTypes"`
	DamageTypes     []string           `json:"damageTypes"`
}

// PatternSeverity grades a detected style interaction.
type PatternSeverity string

const (
	PatternCritical PatternSeverity = "critical"
	PatternPositive PatternSeverity = "positive"
	PatternWarning  PatternSeverity = "warning"
	PatternInfo     PatternSeverity = "info"
)

// Pattern is a named multi-style interaction. Rules are independent, so
// several patterns can fire for one selection.
type Pattern struct {
	Type           string          `json:"type"`
	Severity       PatternSeverity `json:"severity"`
	Message        string          `json:"message"`
	Recommendation string          `json:"recommendation"`
}

// CalculateRiskScore combines the selected styles' individual risks as
// 0.7*max + 0.3*mean. Unknown style ids contribute zero. An empty selection
// yields the unknown level with all numeric fields zero.
func CalculateRiskScore(styleIDs []string) RiskScore {
	if len(styleIDs) == 0 {
		return RiskScore{TotalScore: 0, RiskLevel: RiskUnknown, MaxIndividualRisk: 0, AverageRisk: 0}
	}
	var maxScore, sum float64
	for _, id := range styleIDs {
		score := profileRisk(id)
		if score > maxScore {
			maxScore = score
		}
		sum += score
	}
	avg := sum / float64(len(styleIDs))
	total := maxScore*0.7 + avg*0.3
	return RiskScore{
		TotalScore:        round1(total),
		RiskLevel:         classifyRisk(total),
		MaxIndividualRisk: maxScore,
		AverageRisk:       round1(avg),
	}
}

func classifyRisk(score float64) RiskLevel {
	switch {
	case score >= 8:
		return RiskCritical
	case score >= 6:
		return RiskHigh
	case score >= 4:
		return RiskModerate
	case score >= 2:
		return RiskLow
	default:
		return RiskMinimal
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// IdentifyPrimaryConcerns tallies concern tags across the selection and unions
// areas, tension types and damage types. Concerns are ranked by descending
// frequency; ties keep encounter order.
func IdentifyPrimaryConcerns(styleIDs []string) Concerns {
	counts := make(map[string]int)
	var order []string
	var areas, tensions, damages orderedSet

	for _, id := range styleIDs {
		p, ok := styleRiskProfiles[id]
		if !ok {
			continue
		}
		for _, c := range p.Concerns {
			if counts[c] == 0 {
				order = append(order, c)
			}
			counts[c]++
		}
		for _, a := range p.AffectedAreas {
			areas.add(a)
		}
		tensions.add(string(p.TensionType))
		damages.add(string(p.DamageType))
	}

	primary := make([]ConcernFrequency, 0, len(order))
	for _, c := range order {
		primary = append(primary, ConcernFrequency{Concern: c, Frequency: counts[c]})
	}
	sort.SliceStable(primary, func(i, j int) bool {
		return primary[i].Frequency > primary[j].Frequency
	})

	return Concerns{
		PrimaryConcerns: primary,
		AffectedAreas:   areas.items(),
		TensionTypes:    tensions.items(),
		DamageTypes:     damages.items(),
	}
}

// DetectPatterns evaluates the fixed pattern rules against the selection in
// declaration order. Rules are not mutually exclusive.
func DetectPatterns(styleIDs []string) []Pattern {
	var patterns []Pattern

	highTension := 0
	for _, id := range styleIDs {
		if profileRisk(id) >= 8 {
			highTension++
		}
	}
	if highTension >= 2 {
		patterns = append(patterns, Pattern{
			Type:           "multiple_high_tension",
			Severity:       PatternCritical,
			Message:        "You frequently wear multiple high-tension styles",
			Recommendation: "Rotate with low-tension protective styles",
		})
	}

	if containsID(styleIDs, "micro_twists") && containsID(styleIDs, "tight_ponytails") {
		patterns = append(patterns, Pattern{
			Type:           "extreme_edge_stress",
			Severity:       PatternCritical,
			Message:        "This combination puts extreme stress on your hairline",
			Recommendation: "Give your edges a break for at least 3 months",
		})
	}

	if containsID(styleIDs, "wigs_glue") && containsID(styleIDs, "tight_ponytails") {
		patterns = append(patterns, Pattern{
			Type:           "chemical_plus_tension",
			Severity:       PatternCritical,
			Message:        "Chemical damage + physical tension = severe edge damage",
			Recommendation: "Switch to glueless wigs and loose styles immediately",
		})
	}

	weightBased := 0
	lowTension := 0
	for _, id := range styleIDs {
		if id == "dreadlocs" || id == "faux_locs" || id == "box_braids" {
			weightBased++
		}
		if profileRisk(id) <= 3 {
			lowTension++
		}
	}
	if weightBased > 0 && lowTension > 0 {
		patterns = append(patterns, Pattern{
			Type:           "balanced_approach",
			Severity:       PatternPositive,
			Message:        "Good! You balance protective styles with low-manipulation options",
			Recommendation: "Continue this approach and focus on scalp massage",
		})
	}

	if len(styleIDs) > 0 && lowTension == len(styleIDs) {
		patterns = append(patterns, Pattern{
			Type:           "low_risk_styling",
			Severity:       PatternPositive,
			Message:        "Excellent! Your styling habits are hair-healthy",
			Recommendation: "Maintain scalp health and nutrition",
		})
	}

	if len(styleIDs) == 1 && styleIDs[0] == "natural_hair" {
		patterns = append(patterns, Pattern{
			Type:           "natural_only",
			Severity:       PatternPositive,
			Message:        "You wear your natural hair - minimal tension risk",
			Recommendation: "Focus on moisture retention and gentle handling",
		})
	}

	return patterns
}

func containsID(ids []string, want string) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}

// orderedSet keeps first-encounter order, matching how the source aggregates.
type orderedSet struct {
	seen map[string]struct{}
	list []string
}

func (s *orderedSet) add(v string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.list = append(s.list, v)
}

func (s *orderedSet) items() []string {
	if s.list == nil {
		return []string{}
	}
	return s.list
}
