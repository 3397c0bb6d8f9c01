package engine

import "fmt"

// The style-risk pipeline derives everything from the protective-style
// selection alone; the indicator-based diagnosis classifier is not involved.

// StyleRiskInput is the normalized selection the pipeline consumes.
type StyleRiskInput struct {
	ProtectiveStyles []string `json:"protectiveStyles"`
	ScalpAreas       []string `json:"scalpAreas"`
	AgeRange         string   `json:"ageRange,omitempty"`
	WhenNoticed      string   `json:"whenNoticed,omitempty"`
	PrimaryConcern   string   `json:"primaryConcern,omitempty"`
}

// AreaMatch cross-checks predicted affected areas against self-reported ones.
type AreaMatch struct {
	Matches    []string `json:"matches"`
	MatchRate  float64  `json:"matchRate"`
	Unexpected []string `json:"unexpected"`
	Insight    string   `json:"insight"`
}

// ProductRec is one product suggestion with its selection reason.
type ProductRec struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"`
}

// ProductSet partitions suggestions by necessity.
type ProductSet struct {
	Essential   []ProductRec `json:"essential"`
	Recommended []ProductRec `json:"recommended"`
	Optional    []ProductRec `json:"optional"`
}

// Lesson is a short educational blurb keyed to a pattern or concern.
type Lesson struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Urgency  string `json:"urgency"`
	ReadTime string `json:"readTime"`
}

// ActionItem is one step of the three-horizon action plan.
type ActionItem struct {
	Action   string `json:"action"`
	Why      string `json:"why"`
	Duration string `json:"duration"`
}

// ActionPlan buckets steps by time horizon.
type ActionPlan struct {
	Immediate []ActionItem `json:"immediate"`
	ShortTerm []ActionItem `json:"shortTerm"`
	LongTerm  []ActionItem `json:"longTerm"`
}

// StyleRiskReport is the pipeline's full output.
type StyleRiskReport struct {
	RiskScore         RiskScore  `json:"riskScore"`
	Concerns          Concerns   `json:"concerns"`
	Patterns          []Pattern  `json:"patterns"`
	AffectedAreaMatch AreaMatch  `json:"affectedAreaMatch"`
	Products          ProductSet `json:"products"`
	Education         []Lesson   `json:"education"`
	ActionPlan        ActionPlan `json:"actionPlan"`
	Summary           string     `json:"summary"`
}

// GenerateStyleRiskReport runs the alternate recommendation pipeline.
func GenerateStyleRiskReport(input StyleRiskInput) StyleRiskReport {
	riskScore := CalculateRiskScore(input.ProtectiveStyles)
	concerns := IdentifyPrimaryConcerns(input.ProtectiveStyles)
	patterns := DetectPatterns(input.ProtectiveStyles)

	areaMatch := matchAffectedAreas(concerns.AffectedAreas, input.ScalpAreas)
	return StyleRiskReport{
		RiskScore:         riskScore,
		Concerns:          concerns,
		Patterns:          patterns,
		AffectedAreaMatch: areaMatch,
		Products:          recommendProducts(riskScore, concerns),
		Education:         buildEducation(patterns, concerns),
		ActionPlan:        buildActionPlan(riskScore),
		Summary:           buildSummary(riskScore, areaMatch),
	}
}

func matchAffectedAreas(predicted, reported []string) AreaMatch {
	matches := make([]string, 0, len(predicted))
	for _, area := range predicted {
		if containsID(reported, area) {
			matches = append(matches, area)
		}
	}
	unexpected := make([]string, 0, len(reported))
	for _, area := range reported {
		if !containsID(predicted, area) {
			unexpected = append(unexpected, area)
		}
	}

	rate := 0.0
	if len(reported) > 0 {
		rate = float64(len(matches)) / float64(len(reported))
	}

	insight := "Analysis complete"
	switch {
	case len(matches) > 0 && len(unexpected) == 0:
		insight = "Your hair loss pattern matches your styling habits."
	case len(unexpected) > 0:
		insight = "Some affected areas are not explained by styling alone."
	}

	return AreaMatch{Matches: matches, MatchRate: rate, Unexpected: unexpected, Insight: insight}
}

func recommendProducts(riskScore RiskScore, concerns Concerns) ProductSet {
	products := ProductSet{
		Essential:   []ProductRec{},
		Recommended: []ProductRec{},
		Optional:    []ProductRec{},
	}

	if containsID(concerns.AffectedAreas, "edges") || containsID(concerns.AffectedAreas, "temples") {
		products.Essential = append(products.Essential, ProductRec{
			Category: "edge_repair",
			Name:     "Fulani Edge Growth Serum",
			Reason:   "Repairs damage from tight styling and restores hairline",
			Priority: "high",
		})
	}
	if riskScore.RiskLevel == RiskCritical || riskScore.RiskLevel == RiskHigh {
		products.Essential = append(products.Essential, ProductRec{
			Category: "scalp_treatment",
			Name:     "Fulani Scalp Recovery Oil",
			Reason:   "Reduces inflammation from tension and promotes blood flow",
			Priority: "high",
		})
	}
	if containsID(concerns.DamageTypes, string(DamageAdhesive)) {
		products.Essential = append(products.Essential, ProductRec{
			Category: "chemical_repair",
			Name:     "Fulani Detox & Repair Treatment",
			Reason:   "Removes adhesive residue and repairs chemical damage",
			Priority: "high",
		})
	}
	if containsID(concerns.TensionTypes, string(TensionWeight)) {
		products.Recommended = append(products.Recommended, ProductRec{
			Category: "strengthening",
			Name:     "Fulani Root Strengthening Serum",
			Reason:   "Strengthens roots to handle weight of locs/braids",
			Priority: "medium",
		})
	}
	products.Recommended = append(products.Recommended, ProductRec{
		Category: "growth",
		Name:     "Fulani Hair Growth System",
		Reason:   "Promotes new growth and thicker hair density",
		Priority: "medium",
	})
	return products
}

var educationTitles = map[string]string{
	"extreme_edge_stress":   "Why Your Edges Are Disappearing (And How to Save Them)",
	"chemical_plus_tension": "The Hidden Danger of Glue + Tight Styles",
	"edge_damage":           "Understanding Traction Alopecia in Nigerian Women",
	"traction_alopecia":     "Reversing Traction Alopecia: A Step-by-Step Guide",
}

func educationTitle(kind string) string {
	if title, ok := educationTitles[kind]; ok {
		return title
	}
	return "Understanding Your Hair Loss"
}

func educationContent(kind string) string {
	return fmt.Sprintf("Educational content for %s...", kind)
}

func buildEducation(patterns []Pattern, concerns Concerns) []Lesson {
	lessons := []Lesson{}
	for _, p := range patterns {
		if p.Severity != PatternCritical {
			continue
		}
		lessons = append(lessons, Lesson{
			Title:    educationTitle(p.Type),
			Content:  educationContent(p.Type),
			Urgency:  "high",
			ReadTime: "3 min",
		})
	}
	primary := concerns.PrimaryConcerns
	if len(primary) > 2 {
		primary = primary[:2]
	}
	for _, c := range primary {
		lessons = append(lessons, Lesson{
			Title:    educationTitle(c.Concern),
			Content:  educationContent(c.Concern),
			Urgency:  "medium",
			ReadTime: "4 min",
		})
	}
	return lessons
}

func buildActionPlan(riskScore RiskScore) ActionPlan {
	plan := ActionPlan{Immediate: []ActionItem{}, ShortTerm: []ActionItem{}, LongTerm: []ActionItem{}}
	if riskScore.RiskLevel == RiskCritical {
		plan.Immediate = append(plan.Immediate,
			ActionItem{Action: "Stop all high-tension styles immediately", Why: "Prevent further damage to hair follicles", Duration: "Start today"},
			ActionItem{Action: "Begin using edge repair serum 2x daily", Why: "Start repair process immediately", Duration: "Ongoing"},
		)
	}
	plan.ShortTerm = append(plan.ShortTerm,
		ActionItem{Action: "Switch to low-tension protective styles", Why: "Give your hair time to recover", Duration: "30-60 days"},
		ActionItem{Action: "Scalp massage 3x per week", Why: "Increase blood flow to follicles", Duration: "Ongoing"},
	)
	plan.LongTerm = append(plan.LongTerm,
		ActionItem{Action: "Rotate protective styles every 6-8 weeks", Why: "Prevent tension buildup", Duration: "Permanent habit"},
		ActionItem{Action: "Take monthly progress photos", Why: "Track regrowth and adjust treatment", Duration: "Next 6 months"},
	)
	return plan
}

func buildSummary(riskScore RiskScore, area AreaMatch) string {
	var summary string
	switch riskScore.RiskLevel {
	case RiskCritical:
		summary = "Your styling habits are putting your hair at critical risk. "
	case RiskHigh:
		summary = "Your hair is experiencing significant tension-related stress. "
	case RiskModerate:
		summary = "You have some styling habits that could be improved for better hair health. "
	default:
		summary = "Great news! Your styling habits are relatively hair-healthy. "
	}
	if area.MatchRate > 0.7 {
		summary += "The good news: your hair loss pattern matches your styling habits, which means it's reversible with the right changes."
	} else {
		summary += "Not all affected areas match your styling patterns - we should also look at hormonal or nutritional factors."
	}
	return summary
}
