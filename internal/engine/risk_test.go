package engine

import (
	"reflect"
	"testing"
)

func TestCalculateRiskScoreEmptySelection(t *testing.T) {
	got := CalculateRiskScore(nil)
	want := RiskScore{TotalScore: 0, RiskLevel: RiskUnknown, MaxIndividualRisk: 0, AverageRisk: 0}
	if got != want {
		t.Fatalf("empty selection: got %+v, want %+v", got, want)
	}
}

func TestCalculateRiskScoreWeightedCombination(t *testing.T) {
	// micro_twists=10, box_braids=6: 0.7*10 + 0.3*8 = 9.4
	got := CalculateRiskScore([]string{"micro_twists", "box_braids"})
	if got.TotalScore != 9.4 {
		t.Fatalf("total: got %v, want 9.4", got.TotalScore)
	}
	if got.RiskLevel != RiskCritical {
		t.Fatalf("level: got %v, want critical", got.RiskLevel)
	}
	if got.MaxIndividualRisk != 10 || got.AverageRisk != 8 {
		t.Fatalf("components: got max=%v avg=%v", got.MaxIndividualRisk, got.AverageRisk)
	}
}

func TestCalculateRiskScoreUnknownStylesContributeZero(t *testing.T) {
	// micro_twists=10, unknown=0: 0.7*10 + 0.3*5 = 8.5
	got := CalculateRiskScore([]string{"micro_twists", "mystery_style"})
	if got.TotalScore != 8.5 {
		t.Fatalf("total: got %v, want 8.5", got.TotalScore)
	}
	if got.AverageRisk != 5 {
		t.Fatalf("avg: got %v, want 5", got.AverageRisk)
	}
}

func TestRiskLevelBoundaries(t *testing.T) {
	cases := []struct {
		styles []string
		want   RiskLevel
	}{
		// allback_cornrows alone: total exactly 8.0
		{[]string{"allback_cornrows"}, RiskCritical},
		// tight_ponytails + natural_hair: 0.7*9 + 0.3*5 = 7.8
		{[]string{"tight_ponytails", "natural_hair"}, RiskHigh},
		// box_braids alone: 6.0
		{[]string{"box_braids"}, RiskHigh},
		// crochet alone: 5.0
		{[]string{"crochet"}, RiskModerate},
		// wigs_no_glue alone: 2.0
		{[]string{"wigs_no_glue"}, RiskLow},
		// natural_hair alone: 1.0
		{[]string{"natural_hair"}, RiskMinimal},
	}
	for _, tc := range cases {
		got := CalculateRiskScore(tc.styles)
		if got.RiskLevel != tc.want {
			t.Fatalf("%v: got %v, want %v (total=%v)", tc.styles, got.RiskLevel, tc.want, got.TotalScore)
		}
	}
}

func TestIdentifyPrimaryConcernsRanking(t *testing.T) {
	// edge_damage appears in all three profiles, traction_alopecia in two.
	got := IdentifyPrimaryConcerns([]string{"micro_twists", "tight_ponytails", "wigs_glue"})
	if len(got.PrimaryConcerns) == 0 {
		t.Fatalf("expected concerns")
	}
	if got.PrimaryConcerns[0].Concern != "edge_damage" || got.PrimaryConcerns[0].Frequency != 3 {
		t.Fatalf("top concern: got %+v", got.PrimaryConcerns[0])
	}
	if got.PrimaryConcerns[1].Concern != "traction_alopecia" || got.PrimaryConcerns[1].Frequency != 2 {
		t.Fatalf("second concern: got %+v", got.PrimaryConcerns[1])
	}
	wantAreas := []string{"edges", "temples", "crown", "hairline"}
	if !reflect.DeepEqual(got.AffectedAreas, wantAreas) {
		t.Fatalf("areas: got %v, want %v", got.AffectedAreas, wantAreas)
	}
}

func TestIdentifyPrimaryConcernsIgnoresUnknownIDs(t *testing.T) {
	got := IdentifyPrimaryConcerns([]string{"mystery_style"})
	if len(got.PrimaryConcerns) != 0 || len(got.AffectedAreas) != 0 {
		t.Fatalf("unknown styles must contribute nothing, got %+v", got)
	}
}

func TestDetectPatternsCriticalCombos(t *testing.T) {
	got := DetectPatterns([]string{"micro_twists", "tight_ponytails"})
	types := patternTypes(got)
	want := []string{"multiple_high_tension", "extreme_edge_stress"}
	if !reflect.DeepEqual(types, want) {
		t.Fatalf("patterns: got %v, want %v", types, want)
	}

	got = DetectPatterns([]string{"wigs_glue", "tight_ponytails"})
	types = patternTypes(got)
	want = []string{"multiple_high_tension", "chemical_plus_tension"}
	if !reflect.DeepEqual(types, want) {
		t.Fatalf("patterns: got %v, want %v", types, want)
	}
}

func TestDetectPatternsPositive(t *testing.T) {
	got := patternTypes(DetectPatterns([]string{"box_braids", "natural_hair"}))
	if !reflect.DeepEqual(got, []string{"balanced_approach"}) {
		t.Fatalf("balanced: got %v", got)
	}

	got = patternTypes(DetectPatterns([]string{"natural_hair"}))
	if !reflect.DeepEqual(got, []string{"low_risk_styling", "natural_only"}) {
		t.Fatalf("natural only: got %v", got)
	}

	got = patternTypes(DetectPatterns([]string{"natural_hair", "threading_didi"}))
	if !reflect.DeepEqual(got, []string{"low_risk_styling"}) {
		t.Fatalf("low risk: got %v", got)
	}
}

func TestDetectPatternsIdempotentUnderDuplication(t *testing.T) {
	base := []string{"micro_twists", "tight_ponytails"}
	before := patternTypes(DetectPatterns(base))
	after := patternTypes(DetectPatterns(append([]string{"micro_twists"}, base...)))
	for _, p := range before {
		if !containsID(after, p) {
			t.Fatalf("duplicating a style dropped pattern %q: %v -> %v", p, before, after)
		}
	}
}

func patternTypes(patterns []Pattern) []string {
	types := make([]string, 0, len(patterns))
	for _, p := range patterns {
		types = append(types, p.Type)
	}
	return types
}
