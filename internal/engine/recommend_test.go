package engine

import (
	"reflect"
	"strings"
	"testing"
)

func TestGenerateStyleRiskReportCritical(t *testing.T) {
	report := GenerateStyleRiskReport(StyleRiskInput{
		ProtectiveStyles: []string{"micro_twists", "tight_ponytails"},
		ScalpAreas:       []string{"edges", "temples"},
	})

	if report.RiskScore.RiskLevel != RiskCritical {
		t.Fatalf("risk level: got %v", report.RiskScore.RiskLevel)
	}
	if len(report.Patterns) == 0 {
		t.Fatalf("expected patterns")
	}

	// Edge-affected and critical: both essential products present.
	categories := make([]string, 0, len(report.Products.Essential))
	for _, p := range report.Products.Essential {
		categories = append(categories, p.Category)
	}
	want := []string{"edge_repair", "scalp_treatment"}
	if !reflect.DeepEqual(categories, want) {
		t.Fatalf("essential categories: got %v, want %v", categories, want)
	}

	// Critical risk populates the immediate action bucket.
	if len(report.ActionPlan.Immediate) != 2 {
		t.Fatalf("immediate actions: got %d, want 2", len(report.ActionPlan.Immediate))
	}
	if !strings.HasPrefix(report.Summary, "Your styling habits are putting your hair at critical risk.") {
		t.Fatalf("summary opening: got %q", report.Summary)
	}
}

func TestGenerateStyleRiskReportAdhesiveAndWeight(t *testing.T) {
	report := GenerateStyleRiskReport(StyleRiskInput{
		ProtectiveStyles: []string{"wigs_glue", "dreadlocs"},
		ScalpAreas:       []string{"edges"},
	})

	foundChemical := false
	for _, p := range report.Products.Essential {
		if p.Category == "chemical_repair" {
			foundChemical = true
		}
	}
	if !foundChemical {
		t.Fatalf("adhesive damage should add chemical repair, got %+v", report.Products.Essential)
	}

	foundStrengthening := false
	for _, p := range report.Products.Recommended {
		if p.Category == "strengthening" {
			foundStrengthening = true
		}
	}
	if !foundStrengthening {
		t.Fatalf("weight tension should add strengthening, got %+v", report.Products.Recommended)
	}
	// The generic growth product is always last in recommended.
	last := report.Products.Recommended[len(report.Products.Recommended)-1]
	if last.Category != "growth" {
		t.Fatalf("expected growth product appended, got %+v", last)
	}
}

func TestMatchAffectedAreasFullMatch(t *testing.T) {
	got := matchAffectedAreas([]string{"edges", "temples", "crown"}, []string{"edges", "temples"})
	if got.MatchRate != 1.0 {
		t.Fatalf("match rate: got %v, want 1.0", got.MatchRate)
	}
	if len(got.Unexpected) != 0 {
		t.Fatalf("unexpected: got %v", got.Unexpected)
	}
	if got.Insight != "Your hair loss pattern matches your styling habits." {
		t.Fatalf("insight: got %q", got.Insight)
	}
}

func TestMatchAffectedAreasUnexpected(t *testing.T) {
	got := matchAffectedAreas([]string{"crown"}, []string{"crown", "nape"})
	if got.MatchRate != 0.5 {
		t.Fatalf("match rate: got %v, want 0.5", got.MatchRate)
	}
	if !reflect.DeepEqual(got.Unexpected, []string{"nape"}) {
		t.Fatalf("unexpected: got %v", got.Unexpected)
	}
	if got.Insight != "Some affected areas are not explained by styling alone." {
		t.Fatalf("insight: got %q", got.Insight)
	}
}

func TestMatchAffectedAreasNothingReported(t *testing.T) {
	got := matchAffectedAreas([]string{"edges"}, nil)
	if got.MatchRate != 0 || got.Insight != "Analysis complete" {
		t.Fatalf("got %+v", got)
	}
}

func TestSummaryMatchRateBranch(t *testing.T) {
	high := buildSummary(RiskScore{RiskLevel: RiskHigh}, AreaMatch{MatchRate: 0.8})
	if !strings.Contains(high, "reversible with the right changes") {
		t.Fatalf("high match summary: got %q", high)
	}
	low := buildSummary(RiskScore{RiskLevel: RiskHigh}, AreaMatch{MatchRate: 0.5})
	if !strings.Contains(low, "hormonal or nutritional factors") {
		t.Fatalf("low match summary: got %q", low)
	}
	// 0.7 itself falls on the hormonal/nutritional side.
	boundary := buildSummary(RiskScore{RiskLevel: RiskModerate}, AreaMatch{MatchRate: 0.7})
	if !strings.Contains(boundary, "hormonal or nutritional factors") {
		t.Fatalf("boundary summary: got %q", boundary)
	}
}

func TestEducationPrioritizesCriticalPatterns(t *testing.T) {
	report := GenerateStyleRiskReport(StyleRiskInput{
		ProtectiveStyles: []string{"micro_twists", "tight_ponytails"},
	})
	if len(report.Education) == 0 {
		t.Fatalf("expected lessons")
	}
	if report.Education[0].Urgency != "high" {
		t.Fatalf("first lesson urgency: got %q", report.Education[0].Urgency)
	}
	if report.Education[0].Title != "Understanding Your Hair Loss" &&
		!strings.Contains(report.Education[0].Title, "Edges") {
		t.Fatalf("first lesson title: got %q", report.Education[0].Title)
	}
}
