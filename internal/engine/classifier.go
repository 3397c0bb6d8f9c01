package engine

import (
	"fmt"
	"math"
)

// Evaluation is the full presentation payload: the indicator-based pipeline's
// diagnosis, severity and plan, plus the style-risk pipeline's report. The two
// pipelines can disagree; both are reported, never merged.
type Evaluation struct {
	Diagnosis Diagnosis              `json:"diagnosis"`
	Severity  SeverityRecommendation `json:"severity"`
	Plan      []PlanStep             `json:"plan"`
	StyleRisk StyleRiskReport        `json:"styleRisk"`
	Summary   string                 `json:"summary"`
}

// Evaluate runs both pipelines over a completed answer snapshot. It is a pure
// function: same answers, same evaluation.
func Evaluate(a Answers) Evaluation {
	diagnosis := Diagnose(a)
	severity := RecommendSeverity(a, diagnosis)
	plan := BuildTreatmentPlan(a, diagnosis)
	styleRisk := GenerateStyleRiskReport(StyleRiskInput{
		ProtectiveStyles: NormalizeProtectiveStyles(a.List(QProtectiveStyles)),
		ScalpAreas:       NormalizeScalpAreas(a.List(QAffectedAreas)),
		AgeRange:         a.Str(QAgeRange),
		WhenNoticed:      a.Str(QNoticedWhen),
		PrimaryConcern:   a.Str(QPrimaryConcern),
	})

	return Evaluation{
		Diagnosis: diagnosis,
		Severity:  severity,
		Plan:      plan,
		StyleRisk: styleRisk,
		Summary:   personalizedSummary(diagnosis),
	}
}

func personalizedSummary(d Diagnosis) string {
	confPct := int(math.Round(d.ConfidenceFor(d.Primary) * 100))
	finding := d.Primary
	if confPct > 0 {
		finding = fmt.Sprintf("%s (%d%% confidence)", d.Primary, confPct)
	}
	return fmt.Sprintf("Primary finding: %s. We will focus on restoring scalp balance, protecting fragile areas, and stimulating follicles with a consistent routine tailored to your selections.", finding)
}

// Finding is a classifier strategy's primary conclusion.
type Finding struct {
	Primary    string  `json:"primary"`
	Confidence float64 `json:"confidence"`
}

// Classifier is one strategy for turning answers into a primary finding.
// Callers pick a strategy explicitly; the strategies are alternatives, not
// stages of one pipeline.
type Classifier interface {
	Name() string
	Classify(a Answers) Finding
}

// RuleBasedDiagnosis classifies via the six-condition indicator system.
type RuleBasedDiagnosis struct{}

func (RuleBasedDiagnosis) Name() string { return "rule_based_diagnosis" }

func (RuleBasedDiagnosis) Classify(a Answers) Finding {
	d := Diagnose(a)
	return Finding{Primary: d.Primary, Confidence: d.ConfidenceFor(d.Primary)}
}

// StyleRiskBased classifies purely from protective-style tension risk.
type StyleRiskBased struct{}

func (StyleRiskBased) Name() string { return "style_risk" }

func (StyleRiskBased) Classify(a Answers) Finding {
	score := CalculateRiskScore(NormalizeProtectiveStyles(a.List(QProtectiveStyles)))
	return Finding{Primary: string(score.RiskLevel), Confidence: score.TotalScore / 10}
}
