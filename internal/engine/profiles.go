package engine

// TensionType describes how a style loads the follicles.
type TensionType string

const (
	TensionInstallation TensionType = "installation"
	TensionPulling      TensionType = "pulling"
	TensionChemical     TensionType = "chemical"
	TensionCombined     TensionType = "combined"
	TensionWeight       TensionType = "weight"
	TensionMinimal      TensionType = "minimal"
	TensionProtective   TensionType = "protective"
	TensionNone         TensionType = "none"
)

// DamageType names the dominant damage mechanism of a style.
type DamageType string

const (
	DamageExtremeTension    DamageType = "extreme_tension"
	DamageConstantTension   DamageType = "constant_tension"
	DamageAdhesive          DamageType = "adhesive_damage"
	DamageTightBraiding     DamageType = "tight_braiding"
	DamageWeightPlusTension DamageType = "weight_plus_tension"
	DamageModerateTension   DamageType = "moderate_tension"
	DamageGravitationalPull DamageType = "gravitational_pull"
	DamageLowManipulation   DamageType = "low_manipulation"
	DamageNoTension         DamageType = "no_tension"
)

// StyleRiskProfile is static reference data for one normalized style id.
type StyleRiskProfile struct {
	RiskScore     float64
	TensionType   TensionType
	AffectedAreas []string
	Concerns      []string
	DamageType    DamageType
}

// Risk scores are hand-tuned and kept verbatim; do not re-derive them.
var styleRiskProfiles = map[string]StyleRiskProfile{
	// High tension (8-10)
	"micro_twists": {
		RiskScore:     10,
		TensionType:   TensionInstallation,
		AffectedAreas: []string{"edges", "temples", "crown"},
		Concerns:      []string{"edge_damage", "traction_alopecia", "breakage"},
		DamageType:    DamageExtremeTension,
	},
	"tight_ponytails": {
		RiskScore:     9,
		TensionType:   TensionPulling,
		AffectedAreas: []string{"edges", "temples"},
		Concerns:      []string{"edge_damage", "traction_alopecia", "hairline_recession"},
		DamageType:    DamageConstantTension,
	},
	"wigs_glue": {
		RiskScore:     9,
		TensionType:   TensionChemical,
		AffectedAreas: []string{"edges", "temples", "hairline"},
		Concerns:      []string{"chemical_damage", "edge_damage", "scalp_irritation"},
		DamageType:    DamageAdhesive,
	},
	"allback_cornrows": {
		RiskScore:     8,
		TensionType:   TensionInstallation,
		AffectedAreas: []string{"edges", "temples", "crown"},
		Concerns:      []string{"traction_alopecia", "edge_damage"},
		DamageType:    DamageTightBraiding,
	},
	"ghana_weaving": {
		RiskScore:     8,
		TensionType:   TensionInstallation,
		AffectedAreas: []string{"edges", "temples"},
		Concerns:      []string{"traction_alopecia", "edge_damage"},
		DamageType:    DamageTightBraiding,
	},

	// Medium tension (4-7)
	"box_braids": {
		RiskScore:     6,
		TensionType:   TensionInstallation,
		AffectedAreas: []string{"crown", "nape"},
		Concerns:      []string{"weight_stress", "breakage"},
		DamageType:    DamageModerateTension,
	},
	"faux_locs": {
		RiskScore:     7,
		TensionType:   TensionCombined,
		AffectedAreas: []string{"edges", "crown"},
		Concerns:      []string{"weight_stress", "installation_tension"},
		DamageType:    DamageWeightPlusTension,
	},
	"weaves": {
		RiskScore:     6,
		TensionType:   TensionInstallation,
		AffectedAreas: []string{"crown", "perimeter"},
		Concerns:      []string{"weight_stress", "breakage"},
		DamageType:    DamageModerateTension,
	},
	"crochet": {
		RiskScore:     5,
		TensionType:   TensionInstallation,
		AffectedAreas: []string{"crown"},
		Concerns:      []string{"breakage"},
		DamageType:    DamageModerateTension,
	},
	"dreadlocs": {
		RiskScore:     5,
		TensionType:   TensionWeight,
		AffectedAreas: []string{"crown", "edges"},
		Concerns:      []string{"weight_stress", "root_weakness"},
		DamageType:    DamageGravitationalPull,
	},
	"one_million_braids": {
		RiskScore:     7,
		TensionType:   TensionCombined,
		AffectedAreas: []string{"edges", "crown"},
		Concerns:      []string{"weight_stress", "installation_tension", "edge_damage"},
		DamageType:    DamageWeightPlusTension,
	},

	// Low tension (1-3)
	"twists_senegalese": {
		RiskScore:     3,
		TensionType:   TensionMinimal,
		AffectedAreas: []string{},
		Concerns:      []string{"minimal_risk"},
		DamageType:    DamageLowManipulation,
	},
	"wigs_no_glue": {
		RiskScore:     2,
		TensionType:   TensionMinimal,
		AffectedAreas: []string{},
		Concerns:      []string{"minimal_risk"},
		DamageType:    DamageLowManipulation,
	},
	"threading_didi": {
		RiskScore:     3,
		TensionType:   TensionProtective,
		AffectedAreas: []string{},
		Concerns:      []string{"minimal_risk"},
		DamageType:    DamageLowManipulation,
	},
	"natural_hair": {
		RiskScore:     1,
		TensionType:   TensionNone,
		AffectedAreas: []string{},
		Concerns:      []string{"minimal_risk"},
		DamageType:    DamageNoTension,
	},
}

// LookupProfile returns the risk profile for a style id. Unknown ids report
// ok=false; callers treat them as zero risk rather than erroring.
func LookupProfile(styleID string) (StyleRiskProfile, bool) {
	p, ok := styleRiskProfiles[styleID]
	return p, ok
}

func profileRisk(styleID string) float64 {
	p, ok := styleRiskProfiles[styleID]
	if !ok {
		return 0
	}
	return p.RiskScore
}
