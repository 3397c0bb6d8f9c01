package engine

import "sort"

// FallbackDiagnosis is returned when no condition clears its threshold.
const FallbackDiagnosis = "General Hair Thinning"

// Diagnosis ranks the accepted condition hypotheses.
type Diagnosis struct {
	// Primary is the highest-confidence accepted condition, or
	// FallbackDiagnosis when nothing was accepted.
	Primary string `json:"primary"`
	// Secondary lists the remaining accepted conditions, descending by
	// confidence.
	Secondary []string `json:"secondary"`
	// Confidence maps condition keys to the fraction of indicators that
	// fired. Only keys of accepted conditions are present.
	Confidence map[string]float64 `json:"confidence"`
}

// condition is one hypothesis: a fixed indicator list and an absolute
// acceptance threshold. Thresholds are hand-tuned; keep them verbatim.
type condition struct {
	key        string
	name       string
	threshold  int
	indicators func(a Answers) []bool
}

var (
	pEdge          = rx(`edge`)
	pTemple        = rx(`temple`)
	pBoxBraids     = rx(`box braids`)
	pCornrows      = rx(`cornrows`)
	pTightPony     = rx(`tight ponytails`)
	pGluedLace     = rx(`(frontal|full lace).*uses glue`)
	pGhanaWeaving  = rx(`ghana weaving|shuku`)
	pEdgesShort    = rx(`edges.*short`)
	pBreaksOrBoth  = rx(`breaks|both`)
	pPostpartum    = rx(`postpartum`)
	pBreastfeeding = rx(`breastfeeding`)
	pStressEvent   = rx(`stress|job change|relocation|loss`)
	pSurgery       = rx(`surgery|illness`)
	pShedding      = rx(`falls out|shedding|both`)
	pUnder3Months  = rx(`less than 3`)
	pThreeToSix    = rx(`^3-6`)
	pExcessiveShed = rx(`excessive shedding`)
	pMotherOrBoth  = rx(`mother|both`)
	pOlderAge      = rx(`46-55|56\+`)
	pMenopause     = rx(`menopause|perimenopause`)
	pCrown         = rx(`crown`)
	pOverallThin   = rx(`even thinning|overall`)
	pOneToTwo      = rx(`1-2 years`)
	pOverTwo       = rx(`more than 2`)
	pOverallWorry  = rx(`overall thinning`)
	pInfection     = rx(`ringworm|infection|sores|painful`)
	pBaldPatches   = rx(`bald patches`)
	pPatch         = rx(`patch`)
	pAnemia        = rx(`anemia|iron`)
	pVitamin       = rx(`vitamin`)
	pBreaks        = rx(`breaks`)
	pBreakage      = rx(`breakage`)
	pAutoimmune    = rx(`autoimmune`)
	pStress        = rx(`stress`)
)

// Conditions are evaluated in this order; ties on confidence keep it.
var conditions = []condition{
	{
		key:       "traction",
		name:      "Traction Alopecia",
		threshold: 2,
		indicators: func(a Answers) []bool {
			return []bool{
				anyEntryMatches(a.List(QAffectedAreas), pEdge, pTemple),
				anyEntryMatches(a.List(QProtectiveStyles), pBoxBraids, pCornrows, pTightPony, pGluedLace, pGhanaWeaving),
				matchesAny(a.Str(QLengthComparison), pEdgesShort),
				matchesAny(a.Str(QHairBehavior), pBreaksOrBoth),
			}
		},
	},
	{
		key:       "telogen",
		name:      "Telogen Effluvium",
		threshold: 3,
		indicators: func(a Answers) []bool {
			return []bool{
				anyEntryMatches(a.List(QLifeEvents), pPostpartum, pBreastfeeding),
				anyEntryMatches(a.List(QLifeEvents), pStressEvent, pSurgery),
				matchesAny(a.Str(QHairBehavior), pShedding),
				matchesAny(a.Str(QNoticedWhen), pUnder3Months, pThreeToSix),
				matchesAny(a.Str(QPrimaryConcern), pExcessiveShed),
			}
		},
	},
	{
		key:       "androgenic",
		name:      "Androgenic Alopecia",
		threshold: 3,
		indicators: func(a Answers) []bool {
			return []bool{
				matchesAny(a.Str(QFamilyHistory), pMotherOrBoth),
				matchesAny(a.Str(QAgeRange), pOlderAge),
				anyEntryMatches(a.List(QLifeEvents), pMenopause),
				anyEntryMatches(a.List(QAffectedAreas), pCrown, pOverallThin),
				matchesAny(a.Str(QNoticedWhen), pOneToTwo, pOverTwo),
				matchesAny(a.Str(QPrimaryConcern), pOverallWorry),
			}
		},
	},
	{
		key:       "cicatricial",
		name:      "Cicatricial (Scarring) Alopecia",
		threshold: 2,
		indicators: func(a Answers) []bool {
			return []bool{
				anyEntryMatches(a.List(QScalpIssues), pInfection),
				matchesAny(a.Str(QPrimaryConcern), pBaldPatches),
				anyEntryMatches(a.List(QAffectedAreas), pPatch),
			}
		},
	},
	{
		key:       "nutritional",
		name:      "Nutritional Deficiency-Related Hair Loss",
		threshold: 2,
		indicators: func(a Answers) []bool {
			return []bool{
				anyEntryMatches(a.List(QConditions), pAnemia, pVitamin),
				matchesAny(a.Str(QHairBehavior), pBreaks),
				matchesAny(a.Str(QPrimaryConcern), pBreakage),
				anyEntryMatches(a.List(QLifeEvents), pBreastfeeding),
			}
		},
	},
	{
		key:       "areata",
		name:      "Alopecia Areata",
		threshold: 2,
		indicators: func(a Answers) []bool {
			return []bool{
				anyEntryMatches(a.List(QConditions), pAutoimmune),
				matchesAny(a.Str(QPrimaryConcern), pBaldPatches),
				anyEntryMatches(a.List(QAffectedAreas), pPatch),
				anyEntryMatches(a.List(QLifeEvents), pStress),
			}
		},
	},
}

// conditionKeys maps display names back to their stable confidence keys.
var conditionKeys = func() map[string]string {
	m := make(map[string]string, len(conditions))
	for _, c := range conditions {
		m[c.name] = c.key
	}
	return m
}()

// Diagnose evaluates all six condition hypotheses over the answer map. A
// condition is accepted when its true-indicator count reaches its threshold;
// accepted conditions are ranked by confidence (hits over total indicators).
// Missing answers simply leave indicators false, never error.
func Diagnose(a Answers) Diagnosis {
	confidence := make(map[string]float64)
	type accepted struct {
		name string
		conf float64
	}
	var hits []accepted

	for _, c := range conditions {
		indicators := c.indicators(a)
		count := 0
		for _, fired := range indicators {
			if fired {
				count++
			}
		}
		if count >= c.threshold {
			conf := float64(count) / float64(len(indicators))
			confidence[c.key] = conf
			hits = append(hits, accepted{name: c.name, conf: conf})
		}
	}

	if len(hits) == 0 {
		return Diagnosis{Primary: FallbackDiagnosis, Secondary: []string{}, Confidence: confidence}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].conf > hits[j].conf
	})

	secondary := make([]string, 0, len(hits)-1)
	for _, h := range hits[1:] {
		secondary = append(secondary, h.name)
	}
	return Diagnosis{Primary: hits[0].name, Secondary: secondary, Confidence: confidence}
}

// ConfidenceFor returns the confidence recorded for a condition display name,
// or 0 when it was not accepted.
func (d Diagnosis) ConfidenceFor(name string) float64 {
	key, ok := conditionKeys[name]
	if !ok {
		return 0
	}
	return d.Confidence[key]
}
