package engine

import "fmt"

// Priority tags a treatment plan step.
type Priority string

const (
	PriorityUrgent Priority = "URGENT"
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityInfo   Priority = "INFO"
)

// PlanStep is one entry of the ordered treatment plan.
type PlanStep struct {
	Priority Priority `json:"priority"`
	Title    string   `json:"title"`
	Action   string   `json:"action"`
	Product  string   `json:"product"`
}

var (
	pScalpInfection  = rx(`ringworm|sores|infection`)
	pDandruffItch    = rx(`dandruff|itch`)
	pTightOrFrontal  = rx(`tight ponytails|frontal wigs`)
	pWigOnOrNoCotton = rx(`wig-on|no-cotton`)
	pWigOn           = rx(`wig-on`)
	pRareWash        = rx(`less-than-monthly|only-takedown`)
	pRecentOnset     = rx(`less than 3|^3-6`)
	pSixToTwelveOn   = rx(`6-12`)
)

// BuildTreatmentPlan walks the fixed care-pathway sequence and emits every
// step whose guard holds. The emission order is the output order; steps are
// never re-sorted, so urgent care always precedes cosmetic guidance.
func BuildTreatmentPlan(a Answers, d Diagnosis) []PlanStep {
	var plan []PlanStep

	scalpIssues := a.List(QScalpIssues)
	if len(scalpIssues) > 0 {
		if anyEntryMatches(scalpIssues, pScalpInfection) {
			plan = append(plan, PlanStep{
				Priority: PriorityUrgent,
				Title:    "Scalp Healing Protocol",
				Action:   "See a dermatologist for infection treatment. After clearance, begin Fulani Hair Gro to support follicle recovery.",
				Product:  "Medical treatment first, then Fulani Hair Gro",
			})
		}
		if anyEntryMatches(scalpIssues, pDandruffItch) {
			plan = append(plan, PlanStep{
				Priority: PriorityHigh,
				Title:    "Scalp Soothing Routine",
				Action:   "Apply Fulani Hair Gro to scalp 3x weekly. Use gentle sulfate-free shampoo to calm irritation and reduce flaking.",
				Product:  "Fulani Hair Gro + gentle sulfate-free shampoo",
			})
		}
	}

	switch d.Primary {
	case "Traction Alopecia":
		action := "Loosen braids/cornrows and request low‑tension styles from your stylist."
		if anyEntryMatches(a.List(QProtectiveStyles), pTightOrFrontal) {
			action = "Immediately stop tight ponytails and frontal wigs. Give edges a 3‑month break."
		}
		plan = append(plan, PlanStep{
			Priority: PriorityHigh,
			Title:    "Stop Further Damage",
			Action:   action,
			Product:  "Edge-friendly styling products (non-alcohol)",
		})
		plan = append(plan, PlanStep{
			Priority: PriorityHigh,
			Title:    "Follicle Reactivation",
			Action:   "Massage Fulani Hair Gro into edges and affected areas 2x daily to boost circulation and block DHT locally.",
			Product:  "Fulani Hair Gro (Edge Recovery Focus)",
		})
	case "Telogen Effluvium":
		action := "Reduce stress (sleep, breathwork, light exercise). Use Fulani Hair Gro to help shift follicles back to growth."
		if anyEntryMatches(a.List(QLifeEvents), pPostpartum) {
			action = "Use a postnatal multivitamin with iron. Apply Fulani Hair Gro to support recovery from postpartum shedding."
		}
		plan = append(plan, PlanStep{
			Priority: PriorityHigh,
			Title:    "Nutrient Replenishment",
			Action:   action,
			Product:  "Fulani Hair Gro + multivitamin with iron",
		})
	case "Androgenic Alopecia":
		plan = append(plan, PlanStep{
			Priority: PriorityHigh,
			Title:    "DHT Blocking Protocol",
			Action:   "Apply Fulani Hair Gro 2x daily to the scalp for natural DHT modulation and improved density.",
			Product:  "Fulani Hair Gro (DHT Blocking Focus)",
		})
		if anyEntryMatches(a.List(QLifeEvents), pMenopause) {
			plan = append(plan, PlanStep{
				Priority: PriorityMedium,
				Title:    "Hormonal Support",
				Action:   "Discuss hormonal options with your doctor. Continue topical routine consistently.",
				Product:  "Medical consultation + Fulani Hair Gro",
			})
		}
	}

	if matchesAny(a.Str(QSleepBonnet), pWigOnOrNoCotton) {
		action := "Replace cotton pillowcases with silk/satin to minimize friction and breakage."
		if matchesAny(a.Str(QSleepBonnet), pWigOn) {
			action = "Never sleep with a wig on. Switch to silk/satin bonnet or pillowcase immediately."
		}
		plan = append(plan, PlanStep{
			Priority: PriorityMedium,
			Title:    "Night-Time Protection",
			Action:   action,
			Product:  "Silk bonnet + satin pillowcase",
		})
	}
	if covered := a.Str(QCoveredHair); covered != "" && covered != "no-issues" {
		plan = append(plan, PlanStep{
			Priority: PriorityMedium,
			Title:    "Scalp Breathing Time",
			Action:   "Give your scalp daily breaks. Remove wigs/scarves 2‑3 hours to reduce irritation and improve airflow.",
			Product:  "Low-manipulation natural styles",
		})
	}

	if matchesAny(a.Str(QWashFrequency), pRareWash) {
		plan = append(plan, PlanStep{
			Priority: PriorityMedium,
			Title:    "Scalp Cleansing Routine",
			Action:   "Wash at least every 2 weeks. Clean scalp prevents clogging and supports growth. Use sulfate-free shampoo.",
			Product:  "Gentle sulfate-free shampoo",
		})
	}

	whenNoticed := a.Str(QNoticedWhen)
	timeline := "4‑6 months of consistent use (longer-term issues take longer to reverse)"
	switch {
	case matchesAny(whenNoticed, pRecentOnset):
		timeline = "2‑3 months of consistent use"
	case matchesAny(whenNoticed, pSixToTwelveOn):
		timeline = "3‑4 months of consistent use"
	}
	noticed := whenNoticed
	if noticed == "" {
		noticed = "recently"
	}
	plan = append(plan, PlanStep{
		Priority: PriorityInfo,
		Title:    "Expected Results Timeline",
		Action:   fmt.Sprintf("Based on how long you've had this issue (%s), expect visible results in %s.", noticed, timeline),
		Product:  "Consistency is key",
	})

	return plan
}
