package engine

import (
	"reflect"
	"testing"
)

func TestNormalizeProtectiveStylesKnownLabels(t *testing.T) {
	got := NormalizeProtectiveStyles([]string{
		"Box braids (individual plaits)",
		"Cornrows (scalp braids/straight backs)",
		"Frontal/full lace wigs (uses glue)",
		"Twists (two-strand twists, Senegalese twists)",
		"Tight ponytails or high buns (\"puff\" or slicked edges)",
		"Natural hair out (afro, wash-and-go, twist-out)",
	})
	want := []string{
		"box_braids",
		"allback_cornrows",
		"wigs_glue",
		"twists_senegalese",
		"tight_ponytails",
		"natural_hair",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalize styles: got %v, want %v", got, want)
	}
}

func TestNormalizeRuleOrderIsSignificant(t *testing.T) {
	// A label carrying both a specific and a generic cue must resolve to the
	// earlier declared rule.
	got := NormalizeProtectiveStyles([]string{"Micro twists (senegalese style)"})
	if got[0] != "micro_twists" {
		t.Fatalf("expected micro_twists, got %q", got[0])
	}
	// "Ghana weaving/Shuku" carries "weaving", which the first rule claims.
	got = NormalizeProtectiveStyles([]string{"Ghana weaving/Shuku (raised cornrow styles)"})
	if got[0] != "allback_cornrows" {
		t.Fatalf("expected allback_cornrows, got %q", got[0])
	}
}

func TestNormalizeSlugFallback(t *testing.T) {
	got := NormalizeProtectiveStyles([]string{"Some Brand-New Style!!"})
	if got[0] != "some_brand_new_style_" {
		t.Fatalf("expected slug fallback, got %q", got[0])
	}
}

func TestNormalizeIdentifierRoundTrip(t *testing.T) {
	// Feeding a produced identifier back through normalization must not
	// change it.
	ids := []string{"twists_senegalese", "box_braids", "natural_hair", "edges"}
	styles := NormalizeProtectiveStyles(ids[:3])
	if !reflect.DeepEqual(styles, ids[:3]) {
		t.Fatalf("style ids not stable: got %v", styles)
	}
	areas := NormalizeScalpAreas([]string{"edges"})
	if areas[0] != "edges" {
		t.Fatalf("area id not stable: got %q", areas[0])
	}
}

func TestNormalizeScalpAreas(t *testing.T) {
	got := NormalizeScalpAreas([]string{
		"Edges (front hairline)",
		"Temples (sides of hairline)",
		"Crown (top of head)",
		"Nape (back of neck)",
		"Random patches",
		"Even thinning all over",
	})
	want := []string{"edges", "temples", "crown", "nape", "patches", "overall"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalize areas: got %v, want %v", got, want)
	}
}
