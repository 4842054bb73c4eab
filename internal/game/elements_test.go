package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestElementalDamageMultiplier(t *testing.T) {
	tests := []struct {
		name      string
		attacking Element
		defending Element
		want      string
	}{
		{name: "Terra Double Vs Electric", attacking: ElementTerra, defending: ElementElectric, want: "2"},
		{name: "Terra Double Vs Dark", attacking: ElementTerra, defending: ElementDark, want: "2"},
		{name: "Terra Half Vs Metal", attacking: ElementTerra, defending: ElementMetal, want: "0.5"},
		{name: "Terra Half Vs War", attacking: ElementTerra, defending: ElementWar, want: "0.5"},
		{name: "Terra Neutral Vs Sea", attacking: ElementTerra, defending: ElementSea, want: "1"},
		{name: "Flame Double Vs Nature", attacking: ElementFlame, defending: ElementNature, want: "2"},
		{name: "Flame Half Vs Sea", attacking: ElementFlame, defending: ElementSea, want: "0.5"},
		{name: "Sea Double Vs Flame", attacking: ElementSea, defending: ElementFlame, want: "2"},
		{name: "Nature Double Vs Light", attacking: ElementNature, defending: ElementLight, want: "2"},
		{name: "Electric Double Vs Metal", attacking: ElementElectric, defending: ElementMetal, want: "2"},
		{name: "Electric Half Vs Light", attacking: ElementElectric, defending: ElementLight, want: "0.5"},
		{name: "Ice Double Vs War", attacking: ElementIce, defending: ElementWar, want: "2"},
		{name: "Metal Double Vs Ice", attacking: ElementMetal, defending: ElementIce, want: "2"},
		{name: "Dark Half Vs Terra", attacking: ElementDark, defending: ElementTerra, want: "0.5"},
		{name: "Dark Neutral Vs War", attacking: ElementDark, defending: ElementWar, want: "1"},
		{name: "Light Half Vs Nature", attacking: ElementLight, defending: ElementNature, want: "0.5"},
		{name: "War Double Vs Flame", attacking: ElementWar, defending: ElementFlame, want: "2"},
		{name: "Pure Double Vs Legend", attacking: ElementPure, defending: ElementLegend, want: "2"},
		{name: "Pure Half Vs Primal", attacking: ElementPure, defending: ElementPrimal, want: "0.5"},
		{name: "Legend Double Vs Primal", attacking: ElementLegend, defending: ElementPrimal, want: "2"},
		{name: "Primal Double Vs Pure", attacking: ElementPrimal, defending: ElementPure, want: "2"},
		{name: "Wind Double Vs Itself", attacking: ElementWind, defending: ElementWind, want: "2"},
		{name: "Wind Neutral Vs Terra", attacking: ElementWind, defending: ElementTerra, want: "1"},
		{name: "Self Pair Neutral", attacking: ElementFlame, defending: ElementFlame, want: "1"},
		{name: "Lowercase Tags Normalized", attacking: "terra", defending: "electric", want: "2"},
		{name: "Padded Tag Normalized", attacking: " SEA ", defending: "FLAME", want: "2"},
		{name: "Unknown Attacker Neutral", attacking: "GRAVITY", defending: ElementSea, want: "1"},
		{name: "Unknown Defender Neutral", attacking: ElementSea, defending: "GRAVITY", want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElementalDamageMultiplier(tt.attacking, tt.defending)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ElementalDamageMultiplier(%q, %q) = %s, want %s", tt.attacking, tt.defending, got, tt.want)
			}
		})
	}
}

func TestElementalDamageMultiplierDomain(t *testing.T) {
	two := decimal.NewFromInt(2)
	half := decimal.RequireFromString("0.5")
	one := decimal.NewFromInt(1)

	for _, attacker := range AllElements() {
		for _, defender := range AllElements() {
			got := ElementalDamageMultiplier(attacker, defender)
			if !got.Equal(two) && !got.Equal(half) && !got.Equal(one) {
				t.Errorf("ElementalDamageMultiplier(%q, %q) = %s, want one of 2, 0.5, 1", attacker, defender, got)
			}
		}
	}
}

func TestAncientWorldElementsAlwaysNeutral(t *testing.T) {
	one := decimal.NewFromInt(1)
	for _, attacker := range AncientWorldElements() {
		for _, defender := range AllElements() {
			if got := ElementalDamageMultiplier(attacker, defender); !got.Equal(one) {
				t.Errorf("ElementalDamageMultiplier(%q, %q) = %s, want 1", attacker, defender, got)
			}
		}
	}
}

func TestParseElement(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Element
		wantOK bool
	}{
		{name: "Canonical", raw: "TERRA", want: ElementTerra, wantOK: true},
		{name: "Lowercase", raw: "soul", want: ElementSoul, wantOK: true},
		{name: "Padded", raw: "  flame ", want: ElementFlame, wantOK: true},
		{name: "Unknown", raw: "GRAVITY", wantOK: false},
		{name: "Empty", raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseElement(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseElement(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseElement(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestElementGroups(t *testing.T) {
	if got := len(ActiveElements()); got != 14 {
		t.Errorf("len(ActiveElements()) = %d, want 14", got)
	}
	if got := len(AncientWorldElements()); got != 6 {
		t.Errorf("len(AncientWorldElements()) = %d, want 6", got)
	}
	if got := len(AllElements()); got != 20 {
		t.Errorf("len(AllElements()) = %d, want 20", got)
	}

	wantAncient := []Element{ElementBeauty, ElementMagic, ElementChaos, ElementHappy, ElementDream, ElementSoul}
	if diff := cmp.Diff(wantAncient, AncientWorldElements()); diff != "" {
		t.Errorf("AncientWorldElements() mismatch (-want +got):\n%s", diff)
	}

	for _, e := range ActiveElements() {
		if e.IsAncientWorld() {
			t.Errorf("%q.IsAncientWorld() = true, want false", e)
		}
	}
	for _, e := range AncientWorldElements() {
		if !e.IsAncientWorld() {
			t.Errorf("%q.IsAncientWorld() = false, want true", e)
		}
	}
}
