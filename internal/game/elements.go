package game

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Element is the attack type of a legendary creature. The first fourteen
// elements form the strength/weakness chart; the six ancient world elements
// have no relationships and always deal normal damage.
type Element string

const (
	ElementTerra    Element = "TERRA"
	ElementFlame    Element = "FLAME"
	ElementSea      Element = "SEA"
	ElementNature   Element = "NATURE"
	ElementElectric Element = "ELECTRIC"
	ElementIce      Element = "ICE"
	ElementMetal    Element = "METAL"
	ElementDark     Element = "DARK"
	ElementLight    Element = "LIGHT"
	ElementWar      Element = "WAR"
	ElementPure     Element = "PURE"
	ElementLegend   Element = "LEGEND"
	ElementPrimal   Element = "PRIMAL"
	ElementWind     Element = "WIND"
	ElementBeauty   Element = "BEAUTY"
	ElementMagic    Element = "MAGIC"
	ElementChaos    Element = "CHAOS"
	ElementHappy    Element = "HAPPY"
	ElementDream    Element = "DREAM"
	ElementSoul     Element = "SOUL"
)

func ActiveElements() []Element {
	return []Element{
		ElementTerra, ElementFlame, ElementSea, ElementNature, ElementElectric,
		ElementIce, ElementMetal, ElementDark, ElementLight, ElementWar,
		ElementPure, ElementLegend, ElementPrimal, ElementWind,
	}
}

func AncientWorldElements() []Element {
	return []Element{
		ElementBeauty, ElementMagic, ElementChaos, ElementHappy, ElementDream, ElementSoul,
	}
}

func AllElements() []Element {
	return append(ActiveElements(), AncientWorldElements()...)
}

// ParseElement resolves a raw tag to a known element. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseElement(raw string) (Element, bool) {
	tag := normalizeElement(Element(raw))
	if slices.Contains(AllElements(), tag) {
		return tag, true
	}
	return "", false
}

func (e Element) IsAncientWorld() bool {
	switch e {
	case ElementBeauty, ElementMagic, ElementChaos, ElementHappy, ElementDream, ElementSoul:
		return true
	default:
		return false
	}
}

func normalizeElement(e Element) Element {
	return Element(strings.ToUpper(strings.TrimSpace(string(e))))
}

// strongAgainst and weakAgainst hold the full effectiveness relation. Every
// chart row and every multiplier lookup derives from these two maps.
var strongAgainst = map[Element][]Element{
	ElementTerra:    {ElementElectric, ElementDark},
	ElementFlame:    {ElementNature, ElementIce},
	ElementSea:      {ElementFlame, ElementWar},
	ElementNature:   {ElementSea, ElementLight},
	ElementElectric: {ElementSea, ElementMetal},
	ElementIce:      {ElementNature, ElementWar},
	ElementMetal:    {ElementTerra, ElementIce},
	ElementDark:     {ElementMetal, ElementLight},
	ElementLight:    {ElementElectric, ElementDark},
	ElementWar:      {ElementTerra, ElementFlame},
	ElementPure:     {ElementLegend},
	ElementLegend:   {ElementPrimal},
	ElementPrimal:   {ElementPure},
	ElementWind:     {ElementWind},
}

var weakAgainst = map[Element][]Element{
	ElementTerra:    {ElementMetal, ElementWar},
	ElementFlame:    {ElementSea, ElementWar},
	ElementSea:      {ElementNature, ElementElectric},
	ElementNature:   {ElementFlame, ElementIce},
	ElementElectric: {ElementTerra, ElementLight},
	ElementIce:      {ElementFlame, ElementMetal},
	ElementMetal:    {ElementElectric, ElementDark},
	ElementDark:     {ElementTerra},
	ElementLight:    {ElementNature},
	ElementWar:      {ElementSea, ElementIce},
	ElementPure:     {ElementPrimal},
	ElementLegend:   {ElementPure},
	ElementPrimal:   {ElementLegend},
}

var (
	doubleDamage  = decimal.NewFromInt(2)
	halfDamage    = decimal.RequireFromString("0.5")
	neutralDamage = decimal.NewFromInt(1)
)

// ElementalDamageMultiplier returns 2, 0.5 or 1 for an attack of one element
// against a defender of another. Both tags are normalized before lookup.
// Ancient world elements and unrecognized tags always yield 1.
func ElementalDamageMultiplier(attacking, defending Element) decimal.Decimal {
	attacker := normalizeElement(attacking)
	defender := normalizeElement(defending)
	if slices.Contains(strongAgainst[attacker], defender) {
		return doubleDamage
	}
	if slices.Contains(weakAgainst[attacker], defender) {
		return halfDamage
	}
	return neutralDamage
}
