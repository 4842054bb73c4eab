package game

import "github.com/shopspring/decimal"

// EffectiveResistance applies an attacker's accuracy against a defender's
// resistance. The result is resistance minus accuracy, floored at the
// minimum resistance: a defender keeps a 15% residual no matter how accurate
// the attacker is.
func EffectiveResistance(accuracy, resistance decimal.Decimal) decimal.Decimal {
	diff := resistance.Sub(accuracy)
	if diff.LessThanOrEqual(MinResistance) {
		return MinResistance
	}
	return diff
}

// AttackOutcome carries the per-attack numbers battle resolution needs: the
// elemental multiplier applied to damage and the defender's post-accuracy
// resistance.
type AttackOutcome struct {
	Multiplier          decimal.Decimal
	EffectiveResistance decimal.Decimal
}

// ResolveAttack computes the outcome of one attack action between two
// creatures.
func ResolveAttack(attacker, defender *LegendaryCreature) AttackOutcome {
	return AttackOutcome{
		Multiplier:          ElementalDamageMultiplier(attacker.Element, defender.Element),
		EffectiveResistance: EffectiveResistance(attacker.Accuracy, defender.Resistance),
	}
}
