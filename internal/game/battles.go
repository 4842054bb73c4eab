package game

import (
	"slices"
	"strings"
)

// BattleAction is a choice a battle participant can make on their turn.
type BattleAction string

const (
	ActionNormalAttack BattleAction = "NORMAL ATTACK"
	ActionNormalHeal   BattleAction = "NORMAL HEAL"
	ActionUseSkill     BattleAction = "USE SKILL"
)

func AllBattleActions() []BattleAction {
	return []BattleAction{ActionNormalAttack, ActionNormalHeal, ActionUseSkill}
}

// ParseBattleAction maps a raw name to a battle action. Unknown names fall
// back to the normal attack, the default choice on every battle menu.
func ParseBattleAction(raw string) BattleAction {
	tag := BattleAction(strings.ToUpper(strings.TrimSpace(raw)))
	if slices.Contains(AllBattleActions(), tag) {
		return tag
	}
	return ActionNormalAttack
}

// Battle is the base record for every battle kind: at least one trainer is
// always involved.
type Battle struct {
	Trainer1 *Trainer
}

// TrainerBattle is a scripted battle against another trainer.
type TrainerBattle struct {
	Battle
	Trainer2 *Trainer
}

func NewTrainerBattle(t1, t2 *Trainer) *TrainerBattle {
	return &TrainerBattle{Battle: Battle{Trainer1: t1}, Trainer2: t2}
}

// PVPBattle is a battle between two player trainers.
type PVPBattle struct {
	Battle
	Trainer2 *Trainer
}

func NewPVPBattle(t1, t2 *Trainer) *PVPBattle {
	return &PVPBattle{Battle: Battle{Trainer1: t1}, Trainer2: t2}
}

// WildBattle is a battle against a wild legendary creature.
type WildBattle struct {
	Battle
	WildCreature *LegendaryCreature
}

func NewWildBattle(t *Trainer, wild *LegendaryCreature) *WildBattle {
	return &WildBattle{Battle: Battle{Trainer1: t}, WildCreature: wild}
}
