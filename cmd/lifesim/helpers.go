package main

import (
	"fmt"
	"strings"

	"github.com/oakheart-games/lifesim/internal/format"
	"github.com/oakheart-games/lifesim/internal/game"
	"github.com/oakheart-games/lifesim/internal/parser"
)

func welcomeBanner() string {
	return "Welcome to the world of legendary creatures.\n" +
		"Elemental damage chart:"
}

// chartTable renders the element effectiveness chart in the given mode.
func chartTable(mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Header("ELEMENT", "DOUBLE DAMAGE AGAINST", "HALF DAMAGE AGAINST")
	for _, row := range game.ElementChartRows() {
		tb.Row(
			string(row.Attacker),
			format.JoinList(elementNames(row.DoubleDamage)),
			format.JoinList(elementNames(row.HalfDamage)),
		)
	}
	return tb.String()
}

func ancientWorldNote() string {
	return fmt.Sprintf(
		"Ancient world elements deal and receive neutral damage: %s.",
		strings.Join(elementNames(game.AncientWorldElements()), ", "),
	)
}

func elementNames(elements []game.Element) []string {
	names := make([]string, 0, len(elements))
	for _, e := range elements {
		names = append(names, string(e))
	}
	return names
}

// elementVocabulary backs did-you-mean suggestions for mistyped tags.
func elementVocabulary() *parser.Vocabulary {
	return parser.NewVocabulary(elementNames(game.AllElements())...)
}

// resolveElement parses raw into an element, or returns an error carrying
// up to three close suggestions.
func resolveElement(raw string) (game.Element, error) {
	if element, ok := game.ParseElement(raw); ok {
		return element, nil
	}
	suggestions := elementVocabulary().Suggest(raw, 3)
	if len(suggestions) > 0 {
		return "", fmt.Errorf("unknown element %q (did you mean %s?)", raw, strings.Join(suggestions, ", "))
	}
	return "", fmt.Errorf("unknown element %q", raw)
}
