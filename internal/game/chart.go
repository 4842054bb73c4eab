package game

// ElementChartRow is one printable row of the effectiveness chart.
type ElementChartRow struct {
	Attacker     Element
	DoubleDamage []Element
	HalfDamage   []Element
}

// ElementChartRows derives the chart from the same relation the multiplier
// lookup consults, so the printed table can never drift from battle behavior.
// Rows follow the canonical attacker order.
func ElementChartRows() []ElementChartRow {
	active := ActiveElements()
	rows := make([]ElementChartRow, 0, len(active))
	for _, attacker := range active {
		rows = append(rows, ElementChartRow{
			Attacker:     attacker,
			DoubleDamage: append([]Element(nil), strongAgainst[attacker]...),
			HalfDamage:   append([]Element(nil), weakAgainst[attacker]...),
		})
	}
	return rows
}
