package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/oakheart-games/lifesim/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateElementsDoc(),
		generateStartersDoc(),
		generateItemsDoc(),
		generateAwardsDoc(),
		generateMinigamesDoc(),
		generateTileKindsDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateElementsDoc() docFile {
	rows := game.ElementChartRows()

	var b strings.Builder
	b.WriteString("# Elements\n\n")
	b.WriteString("Source: `internal/game/elements.go` (`ElementChartRows`).\n\n")
	b.WriteString(fmt.Sprintf("Active elements: **%d**. Attacks by these elements deal double, half or neutral damage per the chart.\n\n", len(rows)))
	b.WriteString("| Element | Double Damage Against | Half Damage Against |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, row := range rows {
		b.WriteString("| ")
		b.WriteString(escape(string(row.Attacker)))
		b.WriteString(" | ")
		b.WriteString(escape(joinElements(row.DoubleDamage)))
		b.WriteString(" | ")
		b.WriteString(escape(joinElements(row.HalfDamage)))
		b.WriteString(" |\n")
	}

	ancient := game.AncientWorldElements()
	b.WriteString(fmt.Sprintf("\nAncient world elements (**%d**) always deal and receive neutral damage:\n\n", len(ancient)))
	b.WriteString("| Element |\n")
	b.WriteString("| --- |\n")
	for _, e := range ancient {
		b.WriteString("| ")
		b.WriteString(escape(string(e)))
		b.WriteString(" |\n")
	}

	return docFile{Name: "elements.md", Title: "Elements", Content: b.String()}
}

func generateStartersDoc() docFile {
	items := game.StarterCreatureCatalog()
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})

	var b strings.Builder
	b.WriteString("# Starter Creatures\n\n")
	b.WriteString("Source: `internal/game/creatures.go` (`StarterCreatureCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total starters: **%d**.\n\n", len(items)))
	b.WriteString("| Name | Element | Rating | Max HP | Max MP | Attack | Defense | Speed |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, c := range items {
		b.WriteString("| ")
		b.WriteString(escape(c.Name))
		b.WriteString(" | ")
		b.WriteString(escape(string(c.Element)))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(c.Rating))
		b.WriteString(" | ")
		b.WriteString(escape(c.MaxHP))
		b.WriteString(" | ")
		b.WriteString(escape(c.MaxMP))
		b.WriteString(" | ")
		b.WriteString(escape(c.AttackPower))
		b.WriteString(" | ")
		b.WriteString(escape(c.Defense))
		b.WriteString(" | ")
		b.WriteString(escape(c.AttackSpeed))
		b.WriteString(" |\n")
	}

	return docFile{Name: "starters.md", Title: "Starter Creatures", Content: b.String()}
}

func generateItemsDoc() docFile {
	items := game.ItemCatalog()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Kind != items[j].Kind {
			return items[i].Kind < items[j].Kind
		}
		return items[i].Name < items[j].Name
	})

	var b strings.Builder
	b.WriteString("# Items\n\n")
	b.WriteString("Source: `internal/game/items.go` (`ItemCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total items: **%d**.\n\n", len(items)))
	b.WriteString("| Name | Kind | Price | Trainer Item | Creature Item | Description |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, spec := range items {
		item := game.NewItemFromSpec(spec)
		b.WriteString("| ")
		b.WriteString(escape(item.Name))
		b.WriteString(" | ")
		b.WriteString(escape(string(item.Kind)))
		b.WriteString(" | ")
		b.WriteString("$" + item.DollarPrice.StringFixed(2))
		b.WriteString(" | ")
		b.WriteString(yesNo(item.Kind.ForTrainer()))
		b.WriteString(" | ")
		b.WriteString(yesNo(item.Kind.ForCreature()))
		b.WriteString(" | ")
		b.WriteString(escape(item.Description))
		b.WriteString(" |\n")
	}

	return docFile{Name: "items.md", Title: "Items", Content: b.String()}
}

func generateAwardsDoc() docFile {
	items := game.AwardCatalog()
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})

	var b strings.Builder
	b.WriteString("# Awards\n\n")
	b.WriteString("Source: `internal/game/awards.go` (`AwardCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total awards: **%d**.\n\n", len(items)))
	b.WriteString("| Name | Description | Stat | Minimum |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, a := range items {
		b.WriteString("| ")
		b.WriteString(escape(a.Name))
		b.WriteString(" | ")
		b.WriteString(escape(a.Description))
		b.WriteString(" | ")
		b.WriteString(escape(a.Condition.StatKey))
		b.WriteString(" | ")
		b.WriteString(escape(a.Condition.MinValue.String()))
		b.WriteString(" |\n")
	}

	return docFile{Name: "awards.md", Title: "Awards", Content: b.String()}
}

func generateMinigamesDoc() docFile {
	names := game.MinigameNames()

	var b strings.Builder
	b.WriteString("# Minigames\n\n")
	b.WriteString("Source: `internal/game/minigames.go` (`MinigameNames`).\n\n")
	b.WriteString(fmt.Sprintf("Total minigames: **%d**. Each can be played once per day and unlocks again after midnight.\n\n", len(names)))
	b.WriteString("| Minigame |\n")
	b.WriteString("| --- |\n")
	for _, name := range names {
		b.WriteString("| ")
		b.WriteString(escape(name))
		b.WriteString(" |\n")
	}

	return docFile{Name: "minigames.md", Title: "Minigames", Content: b.String()}
}

func generateTileKindsDoc() docFile {
	kinds := game.AllCityTileKinds()

	var b strings.Builder
	b.WriteString("# City Tile Kinds\n\n")
	b.WriteString("Source: `internal/game/world.go` (`AllCityTileKinds`).\n\n")
	b.WriteString("| Kind | Walkable | Wild Encounters |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, kind := range kinds {
		b.WriteString("| ")
		b.WriteString(escape(string(kind)))
		b.WriteString(" | ")
		b.WriteString(yesNo(kind.Walkable()))
		b.WriteString(" | ")
		b.WriteString(yesNo(kind.WildEncounters()))
		b.WriteString(" |\n")
	}

	b.WriteString("\nIndoor floor tiles:\n\n")
	b.WriteString("| Kind |\n")
	b.WriteString("| --- |\n")
	for _, kind := range game.AllFloorTileKinds() {
		b.WriteString("| ")
		b.WriteString(escape(string(kind)))
		b.WriteString(" |\n")
	}

	return docFile{Name: "tile-kinds.md", Title: "City Tile Kinds", Content: b.String()}
}

func joinElements(elements []game.Element) string {
	if len(elements) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(elements))
	for _, e := range elements {
		parts = append(parts, string(e))
	}
	return strings.Join(parts, ", ")
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
