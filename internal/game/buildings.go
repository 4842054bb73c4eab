package game

// BuildingKind classifies the buildings a city tile can host.
type BuildingKind string

const (
	BuildingItemShop     BuildingKind = "item_shop"
	BuildingFusionCenter BuildingKind = "fusion_center"
	BuildingBattleGym    BuildingKind = "battle_gym"
	BuildingDungeon      BuildingKind = "dungeon"
	BuildingDaycare      BuildingKind = "daycare"
)

func AllBuildingKinds() []BuildingKind {
	return []BuildingKind{
		BuildingItemShop, BuildingFusionCenter, BuildingBattleGym, BuildingDungeon, BuildingDaycare,
	}
}

// Building is a named structure with one or more floors. Kind-specific data
// (shop stock, gym owner, daycare roster) lives in optional fields rather
// than a subtype per kind.
type Building struct {
	Name   string
	Kind   BuildingKind
	Floors []*Floor

	ItemsSold []Item
	Owner     *Trainer
	Daycare   *Daycare
}

func NewItemShop(floors []*Floor, itemsSold []Item) *Building {
	return &Building{Name: "ITEM SHOP", Kind: BuildingItemShop, Floors: floors, ItemsSold: itemsSold}
}

func NewFusionCenter(floors []*Floor) *Building {
	return &Building{Name: "FUSION CENTER", Kind: BuildingFusionCenter, Floors: floors}
}

// NewBattleGym builds a gym whose owner defends it against challengers.
func NewBattleGym(floors []*Floor, owner *Trainer) *Building {
	return &Building{Name: "BATTLE GYM", Kind: BuildingBattleGym, Floors: floors, Owner: owner}
}

// NewDungeon builds a dungeon with a boss trainer on its deepest floor.
func NewDungeon(floors []*Floor, boss *Trainer) *Building {
	return &Building{Name: "DUNGEON", Kind: BuildingDungeon, Floors: floors, Owner: boss}
}

func NewDaycareBuilding(floors []*Floor) *Building {
	return &Building{Name: "DAYCARE", Kind: BuildingDaycare, Floors: floors, Daycare: NewDaycare()}
}

// Floor returns the floor at index, or nil when out of range.
func (b *Building) Floor(index int) *Floor {
	if b == nil || index < 0 || index >= len(b.Floors) {
		return nil
	}
	return b.Floors[index]
}

// MaxDaycareCapacity is how many creatures a daycare trains at once.
const MaxDaycareCapacity = 5

// Daycare holds creatures that train automatically while the trainer is
// elsewhere. Placement is unique by creature ID and capped.
type Daycare struct {
	roster *Roster[*LegendaryCreature]
}

func NewDaycare() *Daycare {
	return &Daycare{roster: NewBoundedRoster(creatureKey, MaxDaycareCapacity)}
}

// Place admits a creature for training. It fails when the daycare is full or
// the creature is already placed.
func (d *Daycare) Place(c *LegendaryCreature) bool {
	if c == nil {
		return false
	}
	return d.roster.Add(c)
}

// Retrieve takes a creature back, matching by ID.
func (d *Daycare) Retrieve(c *LegendaryCreature) bool {
	if c == nil {
		return false
	}
	return d.roster.Remove(c)
}

// Placed returns the creatures in training, in placement order.
func (d *Daycare) Placed() []*LegendaryCreature {
	return d.roster.Items()
}

func (d *Daycare) Len() int {
	return d.roster.Len()
}

func (d *Daycare) IsFull() bool {
	return d.roster.Len() >= MaxDaycareCapacity
}

// FloorTileKind classifies indoor tiles.
type FloorTileKind string

const (
	FloorTileNormal    FloorTileKind = "normal"
	FloorTileWild      FloorTileKind = "wild"
	FloorTileEntryExit FloorTileKind = "entry_exit"
	FloorTileStaircase FloorTileKind = "staircase"
)

func AllFloorTileKinds() []FloorTileKind {
	return []FloorTileKind{FloorTileNormal, FloorTileWild, FloorTileEntryExit, FloorTileStaircase}
}

// FloorTile is one cell of a building floor. Staircase tiles record which
// directions they connect; every indoor tile accepts characters.
type FloorTile struct {
	Kind            FloorTileKind
	CanGoUpstairs   bool
	CanGoDownstairs bool
	occupants       *Roster[Character]
}

func (t *FloorTile) AddCharacter(ch Character) bool {
	if ch == nil {
		return false
	}
	if t.occupants == nil {
		t.occupants = NewRoster(characterKey)
	}
	return t.occupants.Add(ch)
}

func (t *FloorTile) RemoveCharacter(ch Character) bool {
	if ch == nil || t.occupants == nil {
		return false
	}
	return t.occupants.Remove(ch)
}

func (t *FloorTile) Characters() []Character {
	if t.occupants == nil {
		return nil
	}
	return t.occupants.Items()
}

// Floor is a rectangular grid of indoor tiles stored row-major.
type Floor struct {
	Name   string
	Width  int
	Height int
	Tiles  []FloorTile
}

// NewFloor allocates a floor grid filled with the given tile kind.
func NewFloor(name string, width, height int, fill FloorTileKind) *Floor {
	tiles := make([]FloorTile, width*height)
	for i := range tiles {
		tiles[i].Kind = fill
	}
	return &Floor{Name: name, Width: width, Height: height, Tiles: tiles}
}

// TileAt returns the tile at (x, y), or nil when the coordinates fall
// outside the grid.
func (f *Floor) TileAt(x, y int) *FloorTile {
	if f == nil || x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return nil
	}
	return &f.Tiles[y*f.Width+x]
}
