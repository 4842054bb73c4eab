package game

// CityTileKind classifies outdoor tiles. Walls and water block characters;
// grass additionally hosts wild creature encounters.
type CityTileKind string

const (
	TileWall     CityTileKind = "wall"
	TileWater    CityTileKind = "water"
	TileGrass    CityTileKind = "grass"
	TilePavement CityTileKind = "pavement"
)

func AllCityTileKinds() []CityTileKind {
	return []CityTileKind{TileWall, TileWater, TileGrass, TilePavement}
}

// Walkable reports whether characters can stand on this kind of tile.
func (k CityTileKind) Walkable() bool {
	switch k {
	case TileGrass, TilePavement:
		return true
	default:
		return false
	}
}

// WildEncounters reports whether wild legendary creatures appear here.
func (k CityTileKind) WildEncounters() bool {
	return k == TileGrass
}

// Portal teleports a character to another location when stepped on.
type Portal struct {
	To AdventureModeLocation
}

// CityTile is one cell of a city grid. A tile may carry a building entrance
// or a portal, and tracks the characters standing on it.
type CityTile struct {
	Kind      CityTileKind
	Building  *Building
	Portal    *Portal
	occupants *Roster[Character]
}

// AddCharacter places a character on the tile. Wall and water tiles reject
// all characters; a character already on the tile is rejected by ID.
func (t *CityTile) AddCharacter(ch Character) bool {
	if ch == nil || !t.Kind.Walkable() {
		return false
	}
	if t.occupants == nil {
		t.occupants = NewRoster(characterKey)
	}
	return t.occupants.Add(ch)
}

func (t *CityTile) RemoveCharacter(ch Character) bool {
	if ch == nil || t.occupants == nil {
		return false
	}
	return t.occupants.Remove(ch)
}

// Characters returns who is standing on the tile, in arrival order.
func (t *CityTile) Characters() []Character {
	if t.occupants == nil {
		return nil
	}
	return t.occupants.Items()
}

// City is a rectangular grid of tiles stored row-major.
type City struct {
	Name   string
	Width  int
	Height int
	Tiles  []CityTile
}

// NewCity allocates a city grid filled with the given tile kind.
func NewCity(name string, width, height int, fill CityTileKind) *City {
	tiles := make([]CityTile, width*height)
	for i := range tiles {
		tiles[i].Kind = fill
	}
	return &City{Name: name, Width: width, Height: height, Tiles: tiles}
}

// TileAt returns the tile at (x, y), or nil when the coordinates fall
// outside the grid.
func (c *City) TileAt(x, y int) *CityTile {
	if c == nil || x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return nil
	}
	return &c.Tiles[y*c.Width+x]
}

// Planet is the top of the world tree: an ordered list of cities.
type Planet struct {
	Name   string
	Cities []*City
}

// City returns the city at index, or nil when out of range.
func (p *Planet) City(index int) *City {
	if p == nil || index < 0 || index >= len(p.Cities) {
		return nil
	}
	return p.Cities[index]
}
