package game

// AdventureModeLocation addresses a position in the world down to the tile a
// character stands on. FloorIndex is negative while the character is
// outdoors; the floor tile coordinates only apply inside a building.
type AdventureModeLocation struct {
	PlanetName string `json:"planet_name"`
	CityIndex  int    `json:"city_index"`
	CityTileX  int    `json:"city_tile_x"`
	CityTileY  int    `json:"city_tile_y"`
	FloorIndex int    `json:"floor_index"`
	FloorTileX int    `json:"floor_tile_x"`
	FloorTileY int    `json:"floor_tile_y"`
}

// OutdoorLocation addresses a city tile with no building floor.
func OutdoorLocation(planet string, cityIndex, x, y int) AdventureModeLocation {
	return AdventureModeLocation{
		PlanetName: planet,
		CityIndex:  cityIndex,
		CityTileX:  x,
		CityTileY:  y,
		FloorIndex: -1,
	}
}

// Indoors reports whether the location points inside a building.
func (loc AdventureModeLocation) Indoors() bool {
	return loc.FloorIndex >= 0
}

// CityIn resolves the location's city on the given planet, or nil when the
// planet does not match or the index is out of range.
func (loc AdventureModeLocation) CityIn(p *Planet) *City {
	if p == nil || p.Name != loc.PlanetName {
		return nil
	}
	return p.City(loc.CityIndex)
}

// CityTileIn resolves the location's outdoor tile, or nil when any step of
// the lookup fails.
func (loc AdventureModeLocation) CityTileIn(p *Planet) *CityTile {
	city := loc.CityIn(p)
	if city == nil {
		return nil
	}
	return city.TileAt(loc.CityTileX, loc.CityTileY)
}

// FloorTileIn resolves the location's indoor tile through the building on
// its city tile, or nil when the location is outdoors or any step fails.
func (loc AdventureModeLocation) FloorTileIn(p *Planet) *FloorTile {
	if !loc.Indoors() {
		return nil
	}
	tile := loc.CityTileIn(p)
	if tile == nil || tile.Building == nil {
		return nil
	}
	floor := tile.Building.Floor(loc.FloorIndex)
	if floor == nil {
		return nil
	}
	return floor.TileAt(loc.FloorTileX, loc.FloorTileY)
}
