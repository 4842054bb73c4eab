package game

import "testing"

func TestCityTileKindWalkable(t *testing.T) {
	tests := []struct {
		kind     CityTileKind
		walkable bool
		wild     bool
	}{
		{kind: TileWall, walkable: false, wild: false},
		{kind: TileWater, walkable: false, wild: false},
		{kind: TileGrass, walkable: true, wild: true},
		{kind: TilePavement, walkable: true, wild: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Walkable(); got != tt.walkable {
				t.Errorf("Walkable() = %v, want %v", got, tt.walkable)
			}
			if got := tt.kind.WildEncounters(); got != tt.wild {
				t.Errorf("WildEncounters() = %v, want %v", got, tt.wild)
			}
		})
	}
}

func TestCityTileOccupants(t *testing.T) {
	npc := NewNPC("Dawn", nil, "Welcome to the city.")

	tests := []struct {
		name    string
		kind    CityTileKind
		wantAdd bool
	}{
		{name: "Grass Accepts", kind: TileGrass, wantAdd: true},
		{name: "Pavement Accepts", kind: TilePavement, wantAdd: true},
		{name: "Wall Rejects", kind: TileWall, wantAdd: false},
		{name: "Water Rejects", kind: TileWater, wantAdd: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := CityTile{Kind: tt.kind}
			if got := tile.AddCharacter(npc); got != tt.wantAdd {
				t.Fatalf("AddCharacter() = %v, want %v", got, tt.wantAdd)
			}
			if got := len(tile.Characters()); got != boolToInt(tt.wantAdd) {
				t.Errorf("len(Characters()) = %d, want %d", got, boolToInt(tt.wantAdd))
			}
			if tt.wantAdd {
				if !tile.RemoveCharacter(npc) {
					t.Error("RemoveCharacter() = false, want true")
				}
				if tile.RemoveCharacter(npc) {
					t.Error("RemoveCharacter() twice = true, want false")
				}
			}
		})
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestCityTileRejectsDuplicateOccupant(t *testing.T) {
	tile := CityTile{Kind: TileGrass}
	npc := NewNPC("Dawn", nil, "Hello again.")

	if !tile.AddCharacter(npc) {
		t.Fatal("AddCharacter() = false, want true")
	}
	if tile.AddCharacter(npc) {
		t.Error("AddCharacter() same character twice = true, want false")
	}
	if tile.AddCharacter(nil) {
		t.Error("AddCharacter(nil) = true, want false")
	}
}

func TestCityTileAt(t *testing.T) {
	city := NewCity("Oakheart", 4, 3, TileGrass)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "Origin", x: 0, y: 0, want: true},
		{name: "Far Corner", x: 3, y: 2, want: true},
		{name: "X Out Of Range", x: 4, y: 0, want: false},
		{name: "Y Out Of Range", x: 0, y: 3, want: false},
		{name: "Negative X", x: -1, y: 1, want: false},
		{name: "Negative Y", x: 1, y: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := city.TileAt(tt.x, tt.y)
			if (got != nil) != tt.want {
				t.Errorf("TileAt(%d, %d) = %v, want present=%v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	var nilCity *City
	if nilCity.TileAt(0, 0) != nil {
		t.Error("TileAt() on nil city != nil")
	}
}

func TestCityTileAtIsAddressable(t *testing.T) {
	city := NewCity("Oakheart", 2, 2, TilePavement)
	npc := NewNPC("Dawn", nil, "Hi.")

	tile := city.TileAt(1, 1)
	if tile == nil {
		t.Fatal("TileAt(1, 1) = nil, want tile")
	}
	tile.AddCharacter(npc)

	again := city.TileAt(1, 1)
	if got := len(again.Characters()); got != 1 {
		t.Errorf("occupant did not persist on the city grid, len = %d, want 1", got)
	}
}

func TestPlanetCity(t *testing.T) {
	planet := &Planet{
		Name: "Veloria",
		Cities: []*City{
			NewCity("Oakheart", 2, 2, TileGrass),
			NewCity("Tidewall", 3, 3, TilePavement),
		},
	}

	if got := planet.City(1); got == nil || got.Name != "Tidewall" {
		t.Errorf("City(1) = %v, want Tidewall", got)
	}
	if got := planet.City(2); got != nil {
		t.Errorf("City(2) = %v, want nil", got)
	}
	if got := planet.City(-1); got != nil {
		t.Errorf("City(-1) = %v, want nil", got)
	}
}
