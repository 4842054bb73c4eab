package game

import (
	"fmt"
	"testing"
)

func TestBuildingConstructors(t *testing.T) {
	owner := NewPlayerTrainer("GYM LEADER")
	boss := NewPlayerTrainer("DUNGEON KEEPER")
	floors := []*Floor{NewFloor("GROUND FLOOR", 3, 3, FloorTileNormal)}

	stock := []Item{NewItemFromSpec(ItemCatalog()[0]), NewItemFromSpec(ItemCatalog()[1])}
	shop := NewItemShop(floors, stock)
	if shop.Kind != BuildingItemShop || shop.Name != "ITEM SHOP" {
		t.Errorf("NewItemShop() = kind %q name %q", shop.Kind, shop.Name)
	}
	if got := len(shop.ItemsSold); got != 2 {
		t.Errorf("len(ItemsSold) = %d, want 2", got)
	}

	fusion := NewFusionCenter(floors)
	if fusion.Kind != BuildingFusionCenter || fusion.Name != "FUSION CENTER" {
		t.Errorf("NewFusionCenter() = kind %q name %q", fusion.Kind, fusion.Name)
	}

	gym := NewBattleGym(floors, owner)
	if gym.Kind != BuildingBattleGym || gym.Owner != owner {
		t.Errorf("NewBattleGym() = kind %q owner %v", gym.Kind, gym.Owner)
	}

	dungeon := NewDungeon(floors, boss)
	if dungeon.Kind != BuildingDungeon || dungeon.Owner != boss {
		t.Errorf("NewDungeon() = kind %q owner %v", dungeon.Kind, dungeon.Owner)
	}

	daycare := NewDaycareBuilding(floors)
	if daycare.Kind != BuildingDaycare || daycare.Daycare == nil {
		t.Errorf("NewDaycareBuilding() = kind %q daycare %v", daycare.Kind, daycare.Daycare)
	}
}

func TestBuildingFloorLookup(t *testing.T) {
	b := NewFusionCenter([]*Floor{
		NewFloor("GROUND FLOOR", 3, 3, FloorTileNormal),
		NewFloor("BASEMENT", 3, 3, FloorTileWild),
	})

	if got := b.Floor(0); got == nil || got.Name != "GROUND FLOOR" {
		t.Errorf("Floor(0) = %v, want GROUND FLOOR", got)
	}
	if got := b.Floor(2); got != nil {
		t.Errorf("Floor(2) = %v, want nil", got)
	}
	if got := b.Floor(-1); got != nil {
		t.Errorf("Floor(-1) = %v, want nil", got)
	}

	var nilBuilding *Building
	if nilBuilding.Floor(0) != nil {
		t.Error("Floor() on nil building != nil")
	}
}

func TestDaycareCapacity(t *testing.T) {
	d := NewDaycare()
	for i := 0; i < MaxDaycareCapacity; i++ {
		if !d.Place(testCreature(fmt.Sprintf("boarder-%d", i), ElementNature)) {
			t.Fatalf("Place() boarder %d = false, want true", i)
		}
	}
	if !d.IsFull() {
		t.Error("IsFull() = false at capacity, want true")
	}
	if d.Place(testCreature("overflow", ElementIce)) {
		t.Error("Place() beyond capacity = true, want false")
	}
	if got := d.Len(); got != MaxDaycareCapacity {
		t.Errorf("Len() = %d, want %d", got, MaxDaycareCapacity)
	}
}

func TestDaycarePlaceAndRetrieve(t *testing.T) {
	d := NewDaycare()
	c := testCreature("Boarder", ElementSea)

	if !d.Place(c) {
		t.Fatal("Place() = false, want true")
	}
	if d.Place(c) {
		t.Error("Place() same creature twice = true, want false")
	}
	if d.Place(nil) {
		t.Error("Place(nil) = true, want false")
	}

	if !d.Retrieve(c) {
		t.Error("Retrieve() = false, want true")
	}
	if d.Retrieve(c) {
		t.Error("Retrieve() twice = true, want false")
	}
	if got := len(d.Placed()); got != 0 {
		t.Errorf("len(Placed()) = %d, want 0", got)
	}
}

func TestFloorTileKinds(t *testing.T) {
	stairs := FloorTile{Kind: FloorTileStaircase, CanGoUpstairs: true}
	if !stairs.CanGoUpstairs || stairs.CanGoDownstairs {
		t.Error("staircase flags not preserved")
	}

	npc := NewNPC("Guard", nil, "No entry.")
	for _, kind := range AllFloorTileKinds() {
		tile := FloorTile{Kind: kind}
		if !tile.AddCharacter(npc) {
			t.Errorf("AddCharacter() on %q = false, want true", kind)
		}
		if !tile.RemoveCharacter(npc) {
			t.Errorf("RemoveCharacter() on %q = false, want true", kind)
		}
	}
}

func TestFloorTileAt(t *testing.T) {
	floor := NewFloor("GROUND FLOOR", 5, 2, FloorTileNormal)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "Origin", x: 0, y: 0, want: true},
		{name: "Far Corner", x: 4, y: 1, want: true},
		{name: "X Out Of Range", x: 5, y: 0, want: false},
		{name: "Y Out Of Range", x: 0, y: 2, want: false},
		{name: "Negative", x: -2, y: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := floor.TileAt(tt.x, tt.y)
			if (got != nil) != tt.want {
				t.Errorf("TileAt(%d, %d) = %v, want present=%v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	var nilFloor *Floor
	if nilFloor.TileAt(0, 0) != nil {
		t.Error("TileAt() on nil floor != nil")
	}
}
