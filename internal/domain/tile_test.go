package domain

import "testing"

func TestTileCatalog(t *testing.T) {
	tests := []struct {
		kind        TileKind
		walkable    bool
		transparent bool
		lightBG     RGB
		darkBG      RGB
	}{
		{TileFloor, true, true, MakeRGB(200, 180, 50), MakeRGB(50, 50, 150)},
		{TileWall, false, false, MakeRGB(130, 110, 50), MakeRGB(0, 0, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tile := tt.kind.Type()
			if tile.Walkable != tt.walkable {
				t.Errorf("Walkable = %v, want %v", tile.Walkable, tt.walkable)
			}
			if tile.Transparent != tt.transparent {
				t.Errorf("Transparent = %v, want %v", tile.Transparent, tt.transparent)
			}
			if tile.Light.BG != tt.lightBG {
				t.Errorf("Light.BG = %s, want %s", tile.Light.BG.Hex(), tt.lightBG.Hex())
			}
			if tile.Dark.BG != tt.darkBG {
				t.Errorf("Dark.BG = %s, want %s", tile.Dark.BG.Hex(), tt.darkBG.Hex())
			}
		})
	}
}

func TestTileCatalog_IsImmutable(t *testing.T) {
	tile := TileFloor.Type()
	tile.Walkable = false

	if !TileFloor.Type().Walkable {
		t.Error("catalog entry must not change through a returned copy")
	}
}

func TestTileKind_UnknownIsWall(t *testing.T) {
	if TileKind(200).Type().Walkable {
		t.Error("unknown tile kinds must not be walkable")
	}
}
