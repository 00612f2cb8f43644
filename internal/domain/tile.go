package domain

// Graphic - то, как клетка выглядит на экране: символ + цвет символа + фон.
type Graphic struct {
	Glyph Glyph `json:"glyph"`
	BG    RGB   `json:"bg"`
}

// Char и FG - короткие пути к полям Glyph.
func (g Graphic) Char() byte { return g.Glyph.Char() }
func (g Graphic) FG() RGB    { return g.Glyph.Color() }

// TileType - неизменяемые свойства типа клетки.
type TileType struct {
	Walkable    bool    `json:"walkable"`    // можно ли пройти
	Transparent bool    `json:"transparent"` // пропускает ли взгляд
	Dark        Graphic `json:"dark"`        // клетка вне поля зрения
	Light       Graphic `json:"light"`       // клетка в поле зрения
}

// TileKind - ссылка на запись каталога. Карта хранит только её.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Shroud - клетка, которую ещё ни разу не видели.
var Shroud = Graphic{Glyph: MakeGlyph(MakeRGB(255, 255, 255), ' '), BG: MakeRGB(0, 0, 0)}

// --- КАТАЛОГ ---

// Каталог неэкспортируемый: наружу записи отдаются только по значению,
// поэтому изменить их после инициализации нельзя.
var tileCatalog = [...]TileType{
	TileWall: {
		Walkable:    false,
		Transparent: false,
		Dark:        Graphic{Glyph: MakeGlyph(MakeRGB(255, 255, 255), ' '), BG: MakeRGB(0, 0, 100)},
		Light:       Graphic{Glyph: MakeGlyph(MakeRGB(255, 255, 255), ' '), BG: MakeRGB(130, 110, 50)},
	},
	TileFloor: {
		Walkable:    true,
		Transparent: true,
		Dark:        Graphic{Glyph: MakeGlyph(MakeRGB(255, 255, 255), ' '), BG: MakeRGB(50, 50, 150)},
		Light:       Graphic{Glyph: MakeGlyph(MakeRGB(255, 255, 255), ' '), BG: MakeRGB(200, 180, 50)},
	},
}

var tileKindToString = map[TileKind]string{
	TileWall:  "wall",
	TileFloor: "floor",
}

// Type возвращает запись каталога. Неизвестный вид считается стеной.
func (k TileKind) Type() TileType {
	if int(k) >= len(tileCatalog) {
		return tileCatalog[TileWall]
	}
	return tileCatalog[k]
}

func (k TileKind) String() string {
	if val, ok := tileKindToString[k]; ok {
		return val
	}
	return "unknown"
}
