package domain

import (
	"fmt"
	"strings"
)

// RGB - цвет в формате 0xRRGGBB (старший байт не используется).
type RGB uint32

// Константы для битовых операций с RGB и Glyph
const (
	bitsChar  = 8  // Символ - 8 бит (0-255)
	bitsColor = 24 // Цвет - 24 бита (RGB)

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// MakeRGB собирает цвет из компонент.
func MakeRGB(r, g, b uint8) RGB {
	return RGB(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c RGB) R() uint8 { return uint8(c >> 16) }
func (c RGB) G() uint8 { return uint8(c >> 8) }
func (c RGB) B() uint8 { return uint8(c) }

// Hex возвращает "#RRGGBB" для клиента.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&maskColor)
}

// ParseRGB разбирает "#RRGGBB" (решетка необязательна).
func ParseRGB(s string) (RGB, error) {
	var v uint32
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	if _, err := fmt.Sscanf(s, "%06x", &v); err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB(v), nil
}

// MarshalText позволяет хранить цвета в YAML/JSON как "#RRGGBB".
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *RGB) UnmarshalText(text []byte) error {
	v, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Glyph представляет упакованное представление цветного символа.
// Использует 32 бита (uint32) для хранения в формате:
//
//	[0:8] - символ (8 бит = 1 байт) - маска 0xFF
//	[8:32] - RGB-цвет (24 бита = 3 байта) - маска 0xFFFFFF
type Glyph uint32

// MakeGlyph создает новый Glyph из цвета и ASCII символа.
//
// Пример:
//
//	// Оранжевая буква 'A'
//	glyph := MakeGlyph(0xFFA500, 'A') // 0xFFA50041
func MakeGlyph(color RGB, char byte) Glyph {
	return Glyph((uint32(color)&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color извлекает цвет переднего плана.
func (g Glyph) Color() RGB {
	return RGB(uint32(g>>shiftColor) & maskColor)
}

// Char извлекает символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// String возвращает человеко-читаемое представление Glyph.
// Формат: "Glyph{char='A', color=#FFA500}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Для непечатаемых символов показываем hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.Color().Hex())
}
