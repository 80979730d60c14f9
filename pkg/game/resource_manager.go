package game

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/xmasreel/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ResourceManager is responsible for centralized management of game resources.
// It owns the font source and caches text faces per size and the rendered
// symbol tiles per asset ref, so each resource is built only once.
//
// Symbol tiles are drawn at runtime (a kanji numeral on a white card) and
// addressed by the same refs a file-based asset set would use
// ("assets/symbols/01.png"), keeping the reel code independent of how the
// images are produced.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop,
// no synchronization is needed.
type ResourceManager struct {
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
	symbolCache   map[string]*ebiten.Image
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[float64]*text.GoTextFace),
		symbolCache:   make(map[string]*ebiten.Image),
	}
}

// LoadDefaultFont loads the bundled M+ 1p font (covers kana and the kanji numerals).
func (rm *ResourceManager) LoadDefaultFont() error {
	return rm.LoadFontSource(fonts.MPlus1pRegular_ttf)
}

// LoadFontSource parses TrueType/OpenType data and makes it the face source
// for every subsequent GetFont call. Cached faces are dropped.
func (rm *ResourceManager) LoadFontSource(data []byte) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create font source: %w", err)
	}

	rm.fontSource = source
	rm.fontFaceCache = make(map[float64]*text.GoTextFace)
	rm.symbolCache = make(map[string]*ebiten.Image)
	return nil
}

// GetFont returns a text face of the given size, creating it on first use.
// Returns nil if no font source has been loaded.
func (rm *ResourceManager) GetFont(size float64) *text.GoTextFace {
	if rm.fontSource == nil {
		return nil
	}

	if face, exists := rm.fontFaceCache[size]; exists {
		return face
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face
}

// SymbolImage returns the tile for a symbol asset ref, rendering it on first use.
// An unparsable ref renders as symbol 1, matching the reel's fallback.
func (rm *ResourceManager) SymbolImage(ref string) *ebiten.Image {
	if img, exists := rm.symbolCache[ref]; exists {
		return img
	}

	index, err := config.ParseSymbolIndex(ref)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v, rendering as symbol 1", err)
		index = 1
	}

	img := rm.renderSymbolTile(index)
	rm.symbolCache[ref] = img
	return img
}

// renderSymbolTile 绘制一张符号图块：白底 + 底部分隔线 + 居中的汉字数字
func (rm *ResourceManager) renderSymbolTile(index int) *ebiten.Image {
	w, h := int(config.SymbolImageWidth), int(config.SymbolImageHeight)
	img := ebiten.NewImage(w, h)
	img.Fill(config.SymbolTileColor)

	vector.DrawFilledRect(img, 0, float32(h-2), float32(w), 2, config.SymbolSeparatorColor, false)

	face := rm.GetFont(config.SymbolFontSize)
	if face == nil {
		return img
	}

	var textColor color.Color = config.SymbolTextColor
	if index == 1 {
		textColor = config.SymbolWinColor
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(w)/2, float64(h)/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(img, ToKanjiNumeral(index), face, op)

	return img
}
