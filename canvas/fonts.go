package canvas

import (
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Font selects a typeface by family name and a size in pixels.
type Font struct {
	Family string
	Size   int
}

// DefaultFont is used by items whose Font has no size.
var DefaultFont = Font{Family: "Helvetica", Size: 13}

type faceKey struct {
	variant string
	size    int
}

var fonts = struct {
	sync.Mutex
	sources map[string]*text.FontSource
	faces   map[faceKey]text.Face
}{
	sources: make(map[string]*text.FontSource),
	faces:   make(map[faceKey]text.Face),
}

var fontData = map[string][]byte{
	"regular": goregular.TTF,
	"bold":    gobold.TTF,
	"italic":  goitalic.TTF,
	"mono":    gomono.TTF,
}

var monoFamilies = map[string]bool{
	"courier":     true,
	"courier new": true,
	"mono":        true,
	"monospace":   true,
	"fixed":       true,
	"consolas":    true,
	"go mono":     true,
}

// variantOf maps a family name onto one of the bundled Go fonts. Unknown
// families fall back to the proportional regular face.
func variantOf(family string) string {
	f := strings.ToLower(strings.TrimSpace(family))
	switch {
	case monoFamilies[f]:
		return "mono"
	case strings.Contains(f, "bold"):
		return "bold"
	case strings.Contains(f, "italic"):
		return "italic"
	}
	return "regular"
}

// Face returns the gg text face for f. Faces are cached per variant and size.
func Face(f Font) (text.Face, error) {
	if f.Size <= 0 {
		f.Size = DefaultFont.Size
	}
	key := faceKey{variant: variantOf(f.Family), size: f.Size}

	fonts.Lock()
	defer fonts.Unlock()
	if face, ok := fonts.faces[key]; ok {
		return face, nil
	}
	src, ok := fonts.sources[key.variant]
	if !ok {
		var err error
		src, err = text.NewFontSource(fontData[key.variant])
		if err != nil {
			return nil, err
		}
		fonts.sources[key.variant] = src
	}
	face := src.Face(float64(key.size))
	fonts.faces[key] = face
	return face, nil
}

// MeasureText returns the advance width and line height of s in font f,
// rounded up to whole pixels.
func MeasureText(f Font, s string) (width, height int) {
	face, err := Face(f)
	if err != nil {
		size := f.Size
		if size <= 0 {
			size = DefaultFont.Size
		}
		return int(math.Ceil(0.6 * float64(size*utf8.RuneCountInString(s)))), int(math.Ceil(1.2 * float64(size)))
	}
	w, _ := text.Measure(s, face)
	return int(math.Ceil(w)), int(math.Ceil(face.Metrics().LineHeight()))
}

// ascent returns the baseline offset from the top of a line in font f.
func ascent(face text.Face) float64 {
	return face.Metrics().Ascent
}
