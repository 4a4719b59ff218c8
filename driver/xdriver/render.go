package xdriver

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/jmigpin/nodedrag/ui"
	"github.com/jmigpin/nodedrag/util/uiutil/event"
)

type Palette struct {
	Bg        color.Color
	Container color.Color
	Node      color.Color
	Active    color.Color
	Border    color.Color
}

var DefaultPalette = Palette{
	Bg:        color.RGBA{0x22, 0x22, 0x22, 0xff},
	Container: color.RGBA{0x33, 0x33, 0x3a, 0xff},
	Node:      color.RGBA{0x4a, 0x6f, 0xa5, 0xff},
	Active:    color.RGBA{0xe0, 0x9f, 0x3e, 0xff},
	Border:    color.RGBA{0x11, 0x11, 0x11, 0xff},
}

// Paints the document elements in paint order. Elements with children are
// painted as containers.
func Render(doc *ui.Document, size image.Point, pal *Palette, isActive func(id string) bool) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	fill(img, img.Bounds(), pal.Bg)
	for _, e := range doc.Elements() {
		r, ok := imageRect(e.BoundingBox())
		if !ok {
			continue
		}
		c := pal.Node
		switch {
		case isActive != nil && isActive(e.Id):
			c = pal.Active
		case len(e.Children()) > 0:
			c = pal.Container
		}
		fill(img, r, pal.Border)
		fill(img, r.Inset(1), c)
	}
	return img
}

func imageRect(r event.Rect) (image.Rectangle, bool) {
	if event.IsNaN(r.Min) || event.IsNaN(r.Max) {
		return image.Rectangle{}, false
	}
	return image.Rect(
		int(math.Round(r.Min[0])), int(math.Round(r.Min[1])),
		int(math.Round(r.Max[0])), int(math.Round(r.Max[1])),
	), true
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}
