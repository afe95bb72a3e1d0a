// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"lwtk.org/widget"
)

// iconData returns the IconVG source of ic. Check and radio icons
// depend on the checked state.
func iconData(ic widget.Icon, checked bool) ([]byte, bool) {
	switch ic {
	case widget.IconCheck:
		if checked {
			return icons.ToggleCheckBox, true
		}
		return icons.ToggleCheckBoxOutlineBlank, true
	case widget.IconRadio:
		if checked {
			return icons.ToggleRadioButtonChecked, true
		}
		return icons.ToggleRadioButtonUnchecked, true
	case widget.IconClose:
		return icons.NavigationClose, true
	case widget.IconMaximize:
		return icons.NavigationFullscreen, true
	case widget.IconMinimize:
		return icons.ContentRemove, true
	}
	return nil, false
}

type iconKey struct {
	src   *byte
	size  int
	color color.RGBA
}

// iconCache holds rasterized icons. Themes are shared between windows,
// so access is guarded.
type iconCache struct {
	mu   sync.Mutex
	imgs map[iconKey]*image.RGBA
}

func newIconCache() *iconCache {
	return &iconCache{imgs: make(map[iconKey]*image.RGBA)}
}

// image returns src rasterized to a square of side sz in color c.
func (ic *iconCache) image(src []byte, sz int, c color.RGBA) (*image.RGBA, error) {
	if sz <= 0 || len(src) == 0 {
		return image.NewRGBA(image.Rectangle{}), nil
	}
	k := iconKey{src: &src[0], size: sz, color: c}
	ic.mu.Lock()
	defer ic.mu.Unlock()
	if img, ok := ic.imgs[k]; ok {
		return img, nil
	}
	m, err := iconvg.DecodeMetadata(src)
	if err != nil {
		return nil, err
	}
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: sz, Y: int(float32(sz) * dy / dx)}})
	var r iconvg.Rasterizer
	r.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = premul(c)
	if err := iconvg.Decode(&r, src, &iconvg.DecodeOptions{Palette: &m.Palette}); err != nil {
		return nil, err
	}
	ic.imgs[k] = img
	return img, nil
}

// premul converts a straight alpha color to the premultiplied form
// iconvg palettes use.
func premul(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 0xff),
		G: uint8(uint32(c.G) * a / 0xff),
		B: uint8(uint32(c.B) * a / 0xff),
		A: c.A,
	}
}
