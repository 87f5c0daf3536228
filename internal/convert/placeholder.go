package convert

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	placeholderWidth  = 800
	placeholderHeight = 1000
)

// placeholderImage renders a white page with the given lines of text
// centered vertically around the middle of the page. It is used when a
// document cannot be rasterized so the extraction pipeline can still run
// end to end.
func placeholderImage(lines ...string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 8
	y := placeholderHeight/2 - lineHeight*len(lines)/2

	for i, line := range lines {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.Black),
			Face: face,
		}
		width := d.MeasureString(line).Ceil()
		d.Dot = fixed.P((placeholderWidth-width)/2, y+i*lineHeight)
		d.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding placeholder png: %w", err)
	}
	return buf.Bytes(), nil
}
