// Package canvasrenderer rasterises slides to PNG via
// github.com/tdewolff/canvas. It also implements layout.Measurer, so
// the same font faces that draw the text are the ones that size it
// during layout.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"math"
	"os"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/WalrusGumboot/folium/dsl"
	"github.com/WalrusGumboot/folium/layout"
	"github.com/WalrusGumboot/folium/renderer"
)

const debugStrokeWidth = 2.0

// Options configures the canvas renderer.
type Options struct {
	// FontBytes, when set, is a TTF/OTF blob used for all text.
	FontBytes []byte

	// FontPath names a font file to load when FontBytes is empty.
	// When both are empty a system sans-serif font is used.
	FontPath string

	// Rects draws a red outline around every layout box, for
	// debugging where the layout pass put things.
	Rects bool
}

// Renderer draws one PNG per slide. Canvas units are pixels and output
// is rasterised at one dot per unit, so a 1920x1080 slide becomes a
// 1920x1080 image.
type Renderer struct {
	opts   Options
	family *canvas.FontFamily

	faceMu sync.Mutex
	faces  map[float64]*canvas.FontFace
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// NewRenderer loads the configured font and returns a renderer. The
// font is loaded eagerly so that a missing font fails here, before any
// layout work depends on Measure.
func NewRenderer(opts Options) (*Renderer, error) {
	family := canvas.NewFontFamily("folium")
	switch {
	case len(opts.FontBytes) > 0:
		if err := family.LoadFont(opts.FontBytes, 0, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
	case opts.FontPath != "":
		data, err := os.ReadFile(opts.FontPath)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", opts.FontPath, err)
		}
		if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("load font %s: %w", opts.FontPath, err)
		}
	default:
		if err := family.LoadSystemFont("sans-serif", canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("load system font: %w", err)
		}
	}
	return &Renderer{
		opts:   opts,
		family: family,
		faces:  map[float64]*canvas.FontFace{},
	}, nil
}

// Measure implements layout.Measurer using the loaded font face.
func (r *Renderer) Measure(text string, size float64) (int, int) {
	face := r.face(size)
	w := face.TextWidth(text)
	h := face.Metrics().LineHeight
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// Render draws every slide and returns the encoded PNGs, named 1.png
// upward in deck order.
func (r *Renderer) Render(res *layout.Result) ([]renderer.Output, error) {
	if res == nil || len(res.Slides) == 0 {
		return nil, fmt.Errorf("nothing to render")
	}

	outputs := make([]renderer.Output, 0, len(res.Slides))
	for i, slide := range res.Slides {
		data, err := r.renderSlide(slide)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		outputs = append(outputs, renderer.Output{
			Name: fmt.Sprintf("%d.png", i+1),
			Data: data,
		})
	}
	return outputs, nil
}

func (r *Renderer) renderSlide(slide *layout.SlideLayout) ([]byte, error) {
	c := canvas.New(float64(slide.Width), float64(slide.Height))
	ctx := canvas.NewContext(c)
	// Layout coordinates grow downward from the top left.
	ctx.SetCoordSystem(canvas.CartesianIV)

	bg := dsl.Colour{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	if slide.Background != nil {
		bg = *slide.Background
	}
	ctx.SetFillColor(rgba(bg))
	ctx.DrawPath(0, 0, canvas.Rectangle(float64(slide.Width), float64(slide.Height)))

	r.drawBox(ctx, slide.Root, 0, 0)

	img := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawBox(ctx *canvas.Context, box *layout.Box, ox, oy float64) {
	if box == nil {
		return
	}
	x := ox + float64(box.X)
	y := oy + float64(box.Y)

	if box.Kind == dsl.KindText && box.Text != "" {
		fill := dsl.Colour{A: 0xFF}
		if box.TextFill != nil {
			fill = *box.TextFill
		}
		face := r.family.Face(box.TextSize, rgba(fill), canvas.FontRegular, canvas.FontNormal)
		line := canvas.NewTextLine(face, box.Text, canvas.Left)
		ctx.DrawText(x, y+face.Metrics().Ascent, line)
	}

	if r.opts.Rects {
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeColor(canvas.Red)
		ctx.SetStrokeWidth(debugStrokeWidth)
		ctx.DrawPath(x, y, canvas.Rectangle(float64(box.W), float64(box.H)))
	}

	for _, child := range box.Children {
		r.drawBox(ctx, child, x, y)
	}
}

func (r *Renderer) face(size float64) *canvas.FontFace {
	r.faceMu.Lock()
	defer r.faceMu.Unlock()
	if face, ok := r.faces[size]; ok {
		return face
	}
	face := r.family.Face(size, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	r.faces[size] = face
	return face
}

func rgba(c dsl.Colour) color.RGBA {
	return canvas.RGBA(
		float64(c.R)/255.0,
		float64(c.G)/255.0,
		float64(c.B)/255.0,
		float64(c.A)/255.0,
	)
}
