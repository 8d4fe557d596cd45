package layout

import (
	"errors"
	"sync"

	"github.com/WalrusGumboot/folium/dsl"
	"github.com/WalrusGumboot/folium/style"
)

// Options configures a Build pass.
type Options struct {
	// Measurer supplies text extents. Required.
	Measurer Measurer

	// Data, when set, is made available to ${...} placeholders in
	// text content before measurement.
	Data any

	// Viewport overrides the per-slide geometry from the style
	// layer. Zero means use each slide's own width and height.
	Viewport Viewport
}

// Build resolves styles and lays out every slide of a deck. Style
// resolution runs first and sequentially so the error for a bad deck
// is deterministic; the per-slide layout passes only read their own
// sheet and run concurrently.
func Build(deck *dsl.Deck, opts Options) (*Result, error) {
	if deck == nil {
		return nil, errors.New("layout: nil deck")
	}
	if opts.Measurer == nil {
		return nil, errors.New("layout: no measurer configured")
	}

	sheets := make([]*style.Sheet, len(deck.Slides))
	for i, slide := range deck.Slides {
		sheet, err := style.Resolve(slide)
		if err != nil {
			return nil, err
		}
		sheets[i] = sheet
	}

	res := &Result{Slides: make([]*SlideLayout, len(deck.Slides))}
	var wg sync.WaitGroup
	for i, slide := range deck.Slides {
		wg.Add(1)
		go func(i int, slide *dsl.Slide) {
			defer wg.Done()
			res.Slides[i] = BuildSlide(slide, sheets[i], opts)
		}(i, slide)
	}
	wg.Wait()
	return res, nil
}

// BuildSlide lays out a single slide against its resolved sheet. The
// slide margin shrinks the root constraint on both axes and offsets
// the root box; the reported slide size stays the full geometry.
func BuildSlide(slide *dsl.Slide, sheet *style.Sheet, opts Options) *SlideLayout {
	geo := sheet.Geometry
	width, height := geo.Width, geo.Height
	if opts.Viewport.W > 0 && opts.Viewport.H > 0 {
		width, height = opts.Viewport.W, opts.Viewport.H
	}

	e := &engine{sheet: sheet, measurer: opts.Measurer, data: opts.Data}
	margin := clampZero(geo.Margin)
	root := e.node(slide.Root, clampZero(width-2*margin), clampZero(height-2*margin))
	root.X = margin
	root.Y = margin

	return &SlideLayout{
		Width:      width,
		Height:     height,
		Background: geo.Background,
		Root:       root,
	}
}
