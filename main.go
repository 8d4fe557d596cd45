package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/WalrusGumboot/folium/dsl"
	"github.com/WalrusGumboot/folium/layout"
	"github.com/WalrusGumboot/folium/renderer"
	canvasrenderer "github.com/WalrusGumboot/folium/renderer/canvas"
	htmlrenderer "github.com/WalrusGumboot/folium/renderer/html"
)

func main() {
	input := flag.String("in", "examples/demo.flm", "deck source path")
	outDir := flag.String("out", "output", "output directory")
	format := flag.String("format", "png", "output format: png or html")
	font := flag.String("font", "", "TTF/OTF font file for the png backend")
	debug := flag.String("debug", "", "layout debug JSON output path")
	rects := flag.Bool("rects", false, "outline every layout box in red (png backend)")
	inspect := flag.Bool("inspect", false, "print the compiled deck in canonical form and exit")
	dataJSON := flag.String("data", "", "JSON data bound to ${...} placeholders")
	flag.Parse()

	var data any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &data); err != nil {
			log.Fatalf("parse data JSON: %v", err)
		}
	}

	if err := run(*input, *outDir, *format, *font, *debug, *rects, *inspect, data); err != nil {
		log.Fatalf("%v", err)
	}
}

// run chains parsing, layout and rendering.
func run(inputPath, outDir, format, fontPath, debugPath string, rects, inspect bool, data any) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open deck %s: %w", inputPath, err)
	}
	defer file.Close()

	deck, err := dsl.Parse(file)
	if err != nil {
		return fmt.Errorf("parse deck: %w", err)
	}

	if inspect {
		fmt.Print(dsl.Format(deck))
		return nil
	}

	var r renderer.Renderer
	var measurer layout.Measurer
	switch format {
	case "png":
		cr, err := canvasrenderer.NewRenderer(canvasrenderer.Options{
			FontPath: fontPath,
			Rects:    rects,
		})
		if err != nil {
			return err
		}
		r, measurer = cr, cr
	case "html":
		cr, err := canvasrenderer.NewRenderer(canvasrenderer.Options{FontPath: fontPath})
		if err != nil {
			return err
		}
		r, measurer = htmlrenderer.NewRenderer(), cr
	default:
		return fmt.Errorf("unknown format %q (want png or html)", format)
	}

	result, err := layout.Build(deck, layout.Options{
		Measurer: measurer,
		Data:     data,
	})
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	if debugPath != "" {
		if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		if err := layout.WriteDebugJSON(result, debugPath); err != nil {
			return err
		}
	}

	outputs, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, out := range outputs {
		path := filepath.Join(outDir, out.Name)
		if err := os.WriteFile(path, out.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}
