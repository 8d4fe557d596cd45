// Package renderer defines the output side of the pipeline: a
// Renderer turns a finished layout into named artifacts, one backend
// per output format.
package renderer

import "github.com/WalrusGumboot/folium/layout"

// Output is one rendered artifact, named relative to the output
// directory.
type Output struct {
	Name string
	Data []byte
}

// Renderer turns a build result into output artifacts.
type Renderer interface {
	Render(res *layout.Result) ([]Output, error)
}
