// builder converts outline (.ttf/.otf) and bitmap (.bdf) fonts into
// the MFNT container consumed by the microfont runtime. The pipeline
// is a one shot batch: assemble a [Charset], pick a [Rasterizer] for
// the source font, and hand both to a [Builder], which fits the
// requested pixel height, composites every glyph onto a shared
// baseline and serializes the container with its sparse index.
//
// All sizing happens here; the runtime never scales.
package builder

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'microfont.build'
func tracer() tracing.Trace {
	return tracing.Select("microfont.build")
}
