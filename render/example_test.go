package render_test

import (
	"os"

	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/katalvlaran/hopfield/render"
)

func ExampleFprint() {
	p, _ := bipolar.Parse("+--+ | -++- | -++- | +--+")
	_ = render.Fprint(os.Stdout, p, 4)
	// Output:
	// ┌─────────┐
	// │ ● ○ ○ ● │
	// │ ○ ● ● ○ │
	// │ ○ ● ● ○ │
	// │ ● ○ ○ ● │
	// └─────────┘
}
