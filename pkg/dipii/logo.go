package dipii

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// logo size in mm
const logoSize = 40.0

// DrawLogo renders the fallback branding mark as a PNG. It only uses vector
// shapes so no font files are needed.
func DrawLogo() ([]byte, error) {
	c := canvas.New(logoSize, logoSize)
	ctx := canvas.NewContext(c)

	center := logoSize / 2

	ctx.SetFillColor(canvas.Hex("#1B5E20"))
	ctx.DrawPath(center, center, canvas.Circle(center-1))

	ctx.SetFillColor(canvas.Hex("#FFFFFF"))
	ctx.DrawPath(center, center, canvas.Circle(center-5))

	// three cubes for the three diced products
	ctx.SetFillColor(canvas.Hex("#F9A825"))
	ctx.DrawPath(11, 17, canvas.Rectangle(6, 6))
	ctx.SetFillColor(canvas.Hex("#2E7D32"))
	ctx.DrawPath(17, 17, canvas.Rectangle(6, 6))
	ctx.SetFillColor(canvas.Hex("#C62828"))
	ctx.DrawPath(23, 17, canvas.Rectangle(6, 6))

	var buf bytes.Buffer
	if err := renderers.PNG(canvas.DPMM(6.0))(&buf, c); err != nil {
		return nil, fmt.Errorf("failed to render logo: %w", err)
	}

	return buf.Bytes(), nil
}
