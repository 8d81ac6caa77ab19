package widgets

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/go-aspen/aspen/pkg/element"
	"github.com/go-aspen/aspen/pkg/native"
)

// ClassImage is the toolkit class for image resources.
//
// Images are not attached to a parent tree; the application must destroy
// them itself when no longer used, per toolkit rules.
const ClassImage = "image"

func init() { RegisterClass(ClassImage) }

// Image wraps a native image resource.
type Image struct {
	element.Base
}

func (Image) TargetClassName() string {
	return ClassImage
}

func (Image) FromRawUnchecked(ref native.Ref) Image {
	return Image{element.Wrap(ref)}
}

// NewImage allocates a native image from img. Pixels cross the boundary as
// tightly-packed RGBA, the only layout the toolkit accepts; other source
// formats are converted first.
func NewImage(img image.Image) Image {
	bounds := img.Bounds()
	return create[Image](ClassImage, map[string]any{
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
		"pixels": rgbaPixels(img),
	})
}

// NewImageScaled is NewImage with the source resampled to width x height
// using approximate bi-linear interpolation.
func NewImageScaled(img image.Image, width, height int) Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return create[Image](ClassImage, map[string]any{
		"width":  width,
		"height": height,
		"pixels": dst.Pix,
	})
}

// rgbaPixels returns img's pixels as a tightly-packed RGBA buffer.
func rgbaPixels(img image.Image) []byte {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*bounds.Dx() {
		return rgba.Pix
	}
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return dst.Pix
}
