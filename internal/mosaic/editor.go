package mosaic

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/mosaic-tools-mcp/internal/detection"
)

// Result is the outcome of one edit.
type Result struct {
	// Image is the edited frame, always a fresh copy with origin (0,0).
	Image *image.NRGBA `json:"-"`

	// Region is the edit region in frame coordinates after clipping. It is
	// empty when the diameters are zero.
	Region image.Rectangle `json:"region"`

	// Contours traces the boundary of the shaped area in frame coordinates.
	// Nil in image overlay mode.
	Contours []detection.Contour `json:"-"`
}

// ComputeRegion returns the edit region of p within bounds. The left and
// top edges stop at the frame edge when the half extent reaches past it;
// overflow on the right and bottom is clipped away.
func ComputeRegion(bounds image.Rectangle, p Params) image.Rectangle {
	hw, hh := p.DiaWidth/2, p.DiaHeight/2

	sx := bounds.Min.X
	if hw < p.CenterX-bounds.Min.X {
		sx = p.CenterX - hw
	}
	sy := bounds.Min.Y
	if hh < p.CenterY-bounds.Min.Y {
		sy = p.CenterY - hh
	}
	return image.Rect(sx, sy, p.CenterX+hw, p.CenterY+hh).Intersect(bounds)
}

// Apply edits a copy of frame according to p and returns it. frame is never
// modified. mask is only used, and then required, in ModeImageOverlay.
//
// p is normalized against the frame first (see Params.Normalize), so the
// only errors are ErrEmptyFrame and ErrMissingMask.
func Apply(frame image.Image, p Params, mask image.Image) (*Result, error) {
	if frame == nil || frame.Bounds().Empty() {
		return nil, ErrEmptyFrame
	}
	src := imaging.Clone(frame)
	p = p.Normalize(src.Bounds())

	ed, err := editorFor(p.Mode, mask)
	if err != nil {
		return nil, err
	}

	region := ComputeRegion(src.Bounds(), p)
	if region.Empty() {
		return &Result{Image: src, Region: region}, nil
	}

	img, contours := ed.edit(src, region, p)
	return &Result{Image: img, Region: region, Contours: contours}, nil
}

// editor is the per-mode part of Apply. frame is owned by the caller and
// must not be modified; region is non-empty and inside frame.
type editor interface {
	edit(frame *image.NRGBA, region image.Rectangle, p Params) (*image.NRGBA, []detection.Contour)
}

func editorFor(mode Mode, mask image.Image) (editor, error) {
	switch mode {
	case ModeBlur:
		return shapedEditor{process: blurClip}, nil
	case ModeImageOverlay:
		if mask == nil || mask.Bounds().Empty() {
			return nil, ErrMissingMask
		}
		return overlayEditor{mask: mask}, nil
	default:
		return shapedEditor{process: mosaicClip}, nil
	}
}

func mosaicClip(clip *image.NRGBA, p Params) *image.NRGBA {
	return Reduce(clip, p.CellHeight, p.CellWidth, p.SharpColor)
}

func blurClip(clip *image.NRGBA, _ Params) *image.NRGBA {
	return Smooth(clip)
}

// shapedEditor processes the region, cuts it to the rounded silhouette,
// blends it in and feathers the seam.
type shapedEditor struct {
	process func(clip *image.NRGBA, p Params) *image.NRGBA
}

func (e shapedEditor) edit(frame *image.NRGBA, region image.Rectangle, p Params) (*image.NRGBA, []detection.Contour) {
	clip := imaging.Crop(frame, region)
	processed := e.process(clip, p)

	center := image.Pt(p.CenterX-region.Min.X, p.CenterY-region.Min.Y)
	radii := image.Pt(p.DiaWidth/2, p.DiaHeight/2)
	shaped, mask := Shape(clip, processed, center, radii, p.Corner)

	composite := imaging.Clone(frame)
	for y := 0; y < region.Dy(); y++ {
		for x := 0; x < region.Dx(); x++ {
			if mask.AlphaAt(x, y).A == 0 {
				continue
			}
			fx, fy := region.Min.X+x, region.Min.Y+y
			composite.SetNRGBA(fx, fy, blendColor(composite.NRGBAAt(fx, fy), shaped.NRGBAAt(x, y), p.Opacity))
		}
	}

	// Same pixels, addressed in frame coordinates.
	frameMask := &image.Alpha{Pix: mask.Pix, Stride: mask.Stride, Rect: region}
	contours := detection.FindContours(frameMask)

	return Feather(frame, composite, contours, p.Feather), contours
}

// overlayEditor blends the cover-resized mask image into the region.
type overlayEditor struct {
	mask image.Image
}

func (e overlayEditor) edit(frame *image.NRGBA, region image.Rectangle, p Params) (*image.NRGBA, []detection.Contour) {
	diameter := image.Pt(2*(p.DiaWidth/2), 2*(p.DiaHeight/2))
	resized := CoverResize(e.mask, diameter.Y, diameter.X)
	rect := overlayRect(region, resized.Bounds().Size(), diameter, frame.Bounds())

	out := imaging.Clone(frame)
	blendOverlay(out, resized, rect, p.Opacity)
	return out, nil
}
