package mosaic

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"
)

// Mode selects what is drawn into the edit region.
type Mode int

const (
	ModeMosaic       Mode = iota // block pixelation
	ModeBlur                     // 5x5 box blur
	ModeImageOverlay             // resized mask image
)

func (m Mode) String() string {
	switch m {
	case ModeMosaic:
		return "mosaic"
	case ModeBlur:
		return "blur"
	case ModeImageOverlay:
		return "image"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the single-letter keys "M", "B" and "I" (any case) as
// well as the names "mosaic", "blur", "image" and "overlay".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "mosaic":
		return ModeMosaic, nil
	case "b", "blur":
		return ModeBlur, nil
	case "i", "image", "overlay":
		return ModeImageOverlay, nil
	}
	return ModeMosaic, fmt.Errorf("unknown mode: %q", s)
}

// MarshalText encodes m by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts anything ParseMode does.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Corner holds the rounding percentage (0-100) of each corner of the edit
// region. 0 keeps the corner square, 100 rounds it fully onto the inscribed
// ellipse.
type Corner struct {
	UpperLeft  int `json:"upper_left"`
	UpperRight int `json:"upper_right"`
	LowerLeft  int `json:"lower_left"`
	LowerRight int `json:"lower_right"`
}

// RoundCorners returns a Corner with every corner fully rounded.
func RoundCorners() Corner {
	return Corner{UpperLeft: 100, UpperRight: 100, LowerLeft: 100, LowerRight: 100}
}

// SquareCorners returns a Corner with every corner kept square.
func SquareCorners() Corner {
	return Corner{}
}

// Params is an immutable snapshot of everything one edit needs.
type Params struct {
	// CenterX and CenterY locate the center of the edit region in frame
	// coordinates.
	CenterX int `json:"center_x"`
	CenterY int `json:"center_y"`

	// DiaWidth and DiaHeight are the diameters of the edit region in pixels.
	// The half extents are DiaWidth/2 and DiaHeight/2, rounded down.
	DiaWidth  int `json:"dia_width"`
	DiaHeight int `json:"dia_height"`

	Corner Corner `json:"corner"`

	// CellHeight and CellWidth are mosaic cell sizes as a fraction (0-1] of
	// the region height and width.
	CellHeight float64 `json:"cell_height"`
	CellWidth  float64 `json:"cell_width"`

	// Opacity of the edit, 0 (invisible) to 1 (opaque).
	Opacity float64 `json:"opacity"`

	// Feather is the width in pixels of the blended band along the seam.
	Feather int `json:"feather"`

	// SharpColor fills each mosaic cell with its center pixel instead of
	// the cell average.
	SharpColor bool `json:"sharp_color"`

	Mode Mode `json:"mode"`
}

// MinCellFraction is substituted for a zero cell fraction.
const MinCellFraction = 0.01

// DefaultParams returns the parameters an editing session starts with.
func DefaultParams() Params {
	return Params{
		DiaWidth:   100,
		DiaHeight:  100,
		Corner:     RoundCorners(),
		CellHeight: 0.1,
		CellWidth:  0.1,
		Opacity:    1,
		Feather:    10,
		Mode:       ModeMosaic,
	}
}

// Normalize returns a copy of p with every field clamped into its domain for
// a frame of the given size. It is the behaviour Apply relies on; use
// Validate to find out whether anything was clamped.
func (p Params) Normalize(bounds image.Rectangle) Params {
	p.CenterX = clampInt(p.CenterX, bounds.Min.X, max(bounds.Max.X-1, bounds.Min.X))
	p.CenterY = clampInt(p.CenterY, bounds.Min.Y, max(bounds.Max.Y-1, bounds.Min.Y))
	p.DiaWidth = max(p.DiaWidth, 0)
	p.DiaHeight = max(p.DiaHeight, 0)
	p.Corner = Corner{
		UpperLeft:  clampInt(p.Corner.UpperLeft, 0, 100),
		UpperRight: clampInt(p.Corner.UpperRight, 0, 100),
		LowerLeft:  clampInt(p.Corner.LowerLeft, 0, 100),
		LowerRight: clampInt(p.Corner.LowerRight, 0, 100),
	}
	p.CellHeight = clampFraction(p.CellHeight)
	p.CellWidth = clampFraction(p.CellWidth)
	p.Opacity = clampFloat(p.Opacity, 0, 1)
	p.Feather = max(p.Feather, 0)
	return p
}

// Validate reports every field of p that Normalize would have to change for a
// frame of the given size. The returned error joins one *ValidationError per
// offending field; it is nil when p is already in range.
func (p Params) Validate(bounds image.Rectangle) error {
	var errs []error
	region := func(field string, v any) {
		errs = append(errs, &ValidationError{Field: field, Value: v, Err: ErrInvalidRegion})
	}
	fraction := func(field string, v any) {
		errs = append(errs, &ValidationError{Field: field, Value: v, Err: ErrInvalidFraction})
	}

	if p.CenterX < bounds.Min.X || p.CenterX >= bounds.Max.X {
		region("center_x", p.CenterX)
	}
	if p.CenterY < bounds.Min.Y || p.CenterY >= bounds.Max.Y {
		region("center_y", p.CenterY)
	}
	if p.DiaWidth <= 0 {
		region("dia_width", p.DiaWidth)
	}
	if p.DiaHeight <= 0 {
		region("dia_height", p.DiaHeight)
	}
	if !inRange(p.CellHeight, 0, 1) || p.CellHeight == 0 {
		fraction("cell_height", p.CellHeight)
	}
	if !inRange(p.CellWidth, 0, 1) || p.CellWidth == 0 {
		fraction("cell_width", p.CellWidth)
	}
	if !inRange(p.Opacity, 0, 1) {
		fraction("opacity", p.Opacity)
	}
	if p.Feather < 0 {
		fraction("feather", p.Feather)
	}
	for _, c := range []struct {
		field string
		v     int
	}{
		{"corner.upper_left", p.Corner.UpperLeft},
		{"corner.upper_right", p.Corner.UpperRight},
		{"corner.lower_left", p.Corner.LowerLeft},
		{"corner.lower_right", p.Corner.LowerRight},
	} {
		if c.v < 0 || c.v > 100 {
			fraction(c.field, c.v)
		}
	}
	return errors.Join(errs...)
}

// Controls are raw slider positions as an interactive front end exposes them.
// Diameters are in pixels (bounded by the image size), everything else is on
// a 0-100 scale except SharpColor, which is 0 or 1.
type Controls struct {
	Height     int `json:"height"`
	Width      int `json:"width"`
	CornerUL   int `json:"corner_ul"`
	CornerUR   int `json:"corner_ur"`
	CornerLL   int `json:"corner_ll"`
	CornerLR   int `json:"corner_lr"`
	Horizon    int `json:"horizon"`
	Vertical   int `json:"vertical"`
	Opacity    int `json:"opacity"`
	SharpColor int `json:"sharp_color"`
	Feather    int `json:"feather"`
}

// DefaultControls mirrors DefaultParams on the slider scale.
func DefaultControls() Controls {
	return Controls{
		Height:   100,
		Width:    100,
		CornerUL: 100,
		CornerUR: 100,
		CornerLL: 100,
		CornerLR: 100,
		Horizon:  10,
		Vertical: 10,
		Opacity:  100,
		Feather:  10,
	}
}

// Apply copies the slider values onto p, keeping its center and mode.
// Horizon sets the cell height fraction and Vertical the cell width
// fraction; a zero position maps to MinCellFraction.
func (c Controls) Apply(p Params) Params {
	p.DiaHeight = c.Height
	p.DiaWidth = c.Width
	p.Corner = Corner{
		UpperLeft:  c.CornerUL,
		UpperRight: c.CornerUR,
		LowerLeft:  c.CornerLL,
		LowerRight: c.CornerLR,
	}
	p.CellHeight = sliderFraction(c.Horizon)
	if p.CellHeight == 0 {
		p.CellHeight = MinCellFraction
	}
	p.CellWidth = sliderFraction(c.Vertical)
	if p.CellWidth == 0 {
		p.CellWidth = MinCellFraction
	}
	p.Opacity = sliderFraction(c.Opacity)
	p.SharpColor = c.SharpColor != 0
	p.Feather = c.Feather
	return p
}

func sliderFraction(v int) float64 {
	return float64(v) * 0.01
}

// inRange is false for NaN.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

func clampFraction(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return MinCellFraction
	}
	return clampFloat(v, MinCellFraction, 1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampFloat maps NaN to lo.
func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
