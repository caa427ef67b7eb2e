// Package session holds the state of one interactive editing session.
//
// A Session owns a source image, an optional overlay mask, the current
// parameters and two frames: the baseline (everything applied so far) and
// the current preview (the baseline with the pending edit). Every edit is
// recomputed from the baseline, so changing a parameter replaces the pending
// edit instead of stacking on top of it. Apply commits the preview as the
// new baseline and Revert drops it.
package session

import (
	"errors"
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/disintegration/imaging"

	imgtools "github.com/ironsheep/mosaic-tools-mcp/internal/imaging"
	"github.com/ironsheep/mosaic-tools-mcp/internal/mosaic"
)

// Options configures a Session.
type Options struct {
	// Strict rejects out-of-range parameters with a validation error instead
	// of clamping them.
	Strict bool

	// Debug logs every clamped parameter.
	Debug bool

	// Logger receives debug output. Nil uses the standard logger.
	Logger *log.Logger
}

// Session is safe for concurrent use; edits are serialized. Results
// returned by its methods share their Image with the session and must not be
// modified.
type Session struct {
	mu sync.Mutex

	mask     image.Image
	baseline *image.NRGBA
	current  *image.NRGBA

	params   mosaic.Params
	controls mosaic.Controls
	clicked  bool
	last     *mosaic.Result

	opts Options
}

// New starts a session on source. mask may be nil unless image overlay
// mode will be used. The cursor starts at the image center with the default
// parameters; nothing is edited until the first Click.
func New(source, mask image.Image, opts Options) (*Session, error) {
	if source == nil || source.Bounds().Empty() {
		return nil, fmt.Errorf("failed to start session: %w", mosaic.ErrEmptyFrame)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	base := imaging.Clone(source)
	size := base.Bounds().Size()

	controls := mosaic.DefaultControls()
	controls.Height = min(controls.Height, size.Y)
	controls.Width = min(controls.Width, size.X)

	params := controls.Apply(mosaic.DefaultParams())
	params.CenterX, params.CenterY = size.X/2, size.Y/2

	return &Session{
		mask:     mask,
		baseline: base,
		current:  imaging.Clone(base),
		params:   params,
		controls: controls,
		opts:     opts,
	}, nil
}

// Size returns the width and height of the session's frames.
func (s *Session) Size() image.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseline.Bounds().Size()
}

// Params returns the parameters of the next edit.
func (s *Session) Params() mosaic.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Controls returns the current slider positions.
func (s *Session) Controls() mosaic.Controls {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controls
}

// HasMask reports whether an overlay mask is loaded.
func (s *Session) HasMask() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mask != nil
}

// SetMode switches the edit mode. If a point has been clicked the pending
// edit is redone in the new mode and its result returned; otherwise the
// result is nil.
func (s *Session) SetMode(mode mosaic.Mode) (*mosaic.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == mosaic.ModeImageOverlay && s.mask == nil {
		return nil, fmt.Errorf("cannot switch to %s mode: %w", mode, mosaic.ErrMissingMask)
	}
	s.params.Mode = mode
	return s.reedit()
}

// SetControls replaces the slider positions and redoes the pending edit, if
// any. Diameters larger than the image are clamped to it, or rejected in
// strict mode.
func (s *Session) SetControls(c mosaic.Controls) (*mosaic.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.baseline.Bounds().Size()
	if s.opts.Strict {
		var errs []error
		if c.Height < 0 || c.Height > size.Y {
			errs = append(errs, &mosaic.ValidationError{Field: "height", Value: c.Height, Err: mosaic.ErrInvalidRegion})
		}
		if c.Width < 0 || c.Width > size.X {
			errs = append(errs, &mosaic.ValidationError{Field: "width", Value: c.Width, Err: mosaic.ErrInvalidRegion})
		}
		if err := errors.Join(errs...); err != nil {
			return nil, err
		}
	}
	c.Height = clamp(c.Height, 0, size.Y)
	c.Width = clamp(c.Width, 0, size.X)

	params := c.Apply(s.params)
	if s.clicked {
		if err := s.check(params); err != nil {
			return nil, err
		}
	}
	s.controls = c
	s.params = params
	return s.reedit()
}

// SetParams replaces all parameters, including the center, and edits.
func (s *Session) SetParams(p mosaic.Params) (*mosaic.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(p); err != nil {
		return nil, err
	}
	s.params = p
	s.clicked = true
	return s.edit()
}

// Click moves the center of the edit region to (x, y) and edits.
func (s *Session) Click(x, y int) (*mosaic.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.params
	p.CenterX, p.CenterY = x, y
	if err := s.check(p); err != nil {
		return nil, err
	}
	s.params = p
	s.clicked = true
	return s.edit()
}

// Edit recomputes the pending edit from the baseline with the current
// parameters.
func (s *Session) Edit() (*mosaic.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(s.params); err != nil {
		return nil, err
	}
	return s.edit()
}

// Apply commits the current preview as the new baseline.
func (s *Session) Apply() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.baseline = imaging.Clone(s.current)
	s.clicked = false
	s.last = nil
}

// Revert discards the pending edit, restoring the preview to the baseline.
func (s *Session) Revert() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = imaging.Clone(s.baseline)
	s.clicked = false
	s.last = nil
}

// Current returns a copy of the preview frame.
func (s *Session) Current() *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return imaging.Clone(s.current)
}

// Baseline returns a copy of the last applied frame.
func (s *Session) Baseline() *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return imaging.Clone(s.baseline)
}

// LastResult returns the result of the pending edit, or nil when there is
// none.
func (s *Session) LastResult() *mosaic.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Save writes the preview frame to path.
func (s *Session) Save(path string, opts imgtools.SaveOptions) (*imgtools.SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return imgtools.Save(s.current, path, opts)
}

// check validates p against the frame. In strict mode violations are
// returned; otherwise they are logged at debug level and left to
// mosaic.Apply to clamp.
func (s *Session) check(p mosaic.Params) error {
	err := p.Validate(s.baseline.Bounds())
	if err == nil {
		return nil
	}
	if s.opts.Strict {
		return err
	}
	if s.opts.Debug {
		s.opts.Logger.Printf("Clamping edit parameters: %v", err)
	}
	return nil
}

func (s *Session) reedit() (*mosaic.Result, error) {
	if !s.clicked {
		return nil, nil
	}
	return s.edit()
}

func (s *Session) edit() (*mosaic.Result, error) {
	result, err := mosaic.Apply(s.baseline, s.params, s.mask)
	if err != nil {
		return nil, fmt.Errorf("failed to apply %s edit: %w", s.params.Mode, err)
	}
	s.current = result.Image
	s.last = result
	if s.opts.Debug {
		s.opts.Logger.Printf("Applied %s edit at (%d,%d) region %v", s.params.Mode, s.params.CenterX, s.params.CenterY, result.Region)
	}
	return result, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
