package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/ironsheep/mosaic-tools-mcp/internal/imaging"
	"github.com/ironsheep/mosaic-tools-mcp/internal/mosaic"
	"github.com/ironsheep/mosaic-tools-mcp/internal/server"
	"github.com/ironsheep/mosaic-tools-mcp/internal/session"
)

// Default paths of the edit command, relative to the working directory.
const (
	defaultSource = "images/lena.jpg"
	defaultMask   = "images/mask.png"
	defaultOutput = "images/output.jpg"
)

type editOptions struct {
	src, mask, output string

	// set holds the names of the flags given on the command line.
	set map[string]bool

	// x and y default to -1, meaning the image center.
	x, y int

	controls mosaic.Controls
	mode     mosaic.Mode
	strict   bool
	quality  int
}

// parseEditFlags parses the edit command line. cfg supplies the defaults
// for -strict and -quality.
func parseEditFlags(args []string, cfg server.Config, stderr io.Writer) (*editOptions, error) {
	o := &editOptions{controls: mosaic.DefaultControls(), set: map[string]bool{}}
	c := &o.controls

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.src, "s", defaultSource, "source image (shorthand)")
	fs.StringVar(&o.src, "src", defaultSource, "source image")
	fs.StringVar(&o.mask, "m", defaultMask, "overlay image for -mode image (shorthand)")
	fs.StringVar(&o.mask, "mask", defaultMask, "overlay image for -mode image")
	fs.StringVar(&o.output, "o", defaultOutput, "output image (shorthand)")
	fs.StringVar(&o.output, "output", defaultOutput, "output image; .png, .jpg, .bmp or .qoi")

	fs.IntVar(&o.x, "x", -1, "region center x (default: image center)")
	fs.IntVar(&o.y, "y", -1, "region center y (default: image center)")
	fs.IntVar(&c.Height, "height", c.Height, "region height in pixels")
	fs.IntVar(&c.Width, "width", c.Width, "region width in pixels")
	fs.IntVar(&c.CornerUL, "corner-ul", c.CornerUL, "upper-left corner rounding 0-100")
	fs.IntVar(&c.CornerUR, "corner-ur", c.CornerUR, "upper-right corner rounding 0-100")
	fs.IntVar(&c.CornerLL, "corner-ll", c.CornerLL, "lower-left corner rounding 0-100")
	fs.IntVar(&c.CornerLR, "corner-lr", c.CornerLR, "lower-right corner rounding 0-100")
	fs.IntVar(&c.Horizon, "horizon", c.Horizon, "mosaic cell height, percent of the region height")
	fs.IntVar(&c.Vertical, "vertical", c.Vertical, "mosaic cell width, percent of the region width")
	fs.IntVar(&c.Opacity, "opacity", c.Opacity, "edit opacity percent")
	fs.IntVar(&c.SharpColor, "sharp", c.SharpColor, "1 fills mosaic cells with their center pixel")
	fs.IntVar(&c.Feather, "feather", c.Feather, "seam feather width in pixels")

	mode := fs.String("mode", "m", "edit mode: m (mosaic), b (blur) or i (image)")
	fs.BoolVar(&o.strict, "strict", cfg.Strict, "reject out-of-range parameters instead of clamping")
	fs.IntVar(&o.quality, "quality", cfg.JPEGQuality, "JPEG quality 1-100")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	m, err := mosaic.ParseMode(*mode)
	if err != nil {
		return nil, err
	}
	o.mode = m

	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// runEdit loads the source image, edits it once at the requested point,
// applies the edit and saves the result.
func runEdit(args []string, cfg server.Config, stdout, stderr io.Writer) error {
	o, err := parseEditFlags(args, cfg, stderr)
	if err != nil {
		return err
	}

	cache := imaging.NewImageCache()
	src, err := cache.Load(o.src)
	if err != nil {
		return err
	}

	// The mask is only needed in image mode, unless given explicitly.
	var mask image.Image
	if o.mode == mosaic.ModeImageOverlay || o.set["m"] || o.set["mask"] {
		if mask, err = cache.Load(o.mask); err != nil {
			return err
		}
	}

	sess, err := session.New(src, mask, session.Options{
		Strict: o.strict,
		Debug:  cfg.Debug,
		Logger: log.Default(),
	})
	if err != nil {
		return err
	}
	if _, err := sess.SetMode(o.mode); err != nil {
		return err
	}
	// Diameters left at their default follow the session's, which are
	// bounded by the image.
	if !o.set["height"] {
		o.controls.Height = sess.Controls().Height
	}
	if !o.set["width"] {
		o.controls.Width = sess.Controls().Width
	}
	if _, err := sess.SetControls(o.controls); err != nil {
		return err
	}

	size := sess.Size()
	x, y := o.x, o.y
	if x < 0 {
		x = size.X / 2
	}
	if y < 0 {
		y = size.Y / 2
	}
	result, err := sess.Click(x, y)
	if err != nil {
		return err
	}
	sess.Apply()

	saved, err := sess.Save(o.output, imaging.SaveOptions{JPEGQuality: o.quality})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s edit at (%d,%d), region %v, saved %s (%dx%d %s)\n",
		o.mode, x, y, result.Region, saved.Path, saved.Width, saved.Height, saved.Format)
	return nil
}
