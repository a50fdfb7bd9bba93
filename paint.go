package intrographics

import "github.com/phanxgames/intrographics/canvas"

// PaintOption adjusts a Paint call.
type PaintOption func(*paintConfig)

type paintConfig struct {
	borderWidth    int
	borderWidthSet bool
	borderColor    any
	borderColorSet bool
	lineWidth      int
	lineWidthSet   bool
}

// BorderWidth sets the outline width of a rectangle, oval or polygon.
// Zero draws no outline. The default is 1.
func BorderWidth(n int) PaintOption {
	return func(c *paintConfig) {
		c.borderWidth = n
		c.borderWidthSet = true
	}
}

// BorderColor sets the outline color of a rectangle, oval or polygon.
// The default is black.
func BorderColor(color any) PaintOption {
	return func(c *paintConfig) {
		c.borderColor = color
		c.borderColorSet = true
	}
}

// LineWidth sets the stroke width of a line. The default is 1.
func LineWidth(n int) PaintOption {
	return func(c *paintConfig) {
		c.lineWidth = n
		c.lineWidthSet = true
	}
}

func collectPaint(opts []PaintOption) paintConfig {
	cfg := paintConfig{borderWidth: 1, borderColor: "black", lineWidth: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// paintFilled implements Paint for shapes with an interior and an outline.
func (s *shape) paintFilled(fill any, opts []PaintOption) error {
	op := s.op("paint(fill,borderWidth,borderColor)")
	cfg := collectPaint(opts)
	if cfg.lineWidthSet {
		return s.fail(newError(op, KindExtraArguments, "%s.paint does not take a line width", s.kind))
	}
	if fill == nil {
		return s.fail(missingArgument(op, "fill"))
	}
	if err := requireAtLeast(op, "borderWidth", cfg.borderWidth, 0); err != nil {
		return s.fail(err)
	}
	if s.deleted {
		return nil
	}
	fc, err := s.win.resolveColor(op, fill)
	if err != nil {
		return s.fail(err)
	}
	bc, err := s.win.resolveColor(op, cfg.borderColor)
	if err != nil {
		return s.fail(err)
	}

	st := s.style()
	st.Fill = canvas.ColorPtr(fc)
	st.Width = cfg.borderWidth
	st.Outline = nil
	if cfg.borderWidth > 0 {
		st.Outline = canvas.ColorPtr(bc)
	}
	s.setStyle(st)
	return nil
}
