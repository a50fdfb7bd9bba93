package intrographics

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ScriptStep is one operation of a script. Shapes created by add steps are
// registered under Name; later steps address them through Target. An empty
// Target addresses the window.
type ScriptStep struct {
	Op     string `yaml:"op"`
	Name   string `yaml:"name,omitempty"`
	Target string `yaml:"target,omitempty"`
	Args   []any  `yaml:"args,omitempty"`
}

// Script is a sequence of window operations read from YAML or JSON:
//
//	width: 200
//	height: 200
//	steps:
//	  - {op: addOval, name: ball, args: [10, 10, 30, 30]}
//	  - {op: paint, target: ball, args: [blue]}
//	  - {op: wait, args: [100]}
//	  - {op: click, args: [25, 25]}
//	  - {op: expect, target: ball, args: [left, 10]}
//	  - {op: screenshot, args: [after-click]}
type Script struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Title  string       `yaml:"title"`
	Steps  []ScriptStep `yaml:"steps"`
}

// LoadScript parses a YAML or JSON script.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if st.Op == "" {
			return nil, fmt.Errorf("parse script: step %d has no op", i+1)
		}
	}
	return &s, nil
}

// LoadScriptFile reads and parses a script file.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

// ScriptRunner executes a Script on a window's run loop. Every step goes
// through the same validation as the corresponding method call, with
// arguments coerced from their script types.
type ScriptRunner struct {
	steps  []ScriptStep
	win    *Window
	shapes map[string]Shape
	cursor int
	done   bool
	err    error
}

// RunScript starts executing s on the window's loop. Steps run once the
// loop is running, in order; wait steps and input steps yield to the loop.
func (w *Window) RunScript(s *Script) *ScriptRunner {
	r := &ScriptRunner{
		steps:  s.Steps,
		win:    w,
		shapes: make(map[string]Shape),
	}
	w.sess.loop.After(0, r.step)
	return r
}

// Done reports whether the runner has finished or stopped on an error.
func (r *ScriptRunner) Done() bool { return r.done }

// Err returns the error that stopped the runner, if any.
func (r *ScriptRunner) Err() error { return r.err }

// Shape returns the shape registered under name.
func (r *ScriptRunner) Shape(name string) Shape { return r.shapes[name] }

// step executes steps until one yields or the script ends.
func (r *ScriptRunner) step() {
	for !r.done {
		if r.cursor >= len(r.steps) || r.win.Closed() {
			r.finish(nil)
			return
		}
		st := r.steps[r.cursor]
		r.cursor++
		delay, yield, err := r.exec(st)
		if err != nil {
			r.finish(fmt.Errorf("script step %d (%s): %w", r.cursor, st.Op, err))
			return
		}
		if yield {
			r.win.sess.loop.After(delay, r.step)
			return
		}
	}
}

func (r *ScriptRunner) finish(err error) {
	r.done = true
	r.err = err
	if err != nil {
		Logger().Warn("script stopped", "err", err)
		return
	}
	Logger().Debug("script finished", "steps", r.cursor)
}

// Capabilities addressed by script steps.
type (
	painter interface {
		Paint(fill any, opts ...PaintOption) error
	}
	rewriter interface {
		Rewrite(message string)
	}
)

// exec runs one step. It returns how long to yield to the loop, if at all.
func (r *ScriptRunner) exec(st ScriptStep) (time.Duration, bool, error) {
	w := r.win
	op := "script." + st.Op
	a := st.Args
	switch st.Op {
	case "addRectangle", "addOval":
		v, err := r.ints(op, a, "x", "y", "width", "height")
		if err != nil {
			return 0, false, err
		}
		var s Shape
		if st.Op == "addRectangle" {
			s, err = w.AddRectangle(v[0], v[1], v[2], v[3])
		} else {
			s, err = w.AddOval(v[0], v[1], v[2], v[3])
		}
		return 0, false, r.bind(st.Name, s, err)

	case "addPolygon", "addLine":
		pts := make([]Point, len(a))
		for i, v := range a {
			p, err := coercePoint(op, fmt.Sprintf("point %d", i+1), v)
			if err != nil {
				return 0, false, w.fail(err)
			}
			pts[i] = p
		}
		var s Shape
		var err error
		if st.Op == "addPolygon" {
			s, err = w.AddPolygon(pts...)
		} else {
			s, err = w.AddLine(pts...)
		}
		return 0, false, r.bind(st.Name, s, err)

	case "addText", "addButton", "addField", "addImage":
		required := 3
		if st.Op == "addField" {
			required = 2
		}
		name := "message"
		if st.Op == "addImage" {
			name = "filename"
		}
		if err := checkArgs(op, a, required, "x", "y", name); err != nil {
			return 0, false, w.fail(err)
		}
		v, err := r.ints(op, a[:2], "x", "y")
		if err != nil {
			return 0, false, err
		}
		var msg []string
		if len(a) == 3 {
			s, err := coerceString(op, name, a[2])
			if err != nil {
				return 0, false, w.fail(err)
			}
			msg = append(msg, s)
		}
		var s Shape
		switch st.Op {
		case "addText":
			s, err = w.AddText(v[0], v[1], msg[0])
		case "addButton":
			s, err = w.AddButton(v[0], v[1], msg[0])
		case "addField":
			s, err = w.AddField(v[0], v[1], msg...)
		case "addImage":
			s, err = w.AddImage(v[0], v[1], msg[0])
		}
		return 0, false, r.bind(st.Name, s, err)

	case "remove":
		if len(a) == 0 {
			return 0, false, w.fail(missingArgument(op, "shape"))
		}
		shapes := make([]Shape, len(a))
		for i, v := range a {
			name, err := coerceString(op, "shape", v)
			if err != nil {
				return 0, false, w.fail(err)
			}
			if shapes[i], err = r.shape(op, name); err != nil {
				return 0, false, err
			}
		}
		return 0, false, w.Remove(shapes...)

	case "fill":
		if err := checkArgs(op, a, 1, "color"); err != nil {
			return 0, false, w.fail(err)
		}
		return 0, false, w.Fill(a[0])

	case "move", "relocate", "resize":
		v, err := r.ints(op, a, geometryArgs[st.Op]...)
		if err != nil {
			return 0, false, err
		}
		if st.Target == "" {
			switch st.Op {
			case "relocate":
				w.Relocate(v[0], v[1])
				return 0, false, nil
			case "resize":
				return 0, false, w.Resize(v[0], v[1])
			}
			return 0, false, w.fail(newError(op, KindInvalidArgument, "the window cannot move; use relocate"))
		}
		s, err := r.shape(op, st.Target)
		if err != nil {
			return 0, false, err
		}
		switch st.Op {
		case "move":
			s.Move(v[0], v[1])
		case "relocate":
			s.Relocate(v[0], v[1])
		case "resize":
			rs, ok := s.(Resizer)
			if !ok {
				return 0, false, w.fail(unsupported(op, s))
			}
			return 0, false, rs.Resize(v[0], v[1])
		}
		return 0, false, nil

	case "paint":
		return 0, false, r.paint(op, st.Target, a)

	case "rewrite":
		if err := checkArgs(op, a, 1, "message"); err != nil {
			return 0, false, w.fail(err)
		}
		s, err := r.shape(op, st.Target)
		if err != nil {
			return 0, false, err
		}
		rw, ok := s.(rewriter)
		if !ok {
			return 0, false, w.fail(unsupported(op, s))
		}
		msg, err := coerceString(op, "message", a[0])
		if err != nil {
			return 0, false, w.fail(err)
		}
		rw.Rewrite(msg)
		return 0, false, nil

	case "format":
		if err := checkArgs(op, a, 3, "font", "size", "color"); err != nil {
			return 0, false, w.fail(err)
		}
		s, err := r.shape(op, st.Target)
		if err != nil {
			return 0, false, err
		}
		t, ok := s.(*Text)
		if !ok {
			return 0, false, w.fail(unsupported(op, s))
		}
		font, err := coerceString(op, "font", a[0])
		if err != nil {
			return 0, false, w.fail(err)
		}
		size, err := coerceInt(op, "size", a[1])
		if err != nil {
			return 0, false, w.fail(err)
		}
		return 0, false, t.Format(font, size, a[2])

	case "set", "expect":
		if err := checkArgs(op, a, 2, "attribute", "value"); err != nil {
			return 0, false, w.fail(err)
		}
		name, err := coerceString(op, "attribute", a[0])
		if err != nil {
			return 0, false, w.fail(err)
		}
		type attrs interface {
			Attr(string) (any, bool)
			SetAttr(string, any) error
		}
		var target attrs = w
		if st.Target != "" {
			if target, err = r.shape(op, st.Target); err != nil {
				return 0, false, err
			}
		}
		if st.Op == "set" {
			return 0, false, target.SetAttr(name, a[1])
		}
		got, ok := target.Attr(name)
		if !ok || fmt.Sprint(got) != fmt.Sprint(a[1]) {
			return 0, false, fmt.Errorf("expected %s = %v, got %v", name, a[1], got)
		}
		return 0, false, nil

	case "click", "rightClick":
		v, err := r.ints(op, a, "x", "y")
		if err != nil {
			return 0, false, err
		}
		if st.Op == "click" {
			w.InjectClick(v[0], v[1])
		} else {
			w.InjectRightClick(v[0], v[1])
		}
		return 0, true, nil

	case "drag":
		if err := checkArgs(op, a, 4, "fromX", "fromY", "toX", "toY", "steps"); err != nil {
			return 0, false, w.fail(err)
		}
		if len(a) == 4 {
			a = append(a[:4:4], 1)
		}
		v, err := r.ints(op, a, "fromX", "fromY", "toX", "toY", "steps")
		if err != nil {
			return 0, false, err
		}
		w.InjectDrag(v[0], v[1], v[2], v[3], v[4])
		return 0, true, nil

	case "key":
		if err := checkArgs(op, a, 1, "key"); err != nil {
			return 0, false, w.fail(err)
		}
		key, err := coerceString(op, "key", a[0])
		if err != nil {
			return 0, false, w.fail(err)
		}
		w.InjectKey(key)
		return 0, true, nil

	case "wait":
		v, err := r.ints(op, a, "milliseconds")
		if err != nil {
			return 0, false, err
		}
		if err := requireAtLeast(op, "milliseconds", v[0], 0); err != nil {
			return 0, false, w.fail(err)
		}
		return time.Duration(v[0]) * time.Millisecond, true, nil

	case "screenshot", "close":
		if err := checkArgs(op, a, 0, "label"); err != nil {
			return 0, false, w.fail(err)
		}
		var text []string
		if len(a) == 1 {
			s, err := coerceString(op, "label", a[0])
			if err != nil {
				return 0, false, w.fail(err)
			}
			text = append(text, s)
		}
		if st.Op == "close" {
			return 0, false, w.Close(text...)
		}
		label := ""
		if len(text) == 1 {
			label = text[0]
		}
		_, err := w.Screenshot(label)
		return 0, false, err
	}
	return 0, false, w.fail(newError(op, KindInvalidArgument, "unknown operation %q", st.Op))
}

// ints checks the argument count and coerces every argument to an int.
// geometryArgs names the two integer arguments of the geometry steps.
var geometryArgs = map[string][]string{
	"move":     {"dx", "dy"},
	"relocate": {"x", "y"},
	"resize":   {"width", "height"},
}

func (r *ScriptRunner) ints(op string, args []any, names ...string) ([]int, error) {
	if err := checkArgs(op, args, len(names), names...); err != nil {
		return nil, r.win.fail(err)
	}
	out := make([]int, len(args))
	for i, v := range args {
		n, err := coerceInt(op, names[i], v)
		if err != nil {
			return nil, r.win.fail(err)
		}
		out[i] = n
	}
	return out, nil
}

func (r *ScriptRunner) bind(name string, s Shape, err error) error {
	if err != nil {
		return err
	}
	if name != "" && !isNilShape(s) {
		r.shapes[name] = s
	}
	return nil
}

func (r *ScriptRunner) shape(op, name string) (Shape, error) {
	if name == "" {
		return nil, r.win.fail(missingArgument(op, "target"))
	}
	s, ok := r.shapes[name]
	if !ok {
		return nil, r.win.fail(newError(op, KindInvalidArgument, "no shape named %q", name))
	}
	return s, nil
}

func (r *ScriptRunner) paint(op, target string, a []any) error {
	s, err := r.shape(op, target)
	if err != nil {
		return err
	}
	if l, ok := s.(*Line); ok {
		if err := checkArgs(op, a, 1, "color", "width"); err != nil {
			return r.win.fail(err)
		}
		var opts []PaintOption
		if len(a) == 2 {
			n, err := coerceInt(op, "width", a[1])
			if err != nil {
				return r.win.fail(err)
			}
			opts = append(opts, LineWidth(n))
		}
		return l.Paint(a[0], opts...)
	}
	p, ok := s.(painter)
	if !ok {
		return r.win.fail(unsupported(op, s))
	}
	if err := checkArgs(op, a, 1, "fill", "borderWidth", "borderColor"); err != nil {
		return r.win.fail(err)
	}
	var opts []PaintOption
	if len(a) >= 2 {
		n, err := coerceInt(op, "borderWidth", a[1])
		if err != nil {
			return r.win.fail(err)
		}
		opts = append(opts, BorderWidth(n))
	}
	if len(a) == 3 {
		opts = append(opts, BorderColor(a[2]))
	}
	return p.Paint(a[0], opts...)
}

func unsupported(op string, s Shape) *Error {
	return newError(op, KindInvalidArgument, "a %s does not support this operation", s.Kind())
}
