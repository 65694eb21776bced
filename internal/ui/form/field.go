package form

import (
	"image/color"
	"strings"

	"chosenoffset.com/lookout/internal/input"
	"chosenoffset.com/lookout/internal/render"
)

// TextField is a single-line text input with hover, focus and key callbacks.
type TextField struct {
	Name        string
	Label       string
	Placeholder string
	Masked      bool

	Value string

	// Callbacks, all optional
	OnPointerEnter func()
	OnPointerLeave func()
	OnFocus        func()
	OnBlur         func()
	OnKeyDown      func()
	OnKeyUp        func()
	OnInput        func()
	OnChange       func(name, value string)

	region  *input.Region
	focused bool
	runes   []rune
}

// NewTextField creates a field; bounds are set by the form layout.
func NewTextField(name, label, placeholder string, masked bool) *TextField {
	f := &TextField{
		Name:        name,
		Label:       label,
		Placeholder: placeholder,
		Masked:      masked,
		region:      input.NewRegion(input.HitRect{}),
	}
	f.region.OnEnter = func() {
		if f.OnPointerEnter != nil {
			f.OnPointerEnter()
		}
	}
	f.region.OnLeave = func() {
		if f.OnPointerLeave != nil {
			f.OnPointerLeave()
		}
	}
	return f
}

// Bounds returns the input box rectangle.
func (f *TextField) Bounds() input.HitRect {
	return f.region.Rect
}

// SetBounds moves the input box.
func (f *TextField) SetBounds(r input.HitRect) {
	f.region.Rect = r
}

// Focused reports whether the field receives keyboard input.
func (f *TextField) Focused() bool {
	return f.focused
}

// Hovered reports whether the pointer is over the field.
func (f *TextField) Hovered() bool {
	return f.region.Hovered()
}

// Focus gives the field keyboard focus.
func (f *TextField) Focus() {
	if f.focused {
		return
	}
	f.focused = true
	if f.OnFocus != nil {
		f.OnFocus()
	}
}

// Blur removes keyboard focus.
func (f *TextField) Blur() {
	if !f.focused {
		return
	}
	f.focused = false
	if f.OnBlur != nil {
		f.OnBlur()
	}
}

// updatePointer feeds the cursor position to the hover region.
func (f *TextField) updatePointer(x, y float64) {
	f.region.Update(x, y)
}

// updateKeys handles this tick's keyboard input when focused.
func (f *TextField) updateKeys(in render.InputManager) {
	if !f.focused {
		return
	}

	if in.AnyKeyJustPressed() && f.OnKeyDown != nil {
		f.OnKeyDown()
	}

	changed := false
	f.runes = in.AppendInputChars(f.runes[:0])
	if len(f.runes) > 0 {
		f.Value += string(f.runes)
		changed = true
	}
	if in.IsKeyJustPressed(render.KeyBackspace) && f.Value != "" {
		value := []rune(f.Value)
		f.Value = string(value[:len(value)-1])
		changed = true
	}
	if changed {
		if f.OnInput != nil {
			f.OnInput()
		}
		if f.OnChange != nil {
			f.OnChange(f.Name, f.Value)
		}
	}

	if in.AnyKeyJustReleased() && f.OnKeyUp != nil {
		f.OnKeyUp()
	}
}

// display returns the text drawn inside the box.
func (f *TextField) display() (string, bool) {
	if f.Value == "" {
		return f.Placeholder, true
	}
	if f.Masked {
		return strings.Repeat("*", len([]rune(f.Value))), false
	}
	return f.Value, false
}

// Draw renders the label, the box and its contents.
func (f *TextField) Draw(r render.Renderer, screen render.Image, cursorVisible bool) {
	b := f.region.Rect
	r.DrawText(screen, f.Label, int(b.X), int(b.Y)-20, labelColor, 1.0)

	bg := fieldColor
	border := borderColor
	if f.focused {
		bg = fieldFocusColor
		border = focusColor
	}
	r.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), bg)
	r.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 2, border)

	text, placeholder := f.display()
	clr := color.Color(valueColor)
	if placeholder {
		clr = placeholderColor
	}
	_, th := r.MeasureText(text, 1.0)
	ty := int(b.Y + (b.Height-float64(th))/2)
	r.DrawText(screen, text, int(b.X)+10, ty, clr, 1.0)

	if f.focused && cursorVisible {
		w := 0
		if !placeholder {
			w, _ = r.MeasureText(text, 1.0)
		}
		cx := float32(b.X) + 10 + float32(w) + 1
		r.StrokeLine(screen, cx, float32(ty), cx, float32(ty+th), 1, valueColor)
	}
}
