// Package form implements the login form: an email field, a password field
// and a submit button. Submitting only logs; nothing is validated or sent.
package form

import (
	"image/color"
	"log/slog"

	"chosenoffset.com/lookout/internal/input"
	"chosenoffset.com/lookout/internal/render"
)

var (
	labelColor       = color.RGBA{51, 65, 85, 255}
	fieldColor       = color.RGBA{248, 250, 252, 255}
	fieldFocusColor  = color.RGBA{255, 255, 255, 255}
	borderColor      = color.RGBA{226, 232, 240, 255}
	focusColor       = color.RGBA{14, 165, 233, 255}
	valueColor       = color.RGBA{15, 23, 42, 255}
	placeholderColor = color.RGBA{148, 163, 184, 255}
	buttonColor      = color.RGBA{2, 132, 199, 255}
	buttonHoverColor = color.RGBA{14, 165, 233, 255}
	titleColor       = color.RGBA{15, 23, 42, 255}
	mutedColor       = color.RGBA{71, 85, 105, 255}
)

// Credentials is the key-value state of the form.
type Credentials struct {
	Email    string
	Password string
}

// Form is the login form.
type Form struct {
	Email    *TextField
	Password *TextField

	// OnSubmit runs after the diagnostic log line.
	OnSubmit func(Credentials)

	creds  Credentials
	button *input.Region
	log    *slog.Logger
	ticks  int

	x, y, width float64
}

// New creates a form with empty credentials.
func New(log *slog.Logger) *Form {
	f := &Form{
		Email:    NewTextField("email", "Email", "you@example.com", false),
		Password: NewTextField("password", "Password", "********", true),
		button:   input.NewRegion(input.HitRect{}),
		log:      log.With("component", "form"),
	}
	f.Email.OnChange = f.handleChange
	f.Password.OnChange = f.handleChange
	return f
}

func (f *Form) handleChange(name, value string) {
	switch name {
	case "email":
		f.creds.Email = value
	case "password":
		f.creds.Password = value
	}
}

// Credentials returns the current form values.
func (f *Form) Credentials() Credentials {
	return f.creds
}

// Layout places the form with its top-left corner at (x, y).
func (f *Form) Layout(x, y, width float64) {
	f.x, f.y, f.width = x, y, width

	fieldHeight := 36.0
	fy := y + 110
	f.Email.SetBounds(input.HitRect{X: x, Y: fy, Width: width, Height: fieldHeight})
	fy += fieldHeight + 48
	f.Password.SetBounds(input.HitRect{X: x, Y: fy, Width: width, Height: fieldHeight})
	fy += fieldHeight + 28
	f.button.Rect = input.HitRect{X: x, Y: fy, Width: width, Height: fieldHeight}
}

// ButtonBounds returns the submit button rectangle.
func (f *Form) ButtonBounds() input.HitRect {
	return f.button.Rect
}

func (f *Form) fields() []*TextField {
	return []*TextField{f.Email, f.Password}
}

// Update processes one tick of pointer and keyboard input.
func (f *Form) Update(in render.InputManager) {
	f.ticks++
	cx, cy := in.GetCursorPosition()
	px, py := float64(cx), float64(cy)

	for _, field := range f.fields() {
		field.updatePointer(px, py)
	}
	f.button.Update(px, py)

	// Keys go to the field that held focus at the start of the tick.
	for _, field := range f.fields() {
		field.updateKeys(in)
	}

	if in.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		f.handleClick(px, py)
	}
	if in.IsKeyJustPressed(render.KeyTab) {
		f.cycleFocus()
	}
	if in.IsKeyJustPressed(render.KeyDown) {
		f.stepFocus(1)
	}
	if in.IsKeyJustPressed(render.KeyUp) {
		f.stepFocus(-1)
	}
	if in.IsKeyJustPressed(render.KeyEnter) && (f.Email.Focused() || f.Password.Focused()) {
		f.Submit()
	}
}

func (f *Form) handleClick(x, y float64) {
	if f.button.Rect.Contains(x, y) {
		f.Submit()
		return
	}
	var target *TextField
	for _, field := range f.fields() {
		if field.Bounds().Contains(x, y) {
			target = field
		}
	}
	f.focus(target)
}

func (f *Form) cycleFocus() {
	switch {
	case f.Email.Focused():
		f.focus(f.Password)
	case f.Password.Focused():
		f.focus(nil)
	default:
		f.focus(f.Email)
	}
}

// stepFocus moves focus to the neighbouring field without wrapping. With
// nothing focused, Down picks the first field and Up the last.
func (f *Form) stepFocus(delta int) {
	fields := f.fields()
	current := -1
	for i, field := range fields {
		if field.Focused() {
			current = i
		}
	}
	next := current + delta
	if current < 0 && delta < 0 {
		next = len(fields) - 1
	}
	if next < 0 || next >= len(fields) {
		return
	}
	f.focus(fields[next])
}

// focus moves focus to target, blurring every other field first. nil blurs all.
func (f *Form) focus(target *TextField) {
	for _, field := range f.fields() {
		if field != target {
			field.Blur()
		}
	}
	if target != nil {
		target.Focus()
	}
}

// BlurAll removes focus from every field.
func (f *Form) BlurAll() {
	f.focus(nil)
}

// Submit logs the submission. The password itself is never logged.
func (f *Form) Submit() {
	f.log.Info("login form submitted", "email", f.creds.Email, "passwordLength", len(f.creds.Password))
	if f.OnSubmit != nil {
		f.OnSubmit(f.creds)
	}
}

// Draw renders the heading, fields and button.
func (f *Form) Draw(r render.Renderer, screen render.Image) {
	r.DrawText(screen, "Login", int(f.x), int(f.y), titleColor, 2.0)
	r.DrawText(screen, "Enter your credentials to access your account.", int(f.x), int(f.y)+36, mutedColor, 1.0)

	cursorVisible := (f.ticks/30)%2 == 0
	for _, field := range f.fields() {
		field.Draw(r, screen, cursorVisible)
	}

	b := f.button.Rect
	clr := buttonColor
	if f.button.Hovered() {
		clr = buttonHoverColor
	}
	r.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), clr)
	label := "Sign In"
	lw, lh := r.MeasureText(label, 1.0)
	r.DrawText(screen, label, int(b.X+(b.Width-float64(lw))/2), int(b.Y+(b.Height-float64(lh))/2), color.White, 1.0)

	r.DrawText(screen, "Don't have an account yet? Create Account", int(b.X), int(b.Y+b.Height)+16, mutedColor, 1.0)
}
