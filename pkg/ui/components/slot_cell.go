package components

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SlotCell is one tappable slot of the calendar grid
type SlotCell struct {
	widget.BaseWidget
	Heading  string   // day number, empty in time grids
	Lines    []string // event labels drawn in the cell
	Filled   bool     // an event covers the slot
	Muted    bool     // outside the focused month
	Today    bool
	OnTapped func()

	hovered bool
}

// NewSlotCell creates a new SlotCell
func NewSlotCell(heading string, lines []string, onTapped func()) *SlotCell {
	c := &SlotCell{
		Heading:  heading,
		Lines:    lines,
		OnTapped: onTapped,
	}
	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *SlotCell) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.BackgroundColor())
	bg.StrokeColor = theme.InputBorderColor()
	bg.StrokeWidth = 1

	heading := canvas.NewText(c.Heading, theme.ForegroundColor())
	heading.TextSize = theme.CaptionTextSize()
	heading.Alignment = fyne.TextAlignTrailing

	body := widget.NewLabel(strings.Join(c.Lines, "\n"))
	body.Truncation = fyne.TextTruncateEllipsis

	r := &slotCellRenderer{
		cell:    c,
		bg:      bg,
		heading: heading,
		body:    body,
	}
	r.Refresh()
	return r
}

// Tapped implements fyne.Tappable
func (c *SlotCell) Tapped(*fyne.PointEvent) {
	if c.OnTapped != nil {
		c.OnTapped()
	}
}

// MouseIn implements desktop.Hoverable
func (c *SlotCell) MouseIn(*desktop.MouseEvent) {
	c.hovered = true
	c.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (c *SlotCell) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (c *SlotCell) MouseOut() {
	c.hovered = false
	c.Refresh()
}

type slotCellRenderer struct {
	cell    *SlotCell
	bg      *canvas.Rectangle
	heading *canvas.Text
	body    *widget.Label
}

func (r *slotCellRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	pad := theme.Padding()
	headingHeight := float32(0)
	if r.cell.Heading != "" {
		headingHeight = r.heading.MinSize().Height
		r.heading.Move(fyne.NewPos(pad, pad/2))
		r.heading.Resize(fyne.NewSize(size.Width-2*pad, headingHeight))
	}

	r.body.Move(fyne.NewPos(0, headingHeight))
	r.body.Resize(fyne.NewSize(size.Width, size.Height-headingHeight))
}

func (r *slotCellRenderer) MinSize() fyne.Size {
	minHeight := r.body.MinSize().Height
	if r.cell.Heading != "" {
		minHeight += r.heading.MinSize().Height
	}
	return fyne.NewSize(60, minHeight)
}

func (r *slotCellRenderer) Refresh() {
	r.heading.Text = r.cell.Heading
	r.body.SetText(strings.Join(r.cell.Lines, "\n"))

	switch {
	case r.cell.hovered:
		r.bg.FillColor = theme.HoverColor()
	case r.cell.Filled:
		r.bg.FillColor = theme.SelectionColor()
	default:
		r.bg.FillColor = theme.BackgroundColor()
	}

	if r.cell.Today {
		r.bg.StrokeColor = theme.PrimaryColor()
		r.bg.StrokeWidth = 2
		r.heading.TextStyle.Bold = true
	} else {
		r.bg.StrokeColor = theme.InputBorderColor()
		r.bg.StrokeWidth = 1
		r.heading.TextStyle.Bold = false
	}

	if r.cell.Muted {
		r.heading.Color = theme.DisabledColor()
		r.body.Importance = widget.LowImportance
	} else {
		r.heading.Color = theme.ForegroundColor()
		r.body.Importance = widget.MediumImportance
	}

	r.bg.Refresh()
	r.heading.Refresh()
	r.body.Refresh()
}

func (r *slotCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.heading, r.body}
}

func (r *slotCellRenderer) Destroy() {}

func (r *slotCellRenderer) BackgroundColor() color.Color {
	return theme.BackgroundColor()
}
