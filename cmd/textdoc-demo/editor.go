package main

import (
	"fmt"
	"unicode/utf16"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"github.com/rs/zerolog"

	"github.com/quindle/textdoc/internal/document"
	"github.com/quindle/textdoc/internal/document/selection"
	"github.com/quindle/textdoc/internal/document/textstore"
)

// Editor is a minimal terminal frontend over a document. It exists to
// exercise the document core end to end: selections in all three modes,
// grouped undo, dirty gutters and bracket matching.
type Editor struct {
	doc    *document.Document
	layout *GridLayout
	screen tcell.Screen
	cfg    Config
	log    zerolog.Logger

	topLine int
	status  string
	quit    bool
}

// NewEditor creates an editor over the document.
func NewEditor(d *document.Document, cfg Config, log zerolog.Logger) (*Editor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Editor{
		doc:    d,
		layout: NewGridLayout(d),
		screen: screen,
		cfg:    cfg,
		log:    log,
	}, nil
}

// Run initializes the terminal and processes events until quit.
func (e *Editor) Run() error {
	if err := e.screen.Init(); err != nil {
		return err
	}
	defer e.screen.Fini()
	e.screen.EnablePaste()

	e.doc.OnDirtyStateChanged(func(ev document.DirtyStateChangedEvent) {
		e.log.Debug().Bool("dirty", ev.Dirty).Msg("dirty state changed")
	})

	for !e.quit {
		e.draw()
		ev := e.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventKey:
			e.handleKey(ev)
		}
	}
	return nil
}

func (e *Editor) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		e.quit = true
	case tcell.KeyCtrlS:
		if err := e.doc.SetSavedState(); err != nil {
			e.status = err.Error()
		} else {
			e.status = "saved state set"
		}
	case tcell.KeyCtrlZ:
		e.history(e.doc.Undo, "undo")
	case tcell.KeyCtrlY:
		e.history(e.doc.Redo, "redo")
	case tcell.KeyCtrlB:
		e.matchBracket()
	case tcell.KeyCtrlL:
		e.cycleMode()
	case tcell.KeyEnter:
		e.insert(e.doc.EolCode())
	case tcell.KeyTab:
		e.insert("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.deleteBackward()
	case tcell.KeyDelete:
		e.deleteForward()
	case tcell.KeyLeft:
		target := e.doc.PrevGraphemeClusterIndex(e.doc.CaretIndex())
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			target = e.prevWordIndex(e.doc.CaretIndex())
		}
		e.moveCaret(target, ev.Modifiers()&tcell.ModShift != 0)
	case tcell.KeyRight:
		target := e.doc.NextGraphemeClusterIndex(e.doc.CaretIndex())
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			target = e.nextWordIndex(e.doc.CaretIndex())
		}
		e.moveCaret(target, ev.Modifiers()&tcell.ModShift != 0)
	case tcell.KeyUp:
		e.moveVertical(-1, ev.Modifiers()&tcell.ModShift != 0)
	case tcell.KeyDown:
		e.moveVertical(1, ev.Modifiers()&tcell.ModShift != 0)
	case tcell.KeyHome:
		e.moveCaret(e.layout.PositionToIndex(0, e.caretRow()), ev.Modifiers()&tcell.ModShift != 0)
	case tcell.KeyEnd:
		y := e.caretRow()
		if n, err := e.doc.LineLength(y); err == nil {
			head, _ := e.doc.LineHead(y)
			e.moveCaret(head+n, ev.Modifiers()&tcell.ModShift != 0)
		}
	case tcell.KeyRune:
		e.insert(string(ev.Rune()))
	}
}

func (e *Editor) caretRow() int {
	_, y := e.layout.IndexToPosition(e.doc.CaretIndex())
	return y
}

// insert types text over the selection. A rectangle selection receives the
// text on every row, grouped so one undo reverses all of it.
func (e *Editor) insert(text string) {
	if rects := e.doc.RectSelectRanges(); len(rects) > 0 {
		scope := e.doc.UndoScope()
		// Back to front so earlier ranges stay valid while later ones change.
		for i := len(rects) - 1; i >= 0; i-- {
			if err := e.doc.Replace(text, rects[i].Start, rects[i].End); err != nil {
				e.status = err.Error()
				break
			}
		}
		scope.End()
		e.exitRectMode()
		return
	}
	begin, end := e.doc.GetSelection()
	if err := e.doc.Replace(text, begin, end); err != nil {
		e.status = err.Error()
		return
	}
	caret := begin + textstore.UTF16Len(text)
	_ = e.doc.SetSelection(caret, caret)
}

func (e *Editor) deleteBackward() {
	if rects := e.doc.RectSelectRanges(); len(rects) > 0 {
		e.deleteRects(rects)
		return
	}
	begin, end := e.doc.GetSelection()
	if begin == end {
		if begin == 0 {
			return
		}
		begin = e.doc.PrevGraphemeClusterIndex(begin)
	}
	if err := e.doc.Replace("", begin, end); err != nil {
		e.status = err.Error()
		return
	}
	_ = e.doc.SetSelection(begin, begin)
}

func (e *Editor) deleteForward() {
	if rects := e.doc.RectSelectRanges(); len(rects) > 0 {
		e.deleteRects(rects)
		return
	}
	begin, end := e.doc.GetSelection()
	if begin == end {
		if end >= e.doc.Length() {
			return
		}
		end = e.doc.NextGraphemeClusterIndex(end)
	}
	if err := e.doc.Replace("", begin, end); err != nil {
		e.status = err.Error()
		return
	}
	_ = e.doc.SetSelection(begin, begin)
}

// deleteRects removes every sub-range of a rectangle selection as one undo
// unit.
func (e *Editor) deleteRects(rects []textstore.Range) {
	scope := e.doc.UndoScope()
	for i := len(rects) - 1; i >= 0; i-- {
		if err := e.doc.Replace("", rects[i].Start, rects[i].End); err != nil {
			e.status = err.Error()
			break
		}
	}
	scope.End()
	e.exitRectMode()
}

func (e *Editor) exitRectMode() {
	if e.doc.SelectionMode() == selection.ModeRectangle {
		e.doc.SetSelectionMode(selection.ModeNormal)
		caret := e.doc.CaretIndex()
		_ = e.doc.SetSelection(caret, caret)
	}
}

func (e *Editor) moveCaret(index int, extend bool) {
	anchor := index
	if extend {
		anchor = e.doc.AnchorIndex()
	}
	if err := e.doc.SetSelectionWith(anchor, index, e.layout); err != nil {
		e.status = err.Error()
	}
}

func (e *Editor) moveVertical(dy int, extend bool) {
	x, y := e.layout.IndexToPosition(e.doc.CaretIndex())
	e.moveCaret(e.layout.PositionToIndex(x, y+dy), extend)
}

func (e *Editor) cycleMode() {
	var next selection.Mode
	switch e.doc.SelectionMode() {
	case selection.ModeNormal:
		next = selection.ModeLine
	case selection.ModeLine:
		next = selection.ModeRectangle
	default:
		next = selection.ModeNormal
	}
	e.doc.SetSelectionMode(next)
	// Re-place the selection so mode-specific expansion applies.
	if err := e.doc.SetSelectionWith(e.doc.AnchorIndex(), e.doc.CaretIndex(), e.layout); err != nil {
		e.status = err.Error()
	} else {
		e.status = "selection mode: " + next.String()
	}
}

func (e *Editor) history(step func() error, name string) {
	if err := step(); err != nil {
		e.status = err.Error()
		return
	}
	e.status = name
}

func (e *Editor) matchBracket() {
	caret := e.doc.CaretIndex()
	match, err := e.doc.FindMatchedBracket(caret, e.cfg.BracketSearchLimit)
	if err != nil {
		e.status = err.Error()
		return
	}
	if match < 0 {
		e.status = "no matching bracket"
		return
	}
	_ = e.doc.SetSelection(match, match)
	e.status = fmt.Sprintf("matched bracket at %d", match)
}

func (e *Editor) draw() {
	e.screen.Clear()
	width, height := e.screen.Size()
	if height < 2 {
		e.screen.Show()
		return
	}
	textRows := height - 1

	e.scrollToCaret(textRows)

	selBegin, selEnd := e.doc.GetSelection()
	rects := e.doc.RectSelectRanges()

	lines := e.doc.RawLines()
	for row := 0; row < textRows; row++ {
		line := e.topLine + row
		if line >= lines.Count() {
			break
		}
		e.drawGutter(line, row)
		text, err := lines.Text(line)
		if err != nil {
			continue
		}
		head, _ := e.doc.LineHead(line)
		e.drawLine(text, head, row, width, selBegin, selEnd, rects)
	}

	e.drawStatus(height-1, width)

	cx, cy := e.layout.IndexToPosition(e.doc.CaretIndex())
	e.screen.ShowCursor(gutterWidth+cx, cy-e.topLine)
	e.screen.Show()
}

const gutterWidth = 2

// drawGutter paints the per-line dirty marker.
func (e *Editor) drawGutter(line, row int) {
	st, err := e.doc.LineDirtyState(line)
	if err != nil {
		return
	}
	var mark rune
	var style tcell.Style
	switch st {
	case textstore.LineDirty:
		mark, style = '*', tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case textstore.LineSaved:
		mark, style = '|', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	default:
		mark, style = ' ', tcell.StyleDefault
	}
	e.screen.SetContent(0, row, mark, nil, style)
	e.screen.SetContent(1, row, ' ', nil, tcell.StyleDefault)
}

// drawLine paints one line, highlighting the selected code units.
func (e *Editor) drawLine(text string, head, row, width, selBegin, selEnd int, rects []textstore.Range) {
	x := gutterWidth
	off := head
	for _, r := range text {
		if x >= width {
			break
		}
		style := tcell.StyleDefault
		if e.offsetSelected(off, selBegin, selEnd, rects) {
			style = style.Reverse(true)
		}
		if r == '\n' || r == '\r' {
			r = ' '
		}
		if r == '\t' {
			for i := 0; i < e.cfg.TabWidth && x < width; i++ {
				e.screen.SetContent(x, row, ' ', nil, style)
				x++
			}
		} else {
			e.screen.SetContent(x, row, r, nil, style)
			x++
		}
		off += utf16.RuneLen(r)
	}
}

func (e *Editor) offsetSelected(off, selBegin, selEnd int, rects []textstore.Range) bool {
	if len(rects) > 0 {
		for _, r := range rects {
			if r.Contains(off) {
				return true
			}
		}
		return false
	}
	return off >= selBegin && off < selEnd
}

func (e *Editor) drawStatus(row, width int) {
	dirty := " "
	if e.doc.IsDirty() {
		dirty = "*"
	}
	cx, cy := e.layout.IndexToPosition(e.doc.CaretIndex())
	msg := fmt.Sprintf("%s %d:%d  [%s]  %s", dirty, cy+1, cx, e.doc.SelectionMode(), e.status)
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(msg) {
			r = rune(msg[x])
		}
		e.screen.SetContent(x, row, r, nil, style)
	}
}

// nextWordIndex returns the first word boundary after index, per UAX #29
// word segmentation, in code units.
func (e *Editor) nextWordIndex(index int) int {
	rest := e.doc.Text()
	off := 0
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		off += textstore.UTF16Len(word)
		if off > index {
			return off
		}
	}
	return e.doc.Length()
}

// prevWordIndex returns the last word boundary at or before index.
func (e *Editor) prevWordIndex(index int) int {
	rest := e.doc.Text()
	off := 0
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		next := off + textstore.UTF16Len(word)
		if next >= index {
			return off
		}
		off = next
	}
	return off
}

func (e *Editor) scrollToCaret(textRows int) {
	_, cy := e.layout.IndexToPosition(e.doc.CaretIndex())
	if cy < e.topLine {
		e.topLine = cy
	}
	if cy >= e.topLine+textRows {
		e.topLine = cy - textRows + 1
	}
}
