// Package sendmodal decides whether the send modal is open, what it is titled, and
// which shell presents it. All state is derived from the page URL plus the last
// label the visitor saw.
package sendmodal

import (
	"html/template"

	"askfun/internal/catalog"
)

// Modal drives the send picker and its modal shell.
type Modal struct {
	nav     Navigation
	catalog *catalog.Catalog
	labels  LabelMemory
}

// NewModal creates a modal over the given navigation binding and catalog.
func NewModal(nav Navigation, c *catalog.Catalog, labels LabelMemory) *Modal {
	if labels == nil {
		labels = &MemoryLabels{}
	}
	return &Modal{nav: nav, catalog: c, labels: labels}
}

// Selection parses the current send value.
func (m *Modal) Selection() Selection {
	return ParseSelection(m.nav.Send(), m.catalog)
}

// IsOpen reports whether a send value is present.
func (m *Modal) IsOpen() bool {
	return m.nav.Send() != ""
}

// Title is the current label while open and the previous label while closed.
func (m *Modal) Title() string {
	if sel := m.Selection(); sel.Present() {
		return sel.Label()
	}
	return m.labels.PreviousLabel()
}

// OnOpenChange is called by a shell for every open or close intent and returns
// whether the shell should stay open. Closing remembers the outgoing label and
// then clears send; opening changes nothing.
func (m *Modal) OnOpenChange(open bool) bool {
	if open {
		return true
	}
	if sel := m.Selection(); sel.Present() {
		m.labels.SetPreviousLabel(sel.Label())
	}
	m.nav.SetSend("")
	return false
}

// OptionEntry is one row of the send picker.
type OptionEntry struct {
	catalog.MessageOption
	Href     string
	Selected bool
	IconSVG  template.HTML
}

// View is everything a template needs to render the picker and modal.
type View struct {
	Open             bool
	Title            string
	Selection        string // "none", "known" or "unknown"
	Shell            string
	ShowsDescription bool
	ShowsCancel      bool
	Send             string
	CloseHref        string
	Options          []OptionEntry
}

// View renders the current state for the given shell.
func (m *Modal) View(shell Shell) View {
	sel := m.Selection()

	options := m.catalog.Options()
	entries := make([]OptionEntry, 0, len(options))
	for _, opt := range options {
		entries = append(entries, OptionEntry{
			MessageOption: opt,
			Href:          m.nav.Href(opt.Key),
			Selected:      sel.Selects(opt.Key),
			IconSVG:       catalog.IconSVG(opt.Icon),
		})
	}

	return View{
		Open:             sel.Present(),
		Title:            m.Title(),
		Selection:        sel.Kind.String(),
		Shell:            shell.Name(),
		ShowsDescription: shell.ShowsDescription(),
		ShowsCancel:      shell.ShowsCancel(),
		Send:             sel.Raw,
		CloseHref:        m.nav.Href(""),
		Options:          entries,
	}
}
