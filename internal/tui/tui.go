// Package tui is the interactive presentation layer. It only translates key
// presses into session events and draws session frames.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/session"
	"github.com/idilsaglam/packlist/internal/ui"
)

// footerLines is the space reserved below the list: blank, sort label,
// progress bar, message, and the panel border.
const footerLines = 6

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ item model.Item }

func (i listItem) Title() string       { return ui.ItemText(i.item) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Description }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+ui.ItemLine(it.item))
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeConfirmClear
)

// Model is the Bubble Tea model for the packing list.
type Model struct {
	sess *session.Session
	log  *zap.Logger
	keys keyMap

	list   list.Model
	mode   mode
	input  textinput.Model
	qty    int
	addErr string

	width, height int
}

// New builds the model over sess. The session stays the single owner of state.
func New(sess *session.Session, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.KeyMap.Quit = keys.Quit
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Luggage"
	ti.CharLimit = 200

	m := Model{
		sess:   sess,
		log:    log,
		keys:   keys,
		list:   l,
		input:  ti,
		qty:    model.MinQuantity,
		width:  80,
		height: 24,
	}
	m.resize()
	m.refresh()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(sess *session.Session, log *zap.Logger) error {
	p := tea.NewProgram(New(sess, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeConfirmClear:
		return m.updateConfirm(msg)
	}
	return m.updateBrowse(msg)
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	// While typing a filter every key belongs to the list.
	if !isKey || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(kmsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(kmsg, m.keys.Add):
		m.mode = modeAdd
		m.addErr = ""
		m.qty = model.MinQuantity
		m.input.SetValue("")
		m.resize()
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(kmsg, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			cmd := m.dispatch(session.Toggle{ID: it.ID})
			return m, cmd
		}
		return m, nil
	case key.Matches(kmsg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			cmd := m.dispatch(session.Delete{ID: it.ID})
			return m, cmd
		}
		return m, nil
	case key.Matches(kmsg, m.keys.Sort):
		cmd := m.dispatch(session.ChangeSort{Order: m.sess.Order().Next()})
		return m, cmd
	case key.Matches(kmsg, m.keys.Clear):
		if len(m.list.Items()) > 0 {
			m.mode = modeConfirmClear
			m.resize()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, m.keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(kmsg, m.keys.Submit):
			desc := strings.TrimSpace(m.input.Value())
			if desc == "" {
				m.addErr = "Description cannot be empty"
				return m, nil
			}
			cmd := m.dispatch(session.Add{Description: desc, Quantity: m.qty})
			m.closeForm()
			return m, cmd
		case key.Matches(kmsg, m.keys.Cancel):
			m.closeForm()
			return m, nil
		case key.Matches(kmsg, m.keys.QtyUp):
			m.qty = model.ClampQuantity(m.qty + 1)
			return m, nil
		case key.Matches(kmsg, m.keys.QtyDown):
			m.qty = model.ClampQuantity(m.qty - 1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(kmsg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	m.mode = modeBrowse
	m.resize()
	if key.Matches(kmsg, m.keys.Confirm) {
		cmd := m.dispatch(session.Clear{})
		return m, cmd
	}
	return m, nil
}

func (m *Model) closeForm() {
	m.mode = modeBrowse
	m.addErr = ""
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

// dispatch forwards ev and redraws from a fresh frame when something changed.
func (m *Model) dispatch(ev session.Event) tea.Cmd {
	if !m.sess.Dispatch(ev) {
		m.log.Debug("event had no effect", zap.String("event", fmt.Sprintf("%T", ev)))
		return nil
	}
	return m.refresh()
}

// refresh reloads the list from the session, keeping the cursor on the same item.
func (m *Model) refresh() tea.Cmd {
	f := m.sess.Frame()

	var keep string
	if it, ok := m.selected(); ok {
		keep = it.ID
	}

	items := make([]list.Item, 0, len(f.Items))
	sel := -1
	for i, it := range f.Items {
		items = append(items, listItem{it})
		if it.ID == keep {
			sel = i
		}
	}
	cmd := m.list.SetItems(items)
	if m.list.FilterState() == list.Unfiltered {
		switch {
		case sel >= 0:
			m.list.Select(sel)
		case len(items) > 0 && m.list.Index() >= len(items):
			m.list.Select(len(items) - 1)
		}
	}
	m.list.Title = ui.Header(f.Stats)
	return cmd
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return it.item, true
}

func (m *Model) resize() {
	h := m.height - footerLines
	switch m.mode {
	case modeAdd:
		h -= 5
	case modeConfirmClear:
		h -= 2
	}
	if h < 3 {
		h = 3
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.list.SetSize(w, h)
}

// View implements tea.Model.
func (m Model) View() string {
	t := ui.Current()
	f := m.sess.Frame()

	lines := []string{m.list.View()}
	switch m.mode {
	case modeAdd:
		title := "What do you need for your trip?"
		if m.addErr != "" {
			title += "  " + t.Error.Render(m.addErr)
		}
		qty := "Quantity: " + quantitySelector(m.qty) + "   " +
			t.Help.Render("↑/↓ quantity • enter add • esc cancel")
		lines = append(lines, ui.Panel([]string{title, m.input.View(), qty}))
	case modeConfirmClear:
		lines = append(lines, t.Error.Render("Are you sure you want to delete all items? (y/N)"))
	}

	lines = append(lines, "", t.Accent.Render(f.Order.Label()))
	lines = append(lines, ui.Footer(f.Stats, 28)...)
	return ui.Panel(lines)
}

// quantitySelector shows every option with the chosen one highlighted.
func quantitySelector(chosen int) string {
	t := ui.Current()
	opts := model.QuantityOptions()
	parts := make([]string, 0, len(opts))
	for _, q := range opts {
		if q == chosen {
			parts = append(parts, t.Selected.Render(fmt.Sprintf("[%d]", q)))
			continue
		}
		parts = append(parts, t.Muted.Render(fmt.Sprint(q)))
	}
	return strings.Join(parts, " ")
}
