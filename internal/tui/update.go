package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/luxe/internal/session"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

var sectionKeys = map[string]session.Section{
	"1": session.SectionHome,
	"2": session.SectionSearch,
	"3": session.SectionTryon,
	"4": session.SectionResults,
	"5": session.SectionProfile,
	"h": session.SectionHome,
	"s": session.SectionSearch,
	"t": session.SectionTryon,
	"r": session.SectionResults,
	"p": session.SectionProfile,
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(20, msg.Width-12)
		return m.refreshThumbnail(upload.SlotBanner), nil

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.handlePromptKeys(msg)
		}
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.spinning() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Upload messages
	case ImageEncodedMsg:
		m.log.Upload(string(msg.Slot), msg.Image.Name, msg.Image.MIMEType, msg.Image.Size).Debug("image encoded")
		next, cmd := m.dispatch(session.ImageEncoded{Slot: msg.Slot, Image: msg.Image})
		return next.refreshThumbnail(msg.Slot), cmd

	case ImageErrorMsg:
		m.log.Error(msg.Error, "image could not be read")
		return m.dispatch(session.ImageFailed{Slot: msg.Slot, Err: msg.Error})

	// Remote call messages
	case SearchCompleteMsg:
		return m.settle(msg.Token, session.SearchSucceeded{Token: msg.Token, Response: msg.Response})

	case SearchErrorMsg:
		return m.settle(msg.Token, session.SearchFailed{Token: msg.Token, Err: msg.Error})

	case TryonCompleteMsg:
		return m.settle(msg.Token, session.TryonSucceeded{Token: msg.Token, Response: msg.Response})

	case TryonErrorMsg:
		return m.settle(msg.Token, session.TryonFailed{Token: msg.Token, Err: msg.Error})

	// History messages
	case HistoryLoadedMsg:
		m.entries = msg.Entries
		m.historyLoaded = true
		m.historyErr = ""
		return m, nil

	case HistoryErrorMsg:
		m.historyLoaded = true
		if msg.Error != nil {
			m.historyErr = msg.Error.Error()
			m.log.Error(msg.Error, "history could not be loaded")
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keys shared by every screen, then the screen's own
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "x", "esc":
		return m.dispatch(session.DismissNotice{})
	}

	if sec, ok := sectionKeys[key]; ok {
		return m.dispatch(session.Navigate{To: sec})
	}

	switch m.state.Active {
	case session.SectionHome:
		return m.handleHomeKeys(key)
	case session.SectionSearch:
		return m.handleSearchKeys(key)
	case session.SectionTryon:
		return m.handleTryonKeys(key)
	case session.SectionResults:
		return m.handleResultsKeys(key)
	case session.SectionProfile:
		return m.handleProfileKeys(key)
	default:
		return m, nil
	}
}

func (m Model) handleHomeKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter":
		return m.dispatch(session.Navigate{To: session.SectionSearch})
	case "f":
		return m.dispatch(session.Navigate{To: session.SectionTryon})
	}
	return m, nil
}

func (m Model) handleSearchKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "a":
		return m.openPathPrompt(upload.SlotSearch)
	case "A":
		return m.dispatch(session.ClearSlot{Slot: upload.SlotSearch})
	case "y":
		return m.cycleClothingType(1)
	case "Y":
		return m.dispatch(session.SelectClothingType{Type: session.ClothingNone})
	case "enter":
		return m.dispatch(session.SubmitSearch{})
	}
	return m, nil
}

func (m Model) handleTryonKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "a":
		return m.openPathPrompt(upload.SlotPerson)
	case "A":
		return m.dispatch(session.ClearSlot{Slot: upload.SlotPerson})
	case "c":
		return m.openPathPrompt(upload.SlotClothes)
	case "C":
		return m.dispatch(session.ClearSlot{Slot: upload.SlotClothes})
	case "y", "right":
		return m.cycleClothingType(1)
	case "left":
		return m.cycleClothingType(-1)
	case "Y":
		return m.dispatch(session.SelectClothingType{Type: session.ClothingNone})
	case "enter":
		return m.dispatch(session.SubmitTryon{})
	}
	return m, nil
}

func (m Model) handleResultsKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "enter":
		return m.dispatch(session.NewSearch{})
	}
	return m, nil
}

func (m Model) handleProfileKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "tab":
		tab := session.TabSettings
		if m.state.ProfileTab == session.TabSettings {
			tab = session.TabHistory
		}
		return m.dispatch(session.SelectProfileTab{Tab: tab})
	}

	if m.state.ProfileTab != session.TabSettings {
		return m, nil
	}

	field := settingFields[m.settingsCursor]
	switch key {
	case "up", "k":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
		return m, nil
	case "down", "j":
		if m.settingsCursor < len(settingFields)-1 {
			m.settingsCursor++
		}
		return m, nil
	case "left", "right":
		if !field.cyclable() {
			return m, nil
		}
		dir := 1
		if key == "left" {
			dir = -1
		}
		return m.dispatch(session.ThemeChanged{Theme: cycleSetting(m.state.Theme, field, dir)})
	case "enter":
		if slot, ok := field.slot(); ok {
			return m.openPathPrompt(slot)
		}
		return m.openTextPrompt(field)
	case "d", "delete", "backspace":
		if slot, ok := field.slot(); ok {
			return m.dispatch(session.ClearSlot{Slot: slot})
		}
	}
	return m, nil
}

func (m Model) cycleClothingType(dir int) (tea.Model, tea.Cmd) {
	next := step(session.ClothingTypes, m.state.ClothingType, dir)
	return m.dispatch(session.SelectClothingType{Type: next})
}

func (m Model) openPathPrompt(slot upload.Slot) (tea.Model, tea.Cmd) {
	m.prompt = promptPath
	m.promptSlot = slot
	m.input.Reset()
	m.input.Placeholder = "path to image, e.g. ~/Pictures/look.jpg"
	m.input.Prompt = uploadPromptLabel(slot) + ": "
	return m, m.input.Focus()
}

func (m Model) openTextPrompt(field settingField) (tea.Model, tea.Cmd) {
	m.prompt = promptText
	m.promptField = field
	m.input.Reset()
	m.input.Placeholder = ""
	m.input.Prompt = field.label() + ": "
	m.input.SetValue(field.value(m.state.Theme))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) closePrompt() Model {
	m.prompt = promptNone
	m.input.Blur()
	m.input.Reset()
	return m
}

// handlePromptKeys routes keys to the focused prompt
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.closePrompt(), nil
	case "enter":
		value := m.input.Value()
		mode, slot, field := m.prompt, m.promptSlot, m.promptField
		m = m.closePrompt()

		switch mode {
		case promptPath:
			path := upload.CleanPath(value)
			if strings.TrimSpace(path) == "" {
				return m, nil
			}
			return m, encodeCmd(m.ctx, m.encoder, slot, path)
		case promptText:
			cfg, err := applySetting(m.state.Theme, field, value)
			if err != nil {
				return m.dispatch(session.Invalid{Message: err.Error()})
			}
			return m.dispatch(session.ThemeChanged{Theme: cfg})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func uploadPromptLabel(slot upload.Slot) string {
	switch slot {
	case upload.SlotSearch:
		return "Photo to search"
	case upload.SlotPerson:
		return "Your photo"
	case upload.SlotClothes:
		return "Clothing photo"
	case upload.SlotLogo:
		return "Logo"
	case upload.SlotBanner:
		return "Banner"
	default:
		return "File"
	}
}
