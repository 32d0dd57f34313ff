package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/luxe/internal/history"
	"github.com/alexisbeaulieu97/luxe/internal/session"
	"github.com/alexisbeaulieu97/luxe/internal/theme"
	"github.com/alexisbeaulieu97/luxe/internal/ui"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

const (
	previewWidth  = 24
	previewHeight = 8
)

type feature struct {
	title string
	body  string
}

var features = []feature{
	{title: "Smart search", body: "Find similar pieces from a single photo in seconds"},
	{title: "AI try-on", body: "See how clothes look on you before you buy"},
	{title: "Instant", body: "Results in 2-3 seconds with match accuracy"},
}

// View renders the current model state
func (m Model) View() string {
	ctx := ui.NewContext(m.state.Theme, m.width)

	var content strings.Builder
	content.WriteString(m.renderHeader(ctx))
	content.WriteString("\n\n")

	if n := m.state.Notice; n != nil {
		content.WriteString(renderNotice(ctx, n))
		content.WriteString("\n\n")
	}

	switch m.state.Active {
	case session.SectionHome:
		content.WriteString(m.renderHome(ctx))
	case session.SectionSearch:
		content.WriteString(m.renderSearch(ctx))
	case session.SectionTryon:
		content.WriteString(m.renderTryon(ctx))
	case session.SectionResults:
		content.WriteString(m.renderResults(ctx))
	case session.SectionProfile:
		content.WriteString(m.renderProfile(ctx))
	}

	if m.prompt != promptNone {
		content.WriteString("\n\n")
		content.WriteString(m.input.View())
		content.WriteString("\n")
		content.WriteString(helpStyle.Render("enter confirm • esc cancel"))
	}

	content.WriteString("\n\n")
	content.WriteString(m.renderFooter(ctx))

	return ctx.Styles.Page.Width(m.width).Render(content.String())
}

// renderHeader renders the brand mark and the navigation bar
func (m Model) renderHeader(ctx ui.RenderContext) string {
	mark := ctx.Styles.Title.Render(brand)
	if logo := m.state.Theme.CustomLogo; logo != nil {
		mark = ctx.Styles.Title.Render("◆ "+theme.Sanitize(logo.Name)) + " " + ctx.Styles.Muted.Render(brand)
	}
	mark = lipgloss.PlaceHorizontal(max(m.width, lipgloss.Width(mark)), ctx.Styles.LogoAlign, mark)

	var nav []string
	for i, sec := range session.Sections {
		label := fmt.Sprintf("%d %s", i+1, sec.Title())
		if sec == m.state.Active {
			nav = append(nav, navActiveStyle.Inherit(ctx.Styles.Accent).Render(label))
			continue
		}
		nav = append(nav, navItemStyle.Render(label))
	}

	return mark + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, nav...)
}

func renderNotice(ctx ui.RenderContext, n *session.Notice) string {
	switch n.Kind {
	case session.NoticeRequest:
		return ui.ErrorAlert(n.Message).WithTitle("Request failed").ViewWithContext(ctx)
	case session.NoticeDecode:
		return ui.ErrorAlert(n.Message).WithTitle("Upload failed").ViewWithContext(ctx)
	default:
		return ui.WarningAlert(n.Message).ViewWithContext(ctx)
	}
}

func (m Model) renderHome(ctx ui.RenderContext) string {
	cfg := m.state.Theme
	var b strings.Builder

	if banner := cfg.HeroBanner; banner != nil {
		b.WriteString(ui.NewPreview(*banner).WithThumbnail(m.thumbnailFor(upload.SlotBanner, *banner)).ViewWithContext(ctx))
		b.WriteString("\n\n")
	}

	b.WriteString(ctx.Styles.Title.Render(theme.Sanitize(cfg.HeroTitle)))
	b.WriteString("\n")
	b.WriteString(ctx.Styles.Subtitle.Render(theme.Sanitize(cfg.HeroSubtitle)))
	b.WriteString("\n\n")
	b.WriteString(ui.HStack(ctx, 2,
		ui.NewButton(cfg.SearchButtonLabel).WithHint("enter"),
		ui.NewButton(cfg.TryonButtonLabel).WithHint("f").Secondary(),
	))
	b.WriteString("\n\n")

	cards := make([]ui.Renderable, 0, len(features))
	for _, f := range features {
		cards = append(cards, ui.NewCard(f.title, f.body))
	}
	b.WriteString(ui.Grid(ctx, 1, cards...))
	return b.String()
}

func (m Model) renderSearch(ctx ui.RenderContext) string {
	st := m.state
	var b strings.Builder

	b.WriteString(ctx.Styles.Title.Render("Search by photo"))
	b.WriteString("\n")
	b.WriteString(ctx.Styles.Subtitle.Render("Upload a photo of the piece you want to find"))
	b.WriteString("\n\n")

	b.WriteString(m.renderSlot(ctx, "Photo", upload.SlotSearch, "a"))
	b.WriteString("\n")
	b.WriteString(renderClothingType(ctx, st.ClothingType))
	b.WriteString("\n\n")

	if st.InFlight(session.RequestSearch) != nil {
		b.WriteString(m.spinner.View() + " Searching…")
	} else {
		b.WriteString(ui.NewButton(st.Theme.SearchButtonLabel).
			WithHint("enter").
			WithDisabled(!session.CanSubmitSearch(st)).
			ViewWithContext(ctx))
	}

	if n := len(st.SearchResults); n > 0 {
		b.WriteString("\n\n")
		b.WriteString(ctx.Styles.Muted.Render(fmt.Sprintf("[r] last results (%d)", n)))
	}
	return b.String()
}

func (m Model) renderTryon(ctx ui.RenderContext) string {
	st := m.state
	var b strings.Builder

	b.WriteString(ctx.Styles.Title.Render("Virtual try-on"))
	b.WriteString("\n")
	b.WriteString(ctx.Styles.Subtitle.Render("Upload your photo and a clothing item"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSlot(ctx, "Your photo", upload.SlotPerson, "a"),
		"  ",
		m.renderSlot(ctx, "Clothing", upload.SlotClothes, "c"),
	))
	b.WriteString("\n")
	b.WriteString(renderClothingType(ctx, st.ClothingType))
	b.WriteString("\n\n")

	if st.InFlight(session.RequestTryon) != nil {
		b.WriteString(m.spinner.View() + " Processing…")
	} else {
		b.WriteString(ui.NewButton(st.Theme.TryonButtonLabel).
			WithHint("enter").
			WithDisabled(!session.CanSubmitTryon(st)).
			ViewWithContext(ctx))
	}

	if url := st.TryonResultURL(); url != "" {
		b.WriteString("\n\n")
		lines := []string{url}
		if st.Tryon.Status != "" {
			lines = append(lines, "Status: "+st.Tryon.Status)
		}
		b.WriteString(ui.NewCard("Result", lines...).WithWidth(max(ctx.Styles.CardWidth, min(len(url)+4, m.width-4))).ViewWithContext(ctx))
	}
	return b.String()
}

func (m Model) renderResults(ctx ui.RenderContext) string {
	st := m.state
	var b strings.Builder

	if len(st.SearchResults) == 0 {
		b.WriteString(ctx.Styles.Title.Render("No results yet"))
		b.WriteString("\n\n")
		b.WriteString(ui.NewButton("New search").WithHint("n").ViewWithContext(ctx))
		return b.String()
	}

	b.WriteString(ctx.Styles.Title.Render("Search results"))
	b.WriteString("\n")
	b.WriteString(ctx.Styles.Subtitle.Render(fmt.Sprintf("Found %d items", len(st.SearchResults))))
	b.WriteString("\n\n")

	cards := make([]ui.Renderable, 0, len(st.SearchResults))
	for _, r := range st.SearchResults {
		lines := []string{r.Name, r.DisplayPrice()}
		if r.ProductURL != "" {
			lines = append(lines, r.ProductURL)
		}
		cards = append(cards, ui.NewCard(r.Brand, lines...).WithBadge(ui.AccentBadge(r.MatchBadge())))
	}
	b.WriteString(ui.Grid(ctx, 1, cards...))
	b.WriteString("\n\n")
	b.WriteString(ui.NewButton("New search").WithHint("n").Secondary().ViewWithContext(ctx))
	return b.String()
}

func (m Model) renderProfile(ctx ui.RenderContext) string {
	var b strings.Builder

	b.WriteString(ctx.Styles.Title.Render("Profile"))
	b.WriteString("\n")
	tabs := []session.ProfileTab{session.TabHistory, session.TabSettings}
	var labels []string
	for _, tab := range tabs {
		label := strings.ToUpper(string(tab[:1])) + string(tab[1:])
		if tab == m.state.ProfileTab {
			labels = append(labels, navActiveStyle.Inherit(ctx.Styles.Accent).Render(label))
		} else {
			labels = append(labels, navItemStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labels...))
	b.WriteString(helpStyle.Render("  (tab to switch)"))
	b.WriteString("\n\n")

	if m.state.ProfileTab == session.TabSettings {
		b.WriteString(m.renderSettings(ctx))
	} else {
		b.WriteString(m.renderHistory(ctx))
	}
	return b.String()
}

func (m Model) renderHistory(ctx ui.RenderContext) string {
	switch {
	case !m.historyLoaded:
		return m.spinner.View() + " Loading history…"
	case m.historyErr != "":
		return ui.WarningAlert("History unavailable: " + m.historyErr).ViewWithContext(ctx)
	case len(m.entries) == 0:
		return ctx.Styles.Muted.Render("No history yet")
	}

	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		lines = append(lines, renderEntry(ctx, e))
	}
	return strings.Join(lines, "\n")
}

func renderEntry(ctx ui.RenderContext, e history.Entry) string {
	icon := "⌕"
	if e.Type == history.KindTryon {
		icon = "✦"
	}
	return fmt.Sprintf("%s %-7s %s  %s",
		ctx.Styles.Accent.Render(icon),
		e.Type.Label(),
		ctx.Styles.Muted.Render(theme.Sanitize(e.Date)),
		theme.Sanitize(e.Status),
	)
}

func (m Model) renderSettings(ctx ui.RenderContext) string {
	cfg := m.state.Theme
	lines := make([]string, 0, len(settingFields)+2)
	for i, f := range settingFields {
		value := theme.Sanitize(f.value(cfg))
		if f.cyclable() {
			value = "‹ " + value + " ›"
		}
		line := fmt.Sprintf("%-14s %s", f.label(), value)
		if i == m.settingsCursor {
			lines = append(lines, cursorStyle.Inherit(ctx.Styles.Accent).Render("› "+line))
			continue
		}
		lines = append(lines, "  "+line)
	}
	lines = append(lines, "", helpStyle.Render("↑/↓ select • ←/→ cycle • enter edit/upload • d remove image"))
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter(ctx ui.RenderContext) string {
	help := "1-5 or h/s/t/r/p navigate • x dismiss • q quit"
	switch m.state.Active {
	case session.SectionSearch:
		help = "a upload • A remove • y type • enter search • " + help
	case session.SectionTryon:
		help = "a your photo • c clothing • A/C remove • ←/→ type • enter try on • " + help
	case session.SectionResults:
		help = "n new search • " + help
	}
	return sectionGap.Render(ctx.Styles.Title.Render(brand) + " " + ctx.Styles.Muted.Render(brandTagline) + "\n" + helpStyle.Render(help))
}

func (m Model) renderSlot(ctx ui.RenderContext, title string, slot upload.Slot, key string) string {
	img := m.state.Slot(slot)
	if img == nil {
		return ui.NewCard(title, "No image", fmt.Sprintf("[%s] upload", key)).ViewWithContext(ctx)
	}
	return ui.NewCard(title, fmt.Sprintf("[%s] replace • [%s] remove", key, strings.ToUpper(key))).
		WithWidth(max(ctx.Styles.CardWidth, previewWidth+2)).
		WithFooter(ui.NewPreview(*img).WithThumbnail(m.thumbnailFor(slot, *img))).
		ViewWithContext(ctx)
}

func renderClothingType(ctx ui.RenderContext, current session.ClothingType) string {
	parts := make([]string, 0, len(session.ClothingTypes))
	for _, ct := range session.ClothingTypes {
		if ct == current {
			parts = append(parts, ctx.Styles.Accent.Render("["+ct.Label()+"]"))
			continue
		}
		parts = append(parts, ctx.Styles.Muted.Render(" "+ct.Label()+" "))
	}
	return "Type: " + strings.Join(parts, " ")
}
