package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kwren/shipview/internal/database/repository"
	"github.com/kwren/shipview/internal/grouping"
	"github.com/kwren/shipview/internal/normalize"
	"github.com/kwren/shipview/internal/service"
)

func (a *App) View() string {
	if !a.sc.Allowed() {
		return a.renderGate()
	}

	out := a.renderHeader()
	switch {
	case a.loading && !a.loaded:
		out += "\nLoading deliveries...\n"
	case a.loadError != "":
		out += "\n" + errorStyle.Render(a.loadError) + "\n"
	case len(a.records) == 0:
		out += "\nNo deliveries in the report.\n"
	case a.sc.Enabled && !a.res.Resolved():
		out += "\n" + a.renderUnresolved()
	default:
		out += a.renderBoard()
	}
	out += a.renderFooter()
	if a.modal != modalNone {
		out += "\n\n" + a.renderModal()
	}
	return out
}

func (a *App) renderGate() string {
	out := titleStyle.Render("Shipview") + "\n"
	out += "This link has no access to any customer view.\n"
	out += "Open the delivery link you were sent, or start with -admin for the staff view.\n"
	out += "[q] Quit"
	return out
}

func (a *App) renderHeader() string {
	title := titleStyle.Render("Shipview - Deliveries")
	viewing := ""
	switch {
	case a.sc.IsAdmin:
		viewing = "All customers (staff view)"
	case a.sc.Enabled && a.res.Resolved():
		viewing = "Viewing as: " + a.res.DisplayName
	}
	out := title
	if viewing != "" {
		out += "  " + mutedStyle.Render(viewing)
	}
	if !a.fetchedAt.IsZero() {
		out += "  " + mutedStyle.Render("fetched "+a.fetchedAt.In(a.loc).Format("15:04:05"))
	}
	out += "\n" + a.renderFilterLine()
	return out
}

func (a *App) renderFilterLine() string {
	customer := a.query.Customer
	if a.sc.Enabled {
		customer = "(locked)"
	}
	cMark, mMark := " ", " "
	if a.focus == focusCustomer {
		cMark = "_"
	}
	if a.focus == focusMilestone {
		mMark = "_"
	}
	return fmt.Sprintf("Customer: [%s%s]  Milestone: [%s%s]", customer, cMark, a.query.Milestone, mMark)
}

// renderUnresolved is the locked empty view: the scope token matched no
// customer, so nothing is shown.
func (a *App) renderUnresolved() string {
	out := "No deliveries for this customer link.\n"
	if a.suggestion != "" {
		out += fmt.Sprintf("Did you mean %q?\n", a.suggestion)
	}
	return out
}

func (a *App) renderBoard() string {
	sections := a.visibleSections()
	if len(sections) == 0 {
		return "\nNo results match the current filters.\n"
	}

	var b strings.Builder
	idx := 0
	for _, sec := range sections {
		summary := grouping.Summarize(sec.Records)
		b.WriteString("\n")
		b.WriteString(cardTitleStyle.Render(sec.Customer+" - "+sec.Milestone) + "  " + renderBadge(summary))
		b.WriteString("\n")
		if sec.Address != "" {
			b.WriteString("  " + mutedStyle.Render(sec.Address) + "\n")
		}
		for _, rec := range sec.Records {
			marker := " "
			if idx == a.cursor {
				marker = "▶"
			}
			b.WriteString(fmt.Sprintf("%s #%-6s %-40s %-12s due %s%s\n",
				marker, rec.Number(), truncate(rec.Name(), 40), rec.Status(), orDash(rec.DueDisplay), itemNote(rec)))
			idx++
		}
	}
	return b.String()
}

func itemNote(rec normalize.Record) string {
	if len(rec.Items) == 0 {
		return ""
	}
	return fmt.Sprintf("  (%d items)", len(rec.Items))
}

func (a *App) renderFooter() string {
	out := "\n[/] Customer  [m] Milestone  [esc] Clear  [r] Reload  [e] Export  [s] Save preset  [p] Presets  [enter] Details  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalDetail:
		if a.detail == nil {
			return ""
		}
		return renderDetail(*a.detail)
	case modalSavePreset:
		return titleStyle.Render("Save filter preset") + fmt.Sprintf("\nName: %s\n[enter] Save  [esc] Cancel", a.inputBuffer)
	case modalPresets:
		return a.renderPresets()
	default:
		return ""
	}
}

func renderDetail(rec normalize.Record) string {
	out := titleStyle.Render("Task #"+rec.Number()) + "\n"
	out += detailLine("Name", rec.Name())
	out += detailLine("Customer", rec.Customer())
	out += detailLine("Milestone", rec.Milestone())
	out += detailLine("Status", rec.Status())
	out += detailLine("Due", orDash(rec.DueDisplay))
	out += detailLine("Completed", orDash(rec.CompletionDisplay))
	out += detailLine("Contract", orDash(rec.ContractDisplay))
	out += detailLine("Ship to", rec.ShipTo())
	out += detailLine("Address", rec.Address())
	out += detailLine("Tracking", rec.TrackingURL())
	if len(rec.Items) > 0 {
		out += "Items:\n"
		for _, it := range rec.Items {
			qty := it.Qty.Display()
			if it.Qty.IsEmpty() {
				qty = "—"
			}
			out += fmt.Sprintf("  - %-30s %s\n", it.Name, qty)
		}
	}
	out += "[esc] Close"
	return out
}

func detailLine(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%-10s %s\n", label+":", value)
}

func (a *App) renderPresets() string {
	out := titleStyle.Render("Filter presets") + "\n"
	if len(a.presets) == 0 {
		return out + "(no presets saved)\n[esc] Close"
	}
	for i, p := range a.presets {
		marker := " "
		if i == a.presetCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-20s customer=%q milestone=%q\n", marker, p.Name, p.CustomerQuery, p.MilestoneQuery)
	}
	out += "[enter] Apply  [del] Delete  [esc] Close"
	return out
}

func renderBadge(s grouping.Summary) string {
	switch s.Class {
	case grouping.StyleNormal:
		return badgeNormalStyle.Render(s.Label)
	case grouping.StyleMixed:
		return badgeMixedStyle.Render(s.Label)
	default:
		return badgePlainStyle.Render(s.Label)
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// messages
type loadDoneMsg struct {
	Result service.LoadResult
}

type loadFailedMsg struct{ err error }

type presetListMsg []repository.Preset

type statusMsg string

type errMsg struct{ error }

// styles
var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Underline(true)
	cardTitleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	badgePlainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	badgeNormalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	badgeMixedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
)
