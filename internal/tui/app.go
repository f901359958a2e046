package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/kwren/shipview/internal/config"
	"github.com/kwren/shipview/internal/database/repository"
	"github.com/kwren/shipview/internal/filtering"
	"github.com/kwren/shipview/internal/grouping"
	"github.com/kwren/shipview/internal/normalize"
	"github.com/kwren/shipview/internal/report"
	"github.com/kwren/shipview/internal/scope"
	"github.com/kwren/shipview/internal/service"
)

// App ties the pipeline to the terminal. It owns the current grouped state:
// each completed load replaces it wholesale, and filtering always receives it
// as an argument rather than reading it from anywhere else.
type App struct {
	ctx      context.Context
	cfg      config.Config
	repos    Repos
	services Services
	loc      *time.Location

	sc  scope.Scope
	res scope.Resolution

	records   []normalize.Record
	groups    *grouping.Groups
	fetchedAt time.Time
	loaded    bool
	loading   bool
	loadError string

	query  filtering.Query
	focus  focusArea
	cursor int
	status string

	modal        modalState
	detail       *normalize.Record
	presets      []repository.Preset
	presetCursor int
	inputBuffer  string

	suggestion   string
	deepLinkTask string
}

type Repos struct {
	Presets *repository.PresetRepo
}

type Services struct {
	Loader   *service.Loader
	Exporter service.Exporter
}

type focusArea string

const (
	focusNone      focusArea = ""
	focusCustomer  focusArea = "customer"
	focusMilestone focusArea = "milestone"
)

type modalState string

const (
	modalNone       modalState = ""
	modalDetail     modalState = "detail"
	modalSavePreset modalState = "savePreset"
	modalPresets    modalState = "presets"
)

// New builds the app for one session. The scope and pre-applied filters come
// from the launch link and never change afterwards.
func New(ctx context.Context, cfg config.Config, repos Repos, services Services, params scope.Params) *App {
	loc := time.Local
	if cfg.UI.Timezone != "" && cfg.UI.Timezone != "Local" {
		if l, err := time.LoadLocation(cfg.UI.Timezone); err == nil {
			loc = l
		}
	}
	return &App{
		ctx:          ctx,
		cfg:          cfg,
		repos:        repos,
		services:     services,
		loc:          loc,
		sc:           scope.FromParams(params),
		query:        filtering.Query{Milestone: params.Milestone},
		deepLinkTask: params.Task,
	}
}

func (a *App) Init() tea.Cmd {
	a.loading = true
	return tea.Batch(a.loadCmd(), a.loadPresets())
}

// commands

func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := a.services.Loader.Load(a.ctx)
		if err != nil {
			return loadFailedMsg{err}
		}
		return loadDoneMsg{result}
	}
}

func (a *App) loadPresets() tea.Cmd {
	return func() tea.Msg {
		if a.repos.Presets == nil {
			return presetListMsg(nil)
		}
		ps, err := a.repos.Presets.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return presetListMsg(ps)
	}
}

func (a *App) savePresetCmd(name string) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			p := repository.Preset{
				ID:             uuid.NewString(),
				Name:           strings.TrimSpace(name),
				MilestoneQuery: a.query.Milestone,
			}
			if !a.sc.Enabled {
				p.CustomerQuery = a.query.Customer
			}
			if err := a.repos.Presets.Upsert(a.ctx, p); err != nil {
				return errMsg{err}
			}
			return statusMsg("preset saved")
		},
		a.loadPresets(),
	)
}

func (a *App) deletePresetCmd(p repository.Preset) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			if err := a.repos.Presets.Delete(a.ctx, p.ID); err != nil {
				return errMsg{err}
			}
			return statusMsg("preset removed")
		},
		a.loadPresets(),
	)
}

func (a *App) exportCmd(sections []filtering.Section) tea.Cmd {
	return func() tea.Msg {
		path := fmt.Sprintf("shipview-%s.xlsx", time.Now().Format("20060102-150405"))
		if err := a.services.Exporter.Export(path, sections); err != nil {
			return errMsg{err}
		}
		return statusMsg("exported " + path)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.focus != focusNone {
			return a.handleFilterKey(m)
		}
		return a.handleMainKey(m)

	case loadDoneMsg:
		a.applyLoad(m.Result)
		return a, nil

	case loadFailedMsg:
		a.loading = false
		a.loaded = true
		var fe *report.FetchError
		if errors.As(m.err, &fe) {
			a.loadError = fe.Message()
		} else {
			a.loadError = m.err.Error()
		}
		return a, nil

	case presetListMsg:
		a.presets = []repository.Preset(m)
		if a.presetCursor >= len(a.presets) {
			a.presetCursor = 0
		}

	case statusMsg:
		a.status = string(m)

	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

// applyLoad swaps in a completed load result and re-derives the scope
// resolution against the fresh record set.
func (a *App) applyLoad(result service.LoadResult) {
	a.loading = false
	a.loaded = true
	a.loadError = ""
	a.records = result.Records
	a.groups = result.Groups
	a.fetchedAt = result.FetchedAt
	a.res = scope.Resolve(a.records, a.sc)

	a.suggestion = ""
	if a.sc.Enabled && !a.res.Resolved() && len(a.sc.Tokens) > 0 {
		a.suggestion = scope.Suggest(a.records, a.sc.Tokens[0])
	}

	if a.cursor >= len(a.visibleRecords()) {
		a.cursor = 0
	}

	if a.deepLinkTask != "" {
		task := a.deepLinkTask
		a.deepLinkTask = ""
		if rec := a.visibleRecordByNumber(task); rec != nil {
			a.detail = rec
			a.modal = modalDetail
		} else {
			a.status = fmt.Sprintf("task %s not found", task)
		}
	}
}

func (a *App) handleMainKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, keys.Quit):
		return a, tea.Quit
	case key.Matches(m, keys.Reload):
		if a.loading {
			return a, nil
		}
		if !a.services.Loader.AllowReload() {
			a.status = "just reloaded; wait a moment"
			return a, nil
		}
		a.loading = true
		a.status = ""
		return a, a.loadCmd()
	case key.Matches(m, keys.Export):
		sections := a.visibleSections()
		if len(sections) == 0 {
			a.status = "nothing to export"
			return a, nil
		}
		return a, a.exportCmd(sections)
	case key.Matches(m, keys.FilterCustomer):
		if a.sc.Enabled {
			a.status = "view is locked to " + a.res.DisplayName
			return a, nil
		}
		a.focus = focusCustomer
	case key.Matches(m, keys.FilterMilestone):
		a.focus = focusMilestone
	case key.Matches(m, keys.ClearFilters):
		a.query.Milestone = ""
		if !a.sc.Enabled {
			a.query.Customer = ""
		}
		a.cursor = 0
	case key.Matches(m, keys.SavePreset):
		a.modal = modalSavePreset
		a.inputBuffer = ""
	case key.Matches(m, keys.Presets):
		a.modal = modalPresets
		if a.presetCursor >= len(a.presets) {
			a.presetCursor = 0
		}
	case key.Matches(m, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, keys.Down):
		if a.cursor < len(a.visibleRecords())-1 {
			a.cursor++
		}
	case key.Matches(m, keys.Open):
		recs := a.visibleRecords()
		if len(recs) == 0 {
			return a, nil
		}
		rec := recs[a.cursor]
		a.detail = &rec
		a.modal = modalDetail
	}
	return a, nil
}

// handleFilterKey edits the focused filter input. Filtering re-runs on every
// keystroke; it is a pure computation over the current grouped state.
func (a *App) handleFilterKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	target := &a.query.Milestone
	if a.focus == focusCustomer {
		target = &a.query.Customer
	}
	switch m.Type {
	case tea.KeyEsc, tea.KeyEnter:
		a.focus = focusNone
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(*target) > 0 {
			*target = (*target)[:len(*target)-1]
		}
	case tea.KeySpace:
		*target += " "
	case tea.KeyRunes:
		*target += string(m.Runes)
	}
	if a.cursor >= len(a.visibleRecords()) {
		a.cursor = 0
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalDetail:
		switch m.String() {
		case "esc", "enter", "q":
			a.modal = modalNone
			a.detail = nil
		}
	case modalSavePreset:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.inputBuffer = ""
		case tea.KeyEnter:
			name := strings.TrimSpace(a.inputBuffer)
			if name == "" {
				a.status = "enter a preset name"
				return a, nil
			}
			a.modal = modalNone
			a.inputBuffer = ""
			return a, a.savePresetCmd(name)
		case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
			if len(a.inputBuffer) > 0 {
				a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
			}
		case tea.KeySpace:
			a.inputBuffer += " "
		case tea.KeyRunes:
			a.inputBuffer += string(m.Runes)
		}
	case modalPresets:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.presetCursor > 0 {
				a.presetCursor--
			}
		case "down", "j":
			if a.presetCursor < len(a.presets)-1 {
				a.presetCursor++
			}
		case "backspace", "delete":
			if len(a.presets) == 0 {
				return a, nil
			}
			return a, a.deletePresetCmd(a.presets[a.presetCursor])
		case "enter":
			if len(a.presets) == 0 {
				a.modal = modalNone
				return a, nil
			}
			p := a.presets[a.presetCursor]
			a.modal = modalNone
			a.query.Milestone = p.MilestoneQuery
			if !a.sc.Enabled {
				a.query.Customer = p.CustomerQuery
			}
			a.cursor = 0
			a.status = "applied preset " + p.Name
		}
	}
	return a, nil
}

// visibleSections runs the filter engine over the current grouped state.
func (a *App) visibleSections() []filtering.Section {
	if a.groups == nil {
		return nil
	}
	return filtering.Apply(a.groups, a.sc, a.res, a.query)
}

// visibleRecords flattens the visible sections for cursor navigation.
func (a *App) visibleRecords() []normalize.Record {
	var out []normalize.Record
	for _, sec := range a.visibleSections() {
		out = append(out, sec.Records...)
	}
	return out
}

func (a *App) visibleRecordByNumber(number string) *normalize.Record {
	recs := a.visibleRecords()
	for i := range recs {
		if recs[i].Number() == number {
			return &recs[i]
		}
	}
	return nil
}
