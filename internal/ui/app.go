package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davidpaquet/archive-browser/internal/catalog"
	"github.com/davidpaquet/archive-browser/internal/clipboard"
	"github.com/davidpaquet/archive-browser/internal/export"
	"github.com/davidpaquet/archive-browser/internal/logging"
	"github.com/davidpaquet/archive-browser/internal/model"
	"github.com/davidpaquet/archive-browser/internal/search"
	"github.com/davidpaquet/archive-browser/internal/view"
)

// Tab is one of the top level screens
type Tab int

const (
	TabHome Tab = iota
	TabWorkLogs
	TabPresentations
)

var tabNames = []string{"Home", "Work Logs", "Presentations"}

func (t Tab) String() string {
	return tabNames[t]
}

// kind maps a list tab to its collection
func (t Tab) kind() (model.Kind, bool) {
	switch t {
	case TabWorkLogs:
		return model.KindWorkLog, true
	case TabPresentations:
		return model.KindPresentation, true
	}
	return "", false
}

const recentCount = 4

// keyCommands maps list and global keys onto palette commands
var keyCommands = map[string]string{
	"1":   "home",
	"2":   "work-logs",
	"3":   "presentations",
	"/":   "filter",
	"esc": "clear",
	"t":   "sort-title",
	"d":   "sort-date",
	"s":   "sort-slides",
	"e":   "export",
	"y":   "copy",
	"r":   "reload",
	"q":   "quit",
}

// Options configures the browser
type Options struct {
	Version     string
	ContentPath string
	IndexPath   string
	ExportDir   string
	// ResolveURL turns a catalog URL into the link shown in details.
	// Defaults to prefixing "/".
	ResolveURL func(string) string
	// Reloads delivers a value whenever the catalog files change
	Reloads <-chan struct{}
	// Clipboard overrides the system clipboard
	Clipboard export.Target
	Now       func() time.Time
}

// Model is the app model
type Model struct {
	opts      Options
	loader    *catalog.Loader
	files     *export.FileTarget
	clipboard export.Target
	// why each target cannot take an export right now, nil when it can
	filesErr error
	clipErr  error

	// Data
	catalog *catalog.Catalog
	views   map[model.Kind]*view.Controller

	// UI State
	width        int
	height       int
	tab          Tab
	selected     map[model.Kind]int
	scrollOffset map[model.Kind]int
	loading      bool
	err          error

	// Filter and palette
	filtering   bool
	filterInput textinput.Model
	palette     Palette

	// Status
	statusMsg   string
	statusTimer time.Time
}

// NewApp creates a new app
func NewApp(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ResolveURL == nil {
		opts.ResolveURL = func(u string) string { return catalog.WithBasePath("/", u) }
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewTarget()
	}

	filterInput := textinput.New()
	filterInput.Placeholder = "Filter by title, file name, date or text..."
	filterInput.CharLimit = 100
	filterInput.Width = 40

	return &Model{
		opts:         opts,
		loader:       catalog.NewLoader(),
		files:        export.NewFileTarget(opts.ExportDir),
		clipboard:    clip,
		views:        make(map[model.Kind]*view.Controller),
		selected:     make(map[model.Kind]int),
		scrollOffset: make(map[model.Kind]int),
		loading:      true,
		width:        80,
		height:       24,
		filterInput:  filterInput,
		palette:      NewPalette(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalog(), m.waitForChange())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(msg.Width)
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// keep showing the previous catalog after a failed reload
			if m.catalog != nil {
				return m, m.setStatus(fmt.Sprintf("Reload failed: %v", msg.err))
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.setCatalog(msg.catalog)
		if msg.reload {
			return m, m.setStatus("Catalog reloaded")
		}
		return m, nil

	case catalogChangedMsg:
		logging.Info("Catalog files changed, reloading")
		return m, tea.Batch(m.reloadCatalog(), m.waitForChange())

	case clearStatusMsg:
		if time.Since(m.statusTimer) >= statusDuration {
			m.statusMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.palette.IsActive() {
			var cmd tea.Cmd
			var chosen string
			m.palette, cmd, chosen = m.palette.Update(msg)
			if chosen != "" {
				return m, m.runCommand(chosen)
			}
			return m, cmd
		}

		if m.filtering {
			return m, m.updateFilter(msg)
		}

		return m, m.handleKey(msg.String())
	}

	if m.palette.IsActive() {
		var cmd tea.Cmd
		m.palette, cmd, _ = m.palette.Update(msg)
		return m, cmd
	}
	if m.filtering {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case ":":
		return m.palette.Activate()
	case "tab":
		return m.switchTab((m.tab + 1) % Tab(len(tabNames)))
	case "shift+tab":
		return m.switchTab((m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
	case "up", "k":
		m.move(-1)
		return nil
	case "down", "j":
		m.move(1)
		return nil
	case "home", "g":
		m.moveTo(0)
		return nil
	case "end", "G":
		if v := m.current(); v != nil {
			m.moveTo(len(v.Rows()) - 1)
		}
		return nil
	}

	if name, ok := keyCommands[key]; ok {
		return m.runCommand(name)
	}
	return nil
}

// updateFilter feeds a key to the filter input and applies the value live
func (m *Model) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.applyFilter("")
		return nil
	case "enter", "tab":
		m.filtering = false
		m.filterInput.Blur()
		return nil
	case "up", "down":
		m.filtering = false
		m.filterInput.Blur()
		return m.handleKey(msg.String())
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter(m.filterInput.Value())
	return cmd
}

func (m *Model) applyFilter(text string) {
	v := m.current()
	if v == nil {
		return
	}
	if v.State().FilterText == text {
		return
	}
	v.SetFilter(text)
	m.selected[v.Kind()] = 0
	m.scrollOffset[v.Kind()] = 0
}

// runCommand executes a palette command or a key bound to one
func (m *Model) runCommand(name string) tea.Cmd {
	switch name {
	case "quit":
		return tea.Quit
	case "home":
		return m.switchTab(TabHome)
	case "work-logs":
		return m.switchTab(TabWorkLogs)
	case "presentations":
		return m.switchTab(TabPresentations)
	case "reload":
		return m.reloadCatalog()
	}

	v := m.current()
	if v == nil {
		if name != "clear" {
			return m.setStatus("Open Work Logs or Presentations first")
		}
		return nil
	}

	switch name {
	case "filter":
		m.filtering = true
		m.filterInput.SetValue(v.State().FilterText)
		m.filterInput.CursorEnd()
		m.filterInput.Focus()
		return textinput.Blink
	case "clear":
		m.filterInput.SetValue("")
		m.applyFilter("")
		return nil
	case "sort-title":
		return m.clickSort(v, search.ColumnTitle)
	case "sort-date":
		return m.clickSort(v, search.ColumnCreatedDate)
	case "sort-slides":
		return m.clickSort(v, search.ColumnSlides)
	case "export":
		return m.export(v, m.files, m.filesErr, func() string {
			return "Saved " + m.files.Path(v.Filename())
		})
	case "copy":
		return m.export(v, m.clipboard, m.clipErr, func() string {
			return fmt.Sprintf("Copied %s to clipboard", v.ResultLabel())
		})
	}
	return nil
}

func (m *Model) clickSort(v *view.Controller, col search.Column) tea.Cmd {
	if err := v.ClickSort(col); err != nil {
		return m.setStatus(err.Error())
	}
	m.selected[v.Kind()] = 0
	m.scrollOffset[v.Kind()] = 0
	return m.setStatus("Sorted by " + sortLabel(v.State().Sort))
}

func (m *Model) export(v *view.Controller, target export.Target, unavailable error, done func() string) tea.Cmd {
	if unavailable != nil {
		return m.setStatus("Export unavailable: " + unavailable.Error())
	}
	if err := v.Export(target); err != nil {
		logging.Warn("Export failed", "view", v.Kind(), "error", err)
		if errors.Is(err, export.ErrDownloadUnavailable) {
			return m.setStatus("Export unavailable: " + err.Error())
		}
		return m.setStatus(fmt.Sprintf("Export failed: %v", err))
	}
	return m.setStatus(done())
}

func (m *Model) switchTab(t Tab) tea.Cmd {
	m.tab = t
	m.filtering = false
	m.filterInput.Blur()
	if v := m.current(); v != nil {
		m.filterInput.SetValue(v.State().FilterText)
		m.checkTargets()
	}
	return nil
}

// checkTargets records which export targets can currently take a save
func (m *Model) checkTargets() {
	m.filesErr = targetAvailable(m.files)
	m.clipErr = targetAvailable(m.clipboard)
	if m.filesErr != nil {
		logging.Debug("File export unavailable", "error", m.filesErr)
	}
	if m.clipErr != nil {
		logging.Debug("Clipboard export unavailable", "error", m.clipErr)
	}
}

// targetAvailable asks a target that can tell whether it would accept a save.
// Targets without an Available method are assumed ready.
func targetAvailable(t export.Target) error {
	if a, ok := t.(interface{ Available() error }); ok {
		return a.Available()
	}
	return nil
}

// current returns the controller of the visible list tab
func (m *Model) current() *view.Controller {
	kind, ok := m.tab.kind()
	if !ok {
		return nil
	}
	return m.views[kind]
}

func (m *Model) move(delta int) {
	if v := m.current(); v != nil {
		m.moveTo(m.selected[v.Kind()] + delta)
	}
}

func (m *Model) moveTo(i int) {
	v := m.current()
	if v == nil {
		return
	}
	n := len(v.Rows())
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	m.selected[v.Kind()] = i
	m.ensureVisible(v.Kind(), n)
}

// setCatalog swaps in a freshly loaded catalog. Existing views keep their
// filter and sort and only have their data replaced.
func (m *Model) setCatalog(c *catalog.Catalog) {
	m.catalog = c
	for _, kind := range []model.Kind{model.KindWorkLog, model.KindPresentation} {
		v, ok := m.views[kind]
		if ok {
			v.Replace(c.Collection(kind), c.Texts(kind))
		} else {
			v = view.New(kind, c.Collection(kind), c.Texts(kind))
			m.views[kind] = v
		}

		if n := len(v.Rows()); m.selected[kind] >= n {
			m.selected[kind] = max(0, n-1)
		}
	}
	m.checkTargets()
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusTimer = time.Now()
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			"Loading catalog...")
	}

	if m.err != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress r to retry or q to quit", m.err)))
	}

	header := m.renderHeader()
	status := m.renderStatusBar()

	var bars []string
	if v := m.current(); v != nil && (m.filtering || v.State().FilterText != "") {
		bars = append(bars, m.renderFilterBar(v))
	}
	if m.palette.IsActive() {
		bars = append(bars, m.palette.View())
	}

	reserved := lipgloss.Height(header) + lipgloss.Height(status)
	for _, b := range bars {
		reserved += lipgloss.Height(b)
	}
	bodyHeight := max(m.height-reserved, 8)

	var body string
	if v := m.current(); v != nil {
		body = m.renderList(v, bodyHeight)
	} else {
		body = m.renderHome()
	}

	components := append([]string{header, body}, bars...)
	components = append(components, status)
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

func (m *Model) renderHeader() string {
	var tabs []string
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	left := titleStyle.Render("Archive") + "  " + strings.Join(tabs, "")

	var generatedAt *string
	if m.catalog != nil {
		generatedAt = m.catalog.GeneratedAt
	}
	right := mutedTextStyle.Render("Last refreshed: " + formatRefreshed(generatedAt, m.opts.Now()))

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderHome() string {
	logs := m.catalog.WorkLogs
	decks := m.catalog.Presentations

	tiles := lipgloss.JoinHorizontal(lipgloss.Top,
		renderTile("Work Logs", len(logs), logs),
		renderTile("Presentations", len(decks), decks),
	)

	colWidth := max((m.width-4)/2, 20)
	recent := lipgloss.JoinHorizontal(lipgloss.Top,
		renderRecent("Recent Work Logs", search.Recent(logs, recentCount), colWidth),
		renderRecent("Recent Presentations", search.Recent(decks, recentCount), colWidth),
	)

	hint := mutedTextStyle.Render("Press 2 or 3 to browse, : for commands")
	return lipgloss.JoinVertical(lipgloss.Left, "", tiles, "", recent, "", hint)
}

func renderTile(label string, count int, entries model.Collection) string {
	latest := "Unknown"
	if e, ok := search.Latest(entries); ok {
		latest = e.DisplayDate()
	}
	content := strings.Join([]string{
		titleStyle.Render(label),
		tileValueStyle.Render(view.PluralizeEntries(count)),
		mutedTextStyle.Render("Latest: " + latest),
	}, "\n")
	return tileStyle.Render(content)
}

func renderRecent(label string, entries model.Collection, width int) string {
	lines := []string{titleStyle.Render(label)}
	if len(entries) == 0 {
		lines = append(lines, mutedTextStyle.Render("  Nothing here yet"))
	}
	dateWidth := 10
	for _, e := range entries {
		lines = append(lines, "  "+cell(e.Title, width-dateWidth-5)+" "+mutedTextStyle.Render(e.DisplayDate()))
	}
	return lipgloss.NewStyle().Width(width).MarginRight(2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderList(v *view.Controller, height int) string {
	leftWidth := m.width * 3 / 5
	if m.width < 80 {
		leftWidth = m.width / 2
	}
	rightWidth := m.width - leftWidth - 1

	rows := v.Rows()
	kind := v.Kind()
	selected := m.selected[kind]

	leftPane := m.renderRows(v, rows, leftWidth, height)

	var entry *model.Entry
	if selected < len(rows) {
		entry = &rows[selected]
	}
	rightPane := m.renderDetails(v, entry, rightWidth, height)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

func (m *Model) renderRows(v *view.Controller, rows model.Collection, width, height int) string {
	// border + padding on each side, plus the top margin
	innerHeight := height - 5
	innerWidth := width - 4

	title := fmt.Sprintf("%s (%s)", m.tab, v.ResultLabel())
	lines := []string{titleStyle.Render(title), columnHeaderStyle.Render(m.columnHeader(v, innerWidth-2))}

	itemsHeight := max(innerHeight-2, 1)
	kind := v.Kind()
	m.clampScroll(kind, len(rows), itemsHeight)

	if len(rows) == 0 {
		lines = append(lines, mutedTextStyle.Render("  No entries match the current filter"))
	}

	start := m.scrollOffset[kind]
	end := min(start+itemsHeight, len(rows))
	for i := start; i < end; i++ {
		line := m.formatRow(v, rows[i], innerWidth-2)
		if i == m.selected[kind] {
			line = selectedItemStyle.Render(line)
		} else {
			line = itemStyle.Render(line)
		}
		lines = append(lines, line)
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	return listStyle.
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

const (
	dateColWidth   = 10
	slidesColWidth = 6
)

func (m *Model) titleWidth(v *view.Controller, width int) int {
	w := width - dateColWidth - 1
	if v.Allows(search.ColumnSlides) {
		w -= slidesColWidth + 1
	}
	return max(w, 8)
}

func (m *Model) columnHeader(v *view.Controller, width int) string {
	cfg := v.State().Sort
	label := func(col search.Column, name string) string {
		if cfg.Column == col {
			if cfg.Direction == search.Asc {
				return name + " ▲"
			}
			return name + " ▼"
		}
		return name
	}

	parts := []string{cell(label(search.ColumnTitle, "Title [t]"), m.titleWidth(v, width))}
	if v.Allows(search.ColumnSlides) {
		parts = append(parts, cell(label(search.ColumnSlides, "Slides"), slidesColWidth))
	}
	parts = append(parts, cell(label(search.ColumnCreatedDate, "Date [d]"), dateColWidth))
	return strings.Join(parts, " ")
}

func (m *Model) formatRow(v *view.Controller, e model.Entry, width int) string {
	parts := []string{cell(e.Title, m.titleWidth(v, width))}
	if v.Allows(search.ColumnSlides) {
		parts = append(parts, cell(e.DisplaySlides(), slidesColWidth))
	}
	parts = append(parts, cell(e.DisplayDate(), dateColWidth))
	return strings.Join(parts, " ")
}

func (m *Model) renderDetails(v *view.Controller, entry *model.Entry, width, height int) string {
	innerHeight := height - 5
	innerWidth := width - 4

	if innerHeight < 1 || innerWidth < 1 {
		return detailsStyle.Width(width).Height(height).Render("")
	}

	lines := []string{}
	if entry == nil {
		lines = append(lines, "Nothing selected")
	} else {
		lines = append(lines, titleStyle.Render("Details"), "")
		lines = append(lines, wrapText(entry.Title, innerWidth)...)
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("File: %s", cell(entry.FileName, innerWidth-6)))
		lines = append(lines, fmt.Sprintf("Date: %s", entry.DisplayDate()))
		if v.Kind() == model.KindPresentation {
			lines = append(lines, fmt.Sprintf("Slides: %s", entry.DisplaySlides()))
		}
		lines = append(lines, "")
		lines = append(lines, "Link:")
		lines = append(lines, infoStyle.Render("  "+cell(m.opts.ResolveURL(entry.URL), innerWidth-2)))

		if runs := v.SnippetTokens(*entry); len(runs) > 0 {
			lines = append(lines, "", "Match:")
			snippet := lipgloss.NewStyle().Width(innerWidth - 2).PaddingLeft(2).Render(renderRuns(runs))
			lines = append(lines, strings.Split(snippet, "\n")...)
		}
	}

	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	return detailsStyle.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// renderRuns styles the highlighted parts of a snippet
func renderRuns(runs []search.Run) string {
	var b strings.Builder
	for _, r := range runs {
		if r.Highlight {
			b.WriteString(highlightStyle.Render(r.Text))
		} else {
			b.WriteString(r.Text)
		}
	}
	return b.String()
}

func (m *Model) renderFilterBar(v *view.Controller) string {
	borderColor := lipgloss.Color("#4B5563")
	if m.filtering {
		borderColor = lipgloss.Color("#9B59B6")
	}

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.width - 2)

	var prompt string
	if m.filtering {
		prompt = "Filter: " + m.filterInput.View()
	} else {
		prompt = fmt.Sprintf("Filter: %s (%s) [Press / to edit]", v.State().FilterText, v.ResultLabel())
	}
	return style.Render(prompt)
}

const statusDuration = 3 * time.Second

func (m *Model) renderStatusBar() string {
	var leftText string

	switch {
	case m.statusMsg != "" && time.Since(m.statusTimer) < statusDuration:
		leftText = m.statusMsg
	case m.palette.IsActive():
		leftText = "[↑↓] Select  [Tab] Complete  [Enter] Run  [Esc] Close"
	case m.filtering:
		leftText = "[Enter] Done  [Esc] Clear  Type to filter..."
	case m.current() != nil:
		leftText = m.listHints()
	default:
		leftText = "[1-3] Switch view  [:] Commands  [r] Reload  [q] Quit"
	}

	leftStyle := keyHelpStyle.Width(max(m.width-lipgloss.Width(m.opts.Version)-2, 0))
	rightStyle := keyHelpStyle.Align(lipgloss.Right)

	content := lipgloss.JoinHorizontal(lipgloss.Bottom,
		leftStyle.Render(leftText), rightStyle.Render(m.opts.Version))

	return statusBarStyle.Width(m.width).Render(content)
}

// listHints leaves out the export keys whose target is unavailable
func (m *Model) listHints() string {
	hints := []string{"[↑↓] Navigate", "[/] Filter", "[t/d/s] Sort"}
	if m.filesErr == nil {
		hints = append(hints, "[e] Export")
	}
	if m.clipErr == nil {
		hints = append(hints, "[y] Copy")
	}
	hints = append(hints, "[:] Commands", "[q] Quit")
	return strings.Join(hints, "  ")
}

func (m *Model) clampScroll(kind model.Kind, n, itemsHeight int) {
	maxScroll := max(n-itemsHeight, 0)
	if m.scrollOffset[kind] > maxScroll {
		m.scrollOffset[kind] = maxScroll
	}
	if m.scrollOffset[kind] < 0 {
		m.scrollOffset[kind] = 0
	}
}

func (m *Model) ensureVisible(kind model.Kind, n int) {
	// header, status bar, list chrome, title and column header
	itemsHeight := max(m.height-2-5-2, 1)

	if m.selected[kind] < m.scrollOffset[kind] {
		m.scrollOffset[kind] = m.selected[kind]
	} else if m.selected[kind] >= m.scrollOffset[kind]+itemsHeight {
		m.scrollOffset[kind] = m.selected[kind] - itemsHeight + 1
	}
	m.clampScroll(kind, n, itemsHeight)
}

func (m *Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		c, err := m.loader.Load(m.opts.ContentPath, m.opts.IndexPath)
		return catalogLoadedMsg{catalog: c, err: err}
	}
}

func (m *Model) reloadCatalog() tea.Cmd {
	return func() tea.Msg {
		c, err := m.loader.Load(m.opts.ContentPath, m.opts.IndexPath)
		return catalogLoadedMsg{catalog: c, err: err, reload: true}
	}
}

// waitForChange blocks on the watcher channel; nil when watching is off
func (m *Model) waitForChange() tea.Cmd {
	if m.opts.Reloads == nil {
		return nil
	}
	ch := m.opts.Reloads
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return catalogChangedMsg{}
	}
}

func sortLabel(cfg search.SortConfig) string {
	names := map[search.Column]string{
		search.ColumnTitle:       "title",
		search.ColumnCreatedDate: "creation date",
		search.ColumnSlides:      "slides",
	}
	dir := "descending"
	if cfg.Direction == search.Asc {
		dir = "ascending"
	}
	return names[cfg.Column] + " (" + dir + ")"
}

// Messages
type catalogLoadedMsg struct {
	catalog *catalog.Catalog
	err     error
	reload  bool
}

type catalogChangedMsg struct{}

type clearStatusMsg struct{}
