package tui

import (
	"treedit/internal/config"
	"treedit/internal/highlight"
	"treedit/internal/log"
	"treedit/internal/tui/components"
	"treedit/internal/tui/messages"
	"treedit/internal/tui/styles"
	"treedit/internal/tui/views"
	"treedit/internal/watch"
	"treedit/internal/workspace"
	"treedit/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// Options configure a new Model
type Options struct {
	// Root is the directory shown in the sidebar; "" means "."
	Root       string
	StyleSheet *config.StyleSheet
	// Watcher, when set, must already be started; the model adds the
	// directories the sidebar opens.
	Watcher *watch.Watcher
	Profile termenv.Profile
}

// Model is the application shell: header, sidebar, editing pane, footer
type Model struct {
	styleSheet *config.StyleSheet
	theme      styles.Theme
	keys       types.KeyMap

	header  *components.Header
	sidebar *components.FileTree
	editor  *components.EditorPane
	footer  *components.Footer
	watcher *watch.Watcher

	focus          types.Focus
	sidebarVisible bool

	width  int
	height int
}

// New builds the shell. The sidebar starts focused.
func New(opts Options) *Model {
	root := opts.Root
	if root == "" {
		root = "."
	}
	sheet := opts.StyleSheet
	if sheet == nil {
		sheet = config.New()
	}
	theme := styles.NewTheme(sheet)

	exclude, err := sheet.ExcludePatterns()
	if err != nil {
		log.LogWithError(err).Warn("sidebar exclude patterns ignored")
	}

	highlighter := highlight.New(sheet.Editor.HighlightStyle, opts.Profile)
	if name := highlighter.StyleName(); name != sheet.Editor.HighlightStyle {
		log.LogWithFields(log.F("requested", sheet.Editor.HighlightStyle), log.F("style", name)).Warn("unknown highlight style, using fallback")
	}

	m := &Model{
		styleSheet:     sheet,
		theme:          theme,
		keys:           types.DefaultKeyMap(),
		header:         components.NewHeader(sheet.Header.Title, theme),
		sidebar:        components.NewFileTree(root, sheet.Sidebar.ShowHidden, exclude, theme),
		editor:         components.NewEditorPane(highlighter, theme, sheet.Editor.LineNumbers),
		footer:         components.NewFooter(theme),
		watcher:        opts.Watcher,
		sidebarVisible: sheet.Sidebar.Visible,
	}

	if m.sidebarVisible {
		m.setFocus(types.FocusSidebar)
	} else {
		m.setFocus(types.FocusEditor)
	}
	m.watchDirectory(m.sidebar.Root.Path)

	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)

	case messages.FileSelectedMsg:
		m.OpenFile(msg.Path)
		return m, nil

	case messages.DirToggledMsg:
		if msg.Open {
			m.watchDirectory(msg.Path)
		} else if m.watcher != nil {
			m.watcher.RemoveDirectory(msg.Path)
		}
		return m, nil

	case messages.TreeChangedMsg:
		if m.sidebar.Reload(msg.Change.Dir) {
			log.LogWithFields(log.F("dir", msg.Change.Dir), log.F("op", msg.Change.Op.String())).Debug("sidebar reloaded")
		}
		return m, m.waitForChange()
	}

	// Mouse wheel and clipboard paste belong to the editing pane
	return m, m.editor.Update(msg)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return tea.Quit
	case key.Matches(msg, m.keys.ToggleSidebar):
		return m.ToggleSidebar()
	case key.Matches(msg, m.keys.FocusNext), key.Matches(msg, m.keys.FocusPrev):
		return m.cycleFocus()
	}

	if m.focus == types.FocusSidebar {
		if key.Matches(msg, m.keys.Quit) {
			return tea.Quit
		}
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return cmd
	}

	return m.editor.Update(msg)
}

// OpenFile loads path into the editing pane.
//
// The sub-title always follows the selection. If the file cannot be read
// as text the pane keeps whatever it showed before.
func (m *Model) OpenFile(path string) {
	m.header.SetSubTitle(path)

	file, err := workspace.ReadText(path)
	if err != nil {
		log.LogWithError(err).Debug("file not loaded")
		return
	}

	language := highlight.Guess(file.Path, file.Text)

	m.editor.Clear()
	result := m.editor.SetLanguage(language)
	if !result.Applied() {
		log.LogWithFields(log.F("path", path), log.F("language", language)).Debug("highlighting disabled")
	}
	m.editor.SetText(file.Text)
}

// ToggleSidebar flips sidebar visibility. A hidden sidebar gives up focus.
func (m *Model) ToggleSidebar() tea.Cmd {
	m.sidebarVisible = !m.sidebarVisible
	m.layout()

	if !m.sidebarVisible && m.focus == types.FocusSidebar {
		return m.setFocus(types.FocusEditor)
	}
	return nil
}

func (m *Model) cycleFocus() tea.Cmd {
	next := m.focus.Next()
	if next == types.FocusSidebar && !m.sidebarVisible {
		return nil
	}
	return m.setFocus(next)
}

func (m *Model) setFocus(f types.Focus) tea.Cmd {
	m.focus = f
	m.keys.Quit.SetEnabled(f == types.FocusSidebar)

	if f == types.FocusSidebar {
		m.editor.Blur()
		m.sidebar.Focus()
		return nil
	}
	m.sidebar.Blur()
	return m.editor.Focus()
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)

	editorWidth, innerHeight := m.editorInnerSize()
	if m.sidebarVisible {
		m.sidebar.SetSize(max(m.sidebarWidth()-2, 1), innerHeight)
	}
	m.editor.SetSize(editorWidth, innerHeight)
}

// sidebarWidth is the sidebar's outer width, borders included
func (m *Model) sidebarWidth() int {
	return max(min(m.styleSheet.Sidebar.Width, m.width-3), 3)
}

func (m *Model) watchDirectory(dir string) {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.AddDirectory(dir); err != nil {
		log.LogWithError(err).Warn("directory will not refresh automatically")
	}
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return nil
		}
		return messages.TreeChangedMsg{Change: change}
	}
}

// HeaderView implements common.ModelReader
func (m *Model) HeaderView() string {
	return m.header.View()
}

// SidebarView implements common.ModelReader
func (m *Model) SidebarView() string {
	style := m.theme.Pane
	if m.focus == types.FocusSidebar {
		style = m.theme.PaneFocused
	}
	return style.
		Width(m.sidebar.Width).
		Height(m.sidebar.Height).
		Render(m.sidebar.View())
}

// EditorView implements common.ModelReader
func (m *Model) EditorView() string {
	style := m.theme.Pane
	if m.focus == types.FocusEditor {
		style = m.theme.PaneFocused
	}
	body := m.editor.View()
	if m.width > 0 {
		w, h := m.editorInnerSize()
		style = style.Width(w).Height(h)
	}
	return style.Render(body)
}

// editorInnerSize is the editing pane's content area. Header and footer
// take one line each and every pane has a one-cell border.
func (m *Model) editorInnerSize() (int, int) {
	width := m.width
	if m.sidebarVisible {
		width -= m.sidebarWidth()
	}
	return max(width-2, 1), max(m.height-4, 1)
}

// FooterView implements common.ModelReader
func (m *Model) FooterView() string {
	return m.footer.View(m.keys)
}

// SidebarVisible implements common.ModelReader
func (m *Model) SidebarVisible() bool {
	return m.sidebarVisible
}

// Editor returns the editing pane
func (m *Model) Editor() *components.EditorPane {
	return m.editor
}

// Sidebar returns the directory tree
func (m *Model) Sidebar() *components.FileTree {
	return m.sidebar
}

// Focus returns the pane that receives key input
func (m *Model) Focus() types.Focus {
	return m.focus
}

// SubTitle returns the header sub-title, the last selected path
func (m *Model) SubTitle() string {
	return m.header.SubTitle()
}

// State returns a snapshot of what the shell shows
func (m *Model) State() types.EditorState {
	return types.EditorState{
		Text:     m.editor.Text(),
		Language: m.editor.Language(),
		SubTitle: m.header.SubTitle(),
	}
}
