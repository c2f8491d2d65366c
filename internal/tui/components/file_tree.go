package components

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"treedit/internal/errors"
	"treedit/internal/log"
	"treedit/internal/tui/messages"
	"treedit/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gobwas/glob"
	"github.com/mattn/go-runewidth"
)

// TreeNode represents a node in the file tree
type TreeNode struct {
	Name     string
	Path     string
	IsDir    bool
	IsOpen   bool
	Children []*TreeNode
	Parent   *TreeNode
	Level    int

	// loaded is set once the directory has been read
	loaded bool
}

// FileTree is the sidebar: a directory tree rooted at one directory
type FileTree struct {
	Root        *TreeNode
	Cursor      int
	VisibleRows []*TreeNode
	Height      int
	Width       int
	Offset      int  // For scrolling
	ShowHidden  bool // Whether to show dot-files
	Exclude     []glob.Glob

	focused bool
	theme   styles.Theme
}

// NewFileTree creates a tree rooted at rootDir with the root expanded.
// Entries whose name matches a pattern in exclude are not listed.
func NewFileTree(rootDir string, showHidden bool, exclude []glob.Glob, theme styles.Theme) *FileTree {
	rootDir = filepath.Clean(rootDir)
	root := &TreeNode{
		Name:   rootLabel(rootDir),
		Path:   rootDir,
		IsDir:  true,
		IsOpen: true,
	}

	tree := &FileTree{
		Root:       root,
		ShowHidden: showHidden,
		Exclude:    exclude,
		Height:     20,
		Width:      30,
		theme:      theme,
	}

	if err := tree.BuildTree(root); err != nil {
		log.LogWithError(err).Warn("cannot list root directory")
	}
	tree.UpdateVisibleRows()

	return tree
}

func rootLabel(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		if base := filepath.Base(abs); base != string(filepath.Separator) {
			return base
		}
		return abs
	}
	return dir
}

// BuildTree reads the directory behind node and replaces its children.
// Children that already existed keep their open state and subtrees.
func (f *FileTree) BuildTree(node *TreeNode) error {
	if !node.IsDir {
		return nil
	}

	entries, err := os.ReadDir(node.Path)
	node.loaded = true
	if err != nil {
		node.Children = nil
		return errors.NewFileError("cannot read directory", node.Path, errors.DirectoryReadFailed, err)
	}

	previous := make(map[string]*TreeNode, len(node.Children))
	for _, child := range node.Children {
		previous[child.Name] = child
	}

	children := make([]*TreeNode, 0, len(entries))
	for _, entry := range entries {
		if f.hidden(entry.Name()) {
			continue
		}

		isDir := entryIsDir(node.Path, entry)
		if old, ok := previous[entry.Name()]; ok && old.IsDir == isDir {
			children = append(children, old)
			continue
		}

		children = append(children, &TreeNode{
			Name:   entry.Name(),
			Path:   filepath.Join(node.Path, entry.Name()),
			IsDir:  isDir,
			Parent: node,
			Level:  node.Level + 1,
		})
	}

	// Directories first, then files, each case-insensitively by name
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].IsDir != children[j].IsDir {
			return children[i].IsDir
		}
		return strings.ToLower(children[i].Name) < strings.ToLower(children[j].Name)
	})

	node.Children = children
	return nil
}

func (f *FileTree) hidden(name string) bool {
	if !f.ShowHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range f.Exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// entryIsDir follows symlinks; a broken link counts as a file.
func entryIsDir(dir string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Init initializes the component
func (f *FileTree) Init() tea.Cmd {
	return nil
}

// Update handles key messages while the tree has focus
func (f *FileTree) Update(msg tea.Msg) (*FileTree, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !f.focused {
		return f, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		f.MoveUp()
	case "down", "j":
		f.MoveDown()
	case "pgup":
		f.MoveBy(-f.pageSize())
	case "pgdown":
		f.MoveBy(f.pageSize())
	case "home", "g":
		f.MoveBy(-len(f.VisibleRows))
	case "end", "G":
		f.MoveBy(len(f.VisibleRows))
	case "left", "h":
		// If folder is open, close it. Otherwise, go to parent.
		if current := f.Selected(); current != nil {
			if current.IsDir && current.IsOpen {
				return f, f.Toggle()
			}
			f.MoveToParent()
		}
	case "right", "l":
		if current := f.Selected(); current != nil && current.IsDir && !current.IsOpen {
			return f, f.Toggle()
		}
	case "enter", " ":
		current := f.Selected()
		if current == nil {
			return f, nil
		}
		if current.IsDir {
			return f, f.Toggle()
		}
		path := current.Path
		return f, func() tea.Msg {
			return messages.FileSelectedMsg{Path: path}
		}
	}

	return f, nil
}

// Toggle expands or collapses the directory under the cursor and reports
// the change with a DirToggledMsg.
func (f *FileTree) Toggle() tea.Cmd {
	node := f.Selected()
	if node == nil || !node.IsDir {
		return nil
	}

	node.IsOpen = !node.IsOpen
	if node.IsOpen && !node.loaded {
		if err := f.BuildTree(node); err != nil {
			log.LogWithError(err).Warn("cannot expand directory")
		}
	}
	f.UpdateVisibleRows()

	path, open := node.Path, node.IsOpen
	return func() tea.Msg {
		return messages.DirToggledMsg{Path: path, Open: open}
	}
}

// Reload re-reads the open directory at dir, if the tree shows it.
// It reports whether a node was refreshed.
func (f *FileTree) Reload(dir string) bool {
	node := f.find(filepath.Clean(dir))
	if node == nil || !node.IsDir || !node.loaded {
		return false
	}

	var selectedPath string
	if current := f.Selected(); current != nil {
		selectedPath = current.Path
	}

	if err := f.BuildTree(node); err != nil {
		log.LogWithError(err).Warn("cannot reload directory")
	}
	f.UpdateVisibleRows()

	// Keep the cursor on the same entry when it survived
	for i, row := range f.VisibleRows {
		if row.Path == selectedPath {
			f.Cursor = i
			break
		}
	}
	f.EnsureCursorVisible()
	return true
}

func (f *FileTree) find(path string) *TreeNode {
	var walk func(n *TreeNode) *TreeNode
	walk = func(n *TreeNode) *TreeNode {
		if n.Path == path {
			return n
		}
		if !strings.HasPrefix(path, n.Path) && n != f.Root {
			return nil
		}
		for _, child := range n.Children {
			if found := walk(child); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(f.Root)
}

// OpenDirectories lists every expanded directory, root first
func (f *FileTree) OpenDirectories() []string {
	var dirs []string
	for _, row := range f.VisibleRows {
		if row.IsDir && row.IsOpen {
			dirs = append(dirs, row.Path)
		}
	}
	return dirs
}

// UpdateVisibleRows updates the list of visible rows based on which nodes are open
func (f *FileTree) UpdateVisibleRows() {
	f.VisibleRows = f.VisibleRows[:0]
	f.addVisibleNode(f.Root)

	if f.Cursor >= len(f.VisibleRows) {
		f.Cursor = max(0, len(f.VisibleRows)-1)
	}
	f.EnsureCursorVisible()
}

// addVisibleNode recursively adds visible nodes to the VisibleRows slice
func (f *FileTree) addVisibleNode(node *TreeNode) {
	f.VisibleRows = append(f.VisibleRows, node)
	if node.IsOpen {
		for _, child := range node.Children {
			f.addVisibleNode(child)
		}
	}
}

// Selected returns the node under the cursor
func (f *FileTree) Selected() *TreeNode {
	if f.Cursor < 0 || f.Cursor >= len(f.VisibleRows) {
		return nil
	}
	return f.VisibleRows[f.Cursor]
}

// MoveUp moves the cursor up one row
func (f *FileTree) MoveUp() {
	f.MoveBy(-1)
}

// MoveDown moves the cursor down one row
func (f *FileTree) MoveDown() {
	f.MoveBy(1)
}

// MoveBy moves the cursor by delta rows, clamped to the tree
func (f *FileTree) MoveBy(delta int) {
	f.Cursor = min(max(f.Cursor+delta, 0), max(len(f.VisibleRows)-1, 0))
	f.EnsureCursorVisible()
}

// MoveToParent moves the cursor to the parent of the current node
func (f *FileTree) MoveToParent() {
	node := f.Selected()
	if node == nil || node.Parent == nil {
		return
	}

	for i, row := range f.VisibleRows {
		if row == node.Parent {
			f.Cursor = i
			break
		}
	}
	f.EnsureCursorVisible()
}

func (f *FileTree) pageSize() int {
	return max(f.Height-1, 1)
}

// EnsureCursorVisible makes sure the cursor is visible by adjusting the scroll offset
func (f *FileTree) EnsureCursorVisible() {
	if f.Height <= 0 {
		return
	}

	if f.Cursor < f.Offset {
		f.Offset = f.Cursor
	}
	if f.Cursor >= f.Offset+f.Height {
		f.Offset = f.Cursor - f.Height + 1
	}

	maxOffset := max(0, len(f.VisibleRows)-f.Height)
	if f.Offset > maxOffset {
		f.Offset = maxOffset
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// SetSize sets the inner size of the tree in cells
func (f *FileTree) SetSize(width, height int) {
	f.Width = width
	f.Height = height
	f.EnsureCursorVisible()
}

// Focus gives the tree key input
func (f *FileTree) Focus() {
	f.focused = true
}

// Blur removes key input from the tree
func (f *FileTree) Blur() {
	f.focused = false
}

// Focused reports whether the tree has key input
func (f *FileTree) Focused() bool {
	return f.focused
}

// View returns the rendered view of the file tree
func (f *FileTree) View() string {
	if len(f.VisibleRows) == 0 || f.Width <= 0 {
		return f.theme.Muted.Render(runewidth.Truncate("No files", max(f.Width, 0), "…"))
	}

	endIdx := min(len(f.VisibleRows), f.Offset+f.Height)
	lines := make([]string, 0, endIdx-f.Offset)

	for i := f.Offset; i < endIdx; i++ {
		node := f.VisibleRows[i]

		indent := strings.Repeat("  ", node.Level)
		icon := "📄 "
		if node.IsDir {
			if node.IsOpen {
				icon = "📂 "
			} else {
				icon = "📁 "
			}
		}

		label := runewidth.Truncate(indent+icon+node.Name, f.Width, "…")
		label += strings.Repeat(" ", max(0, f.Width-runewidth.StringWidth(label)))

		switch {
		case i == f.Cursor && f.focused:
			lines = append(lines, f.theme.TreeCursor.Render(label))
		case i == f.Cursor:
			lines = append(lines, f.theme.TreeCursorBlurred.Render(label))
		case node.IsDir:
			lines = append(lines, f.theme.TreeDir.Render(label))
		default:
			lines = append(lines, f.theme.TreeFile.Render(label))
		}
	}

	return strings.Join(lines, "\n")
}
