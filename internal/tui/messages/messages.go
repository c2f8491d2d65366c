package messages

import "treedit/internal/watch"

// FileSelectedMsg is sent by the sidebar when the user picks a file
type FileSelectedMsg struct {
	Path string
}

// DirToggledMsg is sent by the sidebar when a directory opens or closes
type DirToggledMsg struct {
	Path string
	Open bool
}

// TreeChangedMsg carries a change seen by the directory watcher
type TreeChangedMsg struct {
	Change watch.Change
}
