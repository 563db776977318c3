package tracker

import "golang.org/x/exp/slices"

type (
	// History is the checkpoint service the model reports every committed
	// mutation to. Checkpoint is called exactly once after each mutation;
	// Undo and Redo restore earlier checkpoints in place and report whether
	// there was anything to restore.
	History interface {
		Checkpoint()
		Undo() bool
		Redo() bool
	}

	// UndoHistory is an in-memory History over a document of value type T,
	// i.e. a type without references so that assigning it is a deep copy. The
	// document is restored in place, so anyone holding a pointer to it sees
	// the restored state.
	UndoHistory[T any] struct {
		doc       *T
		last      T
		undoStack []T
		redoStack []T
		maxUndo   int
	}

	HistoryModel Model
)

const defaultMaxUndo = 64

// NewUndoHistory returns a History taking snapshots of doc. The current
// state of doc is the initial checkpoint.
func NewUndoHistory[T any](doc *T, maxUndo int) *UndoHistory[T] {
	if maxUndo <= 0 {
		maxUndo = defaultMaxUndo
	}
	return &UndoHistory[T]{doc: doc, last: *doc, maxUndo: maxUndo}
}

func (h *UndoHistory[T]) Checkpoint() {
	h.undoStack = append(h.undoStack, h.last)
	if len(h.undoStack) > h.maxUndo {
		h.undoStack = slices.Delete(h.undoStack, 0, len(h.undoStack)-h.maxUndo)
	}
	h.last = *h.doc
	h.redoStack = h.redoStack[:0]
}

func (h *UndoHistory[T]) Undo() bool {
	if len(h.undoStack) == 0 {
		return false
	}
	h.redoStack = append(h.redoStack, h.last)
	h.last = h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	*h.doc = h.last
	return true
}

func (h *UndoHistory[T]) Redo() bool {
	if len(h.redoStack) == 0 {
		return false
	}
	h.undoStack = append(h.undoStack, h.last)
	h.last = h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	*h.doc = h.last
	return true
}

// CanUndo reports whether Undo would restore anything.
func (h *UndoHistory[T]) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo reports whether Redo would restore anything.
func (h *UndoHistory[T]) CanRedo() bool { return len(h.redoStack) > 0 }

// History returns the History view of the model, containing the undo and
// redo actions.
func (m *Model) History() *HistoryModel { return (*HistoryModel)(m) }

// Undo returns an Action to restore the previous checkpoint.
func (m *HistoryModel) Undo() Action { return MakeAction((*historyUndo)(m)) }

type historyUndo HistoryModel

func (m *historyUndo) Enabled() bool {
	if c, ok := m.history.(interface{ CanUndo() bool }); ok {
		return c.CanUndo()
	}
	return true
}
func (m *historyUndo) Do() {
	if m.history.Undo() {
		(*Model)(m).afterRestore()
	}
}

// Redo returns an Action to restore the checkpoint undone last.
func (m *HistoryModel) Redo() Action { return MakeAction((*historyRedo)(m)) }

type historyRedo HistoryModel

func (m *historyRedo) Enabled() bool {
	if c, ok := m.history.(interface{ CanRedo() bool }); ok {
		return c.CanRedo()
	}
	return true
}
func (m *historyRedo) Do() {
	if m.history.Redo() {
		(*Model)(m).afterRestore()
	}
}

// Checkpoints returns the number of mutations committed since the session
// was (re)initialized.
func (m *HistoryModel) Checkpoints() int { return m.checkpoints }
