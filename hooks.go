package toolshelf

import (
	"sync"
)

// Hook function types for catalog events
type (
	// RecordsMergedHook is called once per group of duplicates folded into one record
	RecordsMergedHook func(name string, count int)

	// CatalogSavedHook is called after the catalog file is written
	CatalogSavedHook func(path string)

	// DocumentWrittenHook is called after the document is written
	DocumentWrittenHook func(path string)
)

// hooks manages event callbacks
type hooks struct {
	mu                sync.RWMutex
	onRecordsMerged   []RecordsMergedHook
	onCatalogSaved    []CatalogSavedHook
	onDocumentWritten []DocumentWrittenHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnRecordsMerged registers a callback for merged duplicates
func (t *toolshelf) OnRecordsMerged(fn RecordsMergedHook) {
	t.hooks.mu.Lock()
	defer t.hooks.mu.Unlock()
	t.hooks.onRecordsMerged = append(t.hooks.onRecordsMerged, fn)
}

// OnCatalogSaved registers a callback for catalog writes
func (t *toolshelf) OnCatalogSaved(fn CatalogSavedHook) {
	t.hooks.mu.Lock()
	defer t.hooks.mu.Unlock()
	t.hooks.onCatalogSaved = append(t.hooks.onCatalogSaved, fn)
}

// OnDocumentWritten registers a callback for document writes
func (t *toolshelf) OnDocumentWritten(fn DocumentWrittenHook) {
	t.hooks.mu.Lock()
	defer t.hooks.mu.Unlock()
	t.hooks.onDocumentWritten = append(t.hooks.onDocumentWritten, fn)
}

func (h *hooks) recordsMerged(name string, count int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onRecordsMerged {
		hook(name, count)
	}
}

func (h *hooks) catalogSaved(path string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onCatalogSaved {
		hook(path)
	}
}

func (h *hooks) documentWritten(path string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onDocumentWritten {
		hook(path)
	}
}
