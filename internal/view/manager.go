// Package view maintains the searchable, paginated table view over the
// unified carpark set.
package view

import (
	"strings"

	"carpark-status-backend/internal/model"
)

// Manager derives the visible table slice from a fixed full set, a
// search term, and a current page. It never reorders: the filtered
// subset keeps the full set's order, and is recomputed wholesale on
// every term change rather than patched incrementally.
type Manager struct {
	full     []model.Carpark
	filtered []model.Carpark
	term     string
	page     int
	pageSize int
}

// NewManager creates a view over the given set, unfiltered, on page 1.
func NewManager(full []model.Carpark, pageSize int) *Manager {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Manager{
		full:     full,
		filtered: full,
		page:     1,
		pageSize: pageSize,
	}
}

// SetSearchTerm filters by case-insensitive substring match against
// identifier or address and resets the view to page 1.
func (m *Manager) SetSearchTerm(term string) {
	m.term = term
	m.page = 1

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		m.filtered = m.full
		return
	}

	filtered := make([]model.Carpark, 0, len(m.full))
	for _, cp := range m.full {
		if strings.Contains(strings.ToLower(cp.ID), needle) ||
			strings.Contains(strings.ToLower(cp.Address), needle) {
			filtered = append(filtered, cp)
		}
	}
	m.filtered = filtered
}

// SearchTerm returns the current search term.
func (m *Manager) SearchTerm() string {
	return m.term
}

// SetPage moves to page n. Out-of-range requests are rejected, not
// clamped: the reported ok is false and the state is unchanged.
func (m *Manager) SetPage(n int) bool {
	if n < 1 || n > m.TotalPages() {
		return false
	}
	m.page = n
	return true
}

// Page returns the current page number.
func (m *Manager) Page() int {
	return m.page
}

// TotalPages returns the page count of the current filtered subset.
// An empty subset has zero pages.
func (m *Manager) TotalPages() int {
	return (len(m.filtered) + m.pageSize - 1) / m.pageSize
}

// TotalItems returns the size of the current filtered subset.
func (m *Manager) TotalItems() int {
	return len(m.filtered)
}

// VisiblePage returns the filtered slice for the current page, empty
// when the filter matched nothing.
func (m *Manager) VisiblePage() []model.Carpark {
	start := (m.page - 1) * m.pageSize
	if start >= len(m.filtered) {
		return []model.Carpark{}
	}
	end := start + m.pageSize
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	return m.filtered[start:end]
}
