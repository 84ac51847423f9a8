// Package menu prepares fetched menu items for display: search filtering
// and grouping by category.
package menu

import (
	"sort"
	"strings"

	"digital-menu/internal/model"
)

// UncategorizedLabel is the group label for items without a category.
const UncategorizedLabel = "Uncategorized"

// Filter keeps the items whose name or description matches the search
// term case-insensitively. An empty term keeps everything. Visibility is
// enforced by the data-access query, not re-checked here.
func Filter(items []model.MenuItem, term string) []model.MenuItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	matched := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Description), term) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Group arranges items into sections by category, alphabetically by
// label, with missing categories collected under UncategorizedLabel.
// Sections left empty by filtering are dropped.
func Group(items []model.MenuItem) []model.MenuSection {
	byCategory := make(map[string][]model.MenuItem)
	for _, item := range items {
		label := item.Category
		if label == "" {
			label = UncategorizedLabel
		}
		byCategory[label] = append(byCategory[label], item)
	}

	labels := make([]string, 0, len(byCategory))
	for label := range byCategory {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	sections := make([]model.MenuSection, 0, len(labels))
	for _, label := range labels {
		sections = append(sections, model.MenuSection{
			Category: label,
			Items:    byCategory[label],
		})
	}
	return sections
}

// Sections filters then groups in one step; this is what the public menu
// endpoint serves and it re-runs on every search keystroke.
func Sections(items []model.MenuItem, term string) []model.MenuSection {
	return Group(Filter(items, term))
}
