package checklist

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/waypoint/internal/domain"
)

var itemPattern = regexp.MustCompile(`^(\s*(?:[-*+]\s+)?)\[([ xX])\](.*)$`)

// ParseItem classifies a single line. ok is false for non-item lines.
func ParseItem(line string) (item domain.ChecklistItem, ok bool) {
	m := itemPattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
	if m == nil {
		return domain.ChecklistItem{}, false
	}
	return domain.ChecklistItem{
		Prefix:  m[1],
		Checked: m[2] != " ",
		Label:   strings.TrimPrefix(m[3], " "),
	}, true
}

// FormatItem renders an item back to a line.
func FormatItem(item domain.ChecklistItem) string {
	mark := " "
	if item.Checked {
		mark = "x"
	}
	return item.Prefix + "[" + mark + "] " + item.Label
}

// Items returns every checklist item in document order.
func Items(content string) []domain.ChecklistItem {
	var items []domain.ChecklistItem
	for _, line := range splitLines(content) {
		if item, ok := ParseItem(line); ok {
			items = append(items, item)
		}
	}
	return items
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
