package entities

import "strings"

const (
	checklistLineSep  = "\n"
	checklistFieldSep = "|"
	checklistDone     = "1"
	checklistOpen     = "0"
)

// ChecklistItem - пункт чек-листа заметки.
type ChecklistItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// ParseChecklist разбирает строки вида "1|текст". Строки без разделителя пропускаются.
func ParseChecklist(s string) []ChecklistItem {
	items := []ChecklistItem{}
	if strings.TrimSpace(s) == "" {
		return items
	}
	for _, line := range strings.Split(s, checklistLineSep) {
		flag, text, ok := strings.Cut(line, checklistFieldSep)
		if !ok {
			continue
		}
		items = append(items, ChecklistItem{Text: text, Done: flag == checklistDone})
	}
	return items
}

// SerializeChecklist возвращает nil для пустого списка.
func SerializeChecklist(items []ChecklistItem) *string {
	if len(items) == 0 {
		return nil
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		flag := checklistOpen
		if it.Done {
			flag = checklistDone
		}
		lines = append(lines, flag+checklistFieldSep+it.Text)
	}
	s := strings.Join(lines, checklistLineSep)
	return &s
}
