package newsportal

import (
	"strconv"
	"strings"
)

// Toolbar builds the editor menu for staff. It is nil when staff may neither add nor change news.
func (m *Manager) Toolbar(staff *Staff, current *News) *ToolbarMenu {
	base := strings.TrimSuffix(m.settings.AdminURL, "/")

	var items []ToolbarItem
	if staff.HasPermission(PermAddNews) {
		items = append(items, ToolbarItem{Title: "Add News", URL: base + "/news/add/"})
	}
	if current != nil && staff.HasPermission(PermChangeNews) {
		items = append(items, ToolbarItem{Title: "Edit News", URL: base + "/news/" + strconv.Itoa(current.ID) + "/"})
	}

	if len(items) == 0 {
		return nil
	}

	return &ToolbarMenu{Title: "News", Items: items}
}
