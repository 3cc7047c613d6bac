package ports

import "github.com/familyhub/dashboard/internal/core/domain"

// ViewComposer decides what the presentation layer renders.
type ViewComposer interface {
	VisibleNavigation(role domain.Role) []domain.NavEntry
	Resolve(role domain.Role, view domain.ViewID) domain.ViewID
	SetActiveView(id string) (domain.ViewID, error)
	ActiveView() domain.ViewID
	Render() domain.RenderTarget
	SettingsView(role domain.Role) domain.SettingsView
}
