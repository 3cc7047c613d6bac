package ports

import (
	"context"

	"github.com/familyhub/dashboard/internal/core/domain"
)

// SettingsReader exposes the current settings values.
type SettingsReader interface {
	Notifications() domain.NotificationSettings
	Family() domain.FamilySettings
}

// SettingsService is the process-wide settings store.
type SettingsService interface {
	SettingsReader
	Load(ctx context.Context)
	UpdateNotifications(patch domain.NotificationPatch) domain.NotificationSettings
	UpdateFamilySettings(patch domain.FamilyPatch) domain.FamilySettings
	Save(ctx context.Context) error
}
