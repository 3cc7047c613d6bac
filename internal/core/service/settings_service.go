package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
	"github.com/familyhub/dashboard/internal/core/validation"
)

const (
	// DefaultKeyPrefix namespaces the settings keys in the shared store.
	DefaultKeyPrefix = "familyHub_"

	notificationsKey  = "notifications"
	familySettingsKey = "familySettings"
)

// SettingsService is the process-wide settings store. Values live in memory;
// the key-value store is only touched by Load and Save.
type SettingsService struct {
	store  ports.KeyValueStore
	prefix string
	log    zerolog.Logger

	notifications domain.NotificationSettings
	family        domain.FamilySettings
}

// NewSettingsService starts at the defaults; call Load to restore stored values.
// An empty prefix means DefaultKeyPrefix.
func NewSettingsService(store ports.KeyValueStore, prefix string, log zerolog.Logger) *SettingsService {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &SettingsService{
		store:         store,
		prefix:        prefix,
		log:           log,
		notifications: domain.DefaultNotificationSettings(),
		family:        domain.DefaultFamilySettings(),
	}
}

// Load restores both entries. A missing, unreadable, or malformed entry keeps
// its defaults, as does a family profile that fails validation; Load never fails.
func (s *SettingsService) Load(ctx context.Context) {
	notifications := domain.DefaultNotificationSettings()
	if !s.read(ctx, notificationsKey, &notifications) {
		notifications = domain.DefaultNotificationSettings()
	}
	family := domain.DefaultFamilySettings()
	if !s.read(ctx, familySettingsKey, &family) {
		family = domain.DefaultFamilySettings()
	} else if err := validation.Struct(family); err != nil {
		// a stored profile that could never be saved again is treated as malformed
		s.log.Warn().Err(err).Str("key", s.prefix+familySettingsKey).Msg("invalid stored family settings, using defaults")
		family = domain.DefaultFamilySettings()
	}
	s.notifications = notifications
	s.family = family
}

func (s *SettingsService) read(ctx context.Context, key string, dst any) bool {
	raw, found, err := s.store.Get(ctx, s.prefix+key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.prefix+key).Msg("settings read failed, using defaults")
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn().Err(err).Str("key", s.prefix+key).Msg("malformed stored settings, using defaults")
		return false
	}
	return true
}

// UpdateNotifications applies patch in memory only.
func (s *SettingsService) UpdateNotifications(patch domain.NotificationPatch) domain.NotificationSettings {
	s.notifications = patch.Apply(s.notifications)
	return s.notifications
}

// UpdateFamilySettings applies patch in memory only; validation waits for Save.
func (s *SettingsService) UpdateFamilySettings(patch domain.FamilyPatch) domain.FamilySettings {
	s.family = patch.Apply(s.family)
	return s.family
}

// Save validates the family profile and then writes notifications followed by
// familySettings. A failure between the two writes leaves the first one applied.
func (s *SettingsService) Save(ctx context.Context) error {
	if err := validation.Struct(s.family); err != nil {
		return err
	}

	notifications, err := json.Marshal(s.notifications)
	if err != nil {
		return fmt.Errorf("encode notifications: %w", err)
	}
	family, err := json.Marshal(s.family)
	if err != nil {
		return fmt.Errorf("encode family settings: %w", err)
	}

	if err := s.store.Set(ctx, s.prefix+notificationsKey, string(notifications)); err != nil {
		s.log.Error().Err(err).Msg("failed to save notifications")
		return fmt.Errorf("save notifications: %w", err)
	}
	if err := s.store.Set(ctx, s.prefix+familySettingsKey, string(family)); err != nil {
		s.log.Error().Err(err).Msg("failed to save family settings")
		return fmt.Errorf("save family settings: %w", err)
	}

	s.log.Info().Str("family_name", s.family.FamilyName).Msg("settings saved")
	return nil
}

// Notifications returns a copy of the current toggles.
func (s *SettingsService) Notifications() domain.NotificationSettings {
	return s.notifications
}

// Family returns a copy of the current family profile.
func (s *SettingsService) Family() domain.FamilySettings {
	return s.family
}
