package storage

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/models"
)

func DefaultSettings() models.Settings {
	return models.Settings{
		SessionMin:           constants.DefaultSessionMin,
		TaskAwardPoints:      constants.DefaultTaskAwardPoints,
		MoodDisplaySec:       constants.DefaultMoodDisplaySec,
		CelebrationSec:       constants.DefaultCelebrationSec,
		NotificationsEnabled: constants.DefaultNotificationsOn,
	}
}

type settingRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// decodeSettings overlays stored key/value rows on the defaults. Unknown
// keys are ignored.
func decodeSettings(rows []settingRow) (models.Settings, error) {
	s := DefaultSettings()
	for _, r := range rows {
		var err error
		switch r.Key {
		case constants.SettingSessionMin:
			s.SessionMin, err = strconv.Atoi(r.Value)
		case constants.SettingTaskAwardPoints:
			s.TaskAwardPoints, err = strconv.Atoi(r.Value)
		case constants.SettingMoodDisplaySec:
			s.MoodDisplaySec, err = strconv.Atoi(r.Value)
		case constants.SettingCelebrationSec:
			s.CelebrationSec, err = strconv.Atoi(r.Value)
		case constants.SettingNotificationsEnabled:
			s.NotificationsEnabled, err = strconv.ParseBool(r.Value)
		}
		if err != nil {
			return models.Settings{}, fmt.Errorf("parsing setting %s=%q: %w", r.Key, r.Value, err)
		}
	}
	return s, nil
}

func encodeSettings(s models.Settings) []settingRow {
	return []settingRow{
		{constants.SettingSessionMin, strconv.Itoa(s.SessionMin)},
		{constants.SettingTaskAwardPoints, strconv.Itoa(s.TaskAwardPoints)},
		{constants.SettingMoodDisplaySec, strconv.Itoa(s.MoodDisplaySec)},
		{constants.SettingCelebrationSec, strconv.Itoa(s.CelebrationSec)},
		{constants.SettingNotificationsEnabled, strconv.FormatBool(s.NotificationsEnabled)},
	}
}
