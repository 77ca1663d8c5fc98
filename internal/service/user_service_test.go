package service

import (
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsers(f *fixture) *UserService {
	return NewUserService(f.users, f.prefs)
}

func TestSavePreferences_DerivesTertiary(t *testing.T) {
	cases := []struct {
		primary, secondary, tertiary string
	}{
		{model.StyleVisual, model.StyleAuditory, model.StyleReadWrite},
		{model.StyleVisual, model.StyleReadWrite, model.StyleAuditory},
		{model.StyleAuditory, model.StyleReadWrite, model.StyleVisual},
	}
	for _, c := range cases {
		t.Run(c.primary+"_"+c.secondary, func(t *testing.T) {
			f := newFixture(t)
			user := f.createUser(t, "pat")

			result, err := newUsers(f).SavePreferences(user.ID, c.primary, c.secondary)
			require.NoError(t, err)
			assert.Equal(t, c.primary, result.PrimaryStyle)
			assert.Equal(t, c.secondary, result.SecondaryStyle)
			assert.Equal(t, c.tertiary, result.TertiaryStyle)
		})
	}
}

func TestSavePreferences_Validation(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "kim")
	svc := newUsers(f)

	_, err := svc.SavePreferences(user.ID, model.StyleVisual, model.StyleVisual)
	assert.ErrorIs(t, err, util.ErrInvalidStyle)

	_, err = svc.SavePreferences(user.ID, "Kinesthetic", model.StyleVisual)
	assert.ErrorIs(t, err, util.ErrInvalidStyle)

	_, err = svc.SavePreferences(user.ID, model.StyleVisual, "")
	assert.ErrorIs(t, err, util.ErrInvalidStyle)
}

func TestSavePreferences_RetakeOverwrites(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "rae")
	svc := newUsers(f)

	_, err := svc.SavePreferences(user.ID, model.StyleVisual, model.StyleAuditory)
	require.NoError(t, err)

	updated, err := svc.SavePreferences(user.ID, model.StyleAuditory, model.StyleReadWrite)
	require.NoError(t, err)
	assert.Equal(t, model.StyleAuditory, updated.PrimaryStyle)
	assert.Equal(t, model.StyleVisual, updated.TertiaryStyle)

	var rows int64
	require.NoError(t, f.db.Model(&model.StylePreference{}).
		Where("user_id = ?", user.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "noor")
	svc := newUsers(f)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.User.ID)
	assert.Nil(t, profile.Preferences)

	_, err = svc.SavePreferences(user.ID, model.StyleReadWrite, model.StyleVisual)
	require.NoError(t, err)

	profile, err = svc.GetProfile(user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.Preferences)
	assert.Equal(t, model.StyleReadWrite, profile.Preferences.PrimaryStyle)

	_, err = svc.GetProfile(999)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestGetPreferences_NotFound(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "ori")

	_, err := newUsers(f).GetPreferences(user.ID)
	assert.ErrorIs(t, err, util.ErrPreferencesNotFound)
}
