package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

func newCampaignFixture(t *testing.T) (*CampaignService, storage.Storage, *models.User) {
	t.Helper()
	store := storage.NewMemoryStorage()
	user := &models.User{Username: "john@company.com", Password: "hash", Email: "john@company.com", Name: "John"}
	require.NoError(t, store.CreateUser(user))
	return NewCampaignService(store, nil), store, user
}

func TestCreateCampaignAppendsActivityEntry(t *testing.T) {
	svc, store, user := newCampaignFixture(t)

	campaign, err := svc.CreateCampaign(user.ID, &models.CreateCampaignRequest{
		Name:     "Q1 Outreach",
		Type:     models.CampaignTypeConnection,
		Settings: models.JSON(`{"dailyLimit":25}`),
	})
	require.NoError(t, err)
	assert.NotZero(t, campaign.ID)
	assert.Equal(t, models.CampaignStatusActive, campaign.Status)

	entries, err := store.GetActivityLogByUserID(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActivityCampaignCreated, entries[0].Type)
	assert.Equal(t, "New automation campaign created", entries[0].Title)
	assert.Contains(t, entries[0].Description, "Q1 Outreach")
}

func TestUpdateCampaignStatusAppendsActivityEntry(t *testing.T) {
	svc, store, user := newCampaignFixture(t)

	campaign, err := svc.CreateCampaign(user.ID, &models.CreateCampaignRequest{
		Name: "Q1 Outreach",
		Type: models.CampaignTypeConnection,
	})
	require.NoError(t, err)

	paused := models.CampaignStatusPaused
	updated, err := svc.UpdateCampaign(user.ID, campaign.ID, &models.CampaignPatch{Status: &paused})
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusPaused, updated.Status)

	entries, err := store.GetActivityLogByUserID(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.ActivityCampaignUpdated, entries[0].Type)
	assert.Equal(t, "Campaign paused", entries[0].Title)
	assert.Contains(t, entries[0].Description, "Q1 Outreach")
}

func TestUpdateCampaignUnknownIDLeavesNoTrace(t *testing.T) {
	svc, store, user := newCampaignFixture(t)

	paused := models.CampaignStatusPaused
	_, err := svc.UpdateCampaign(user.ID, 99, &models.CampaignPatch{Status: &paused})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	entries, err := store.GetActivityLogByUserID(user.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdateCampaignOtherUsersCampaignReadsAsNotFound(t *testing.T) {
	svc, store, user := newCampaignFixture(t)
	other := &models.User{Username: "jane@company.com", Password: "hash", Email: "jane@company.com", Name: "Jane"}
	require.NoError(t, store.CreateUser(other))

	campaign, err := svc.CreateCampaign(other.ID, &models.CreateCampaignRequest{
		Name: "Theirs",
		Type: models.CampaignTypeConnection,
	})
	require.NoError(t, err)

	paused := models.CampaignStatusPaused
	_, err = svc.UpdateCampaign(user.ID, campaign.ID, &models.CampaignPatch{Status: &paused})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateCampaignRejectsSettingsForWrongType(t *testing.T) {
	svc, _, user := newCampaignFixture(t)

	campaign, err := svc.CreateCampaign(user.ID, &models.CreateCampaignRequest{
		Name: "Q1 Outreach",
		Type: models.CampaignTypeConnection,
	})
	require.NoError(t, err)

	// likesPerDay belongs to engagement campaigns, not connection ones.
	settings := models.JSON(`{"likesPerDay":50}`)
	_, err = svc.UpdateCampaign(user.ID, campaign.ID, &models.CampaignPatch{Settings: &settings})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestUpdateCampaignValidatesSettingsAgainstPatchedType(t *testing.T) {
	svc, _, user := newCampaignFixture(t)

	campaign, err := svc.CreateCampaign(user.ID, &models.CreateCampaignRequest{
		Name: "Q1 Outreach",
		Type: models.CampaignTypeConnection,
	})
	require.NoError(t, err)

	// Switching type and settings together validates against the new type.
	engagement := models.CampaignTypeEngagement
	settings := models.JSON(`{"likesPerDay":50,"commentsPerDay":12}`)
	updated, err := svc.UpdateCampaign(user.ID, campaign.ID, &models.CampaignPatch{
		Type:     &engagement,
		Settings: &settings,
	})
	require.NoError(t, err)
	assert.Equal(t, models.CampaignTypeEngagement, updated.Type)
}
