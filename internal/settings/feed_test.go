package settings

import (
	"context"
	"testing"

	"digital-menu/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSettingsRepository is a mock implementation of SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (model.BusinessSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.BusinessSettings), args.Error(1)
}

func (m *MockSettingsRepository) Update(ctx context.Context, update model.BusinessSettingsUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func TestFeed_StartPublishesInitialSnapshot(t *testing.T) {
	repo := new(MockSettingsRepository)
	stored := model.DefaultBusinessSettings()
	stored.BusinessName = "Spice Garden"
	repo.On("Get", mock.Anything).Return(stored, nil)

	feed := NewFeed(repo, zerolog.Nop())

	var received []model.BusinessSettings
	unsubscribe := feed.Subscribe(func(s model.BusinessSettings) {
		received = append(received, s)
	})
	defer unsubscribe()

	require.NoError(t, feed.Start(context.Background(), 0))

	require.Len(t, received, 1)
	assert.Equal(t, "Spice Garden", received[0].BusinessName)
	assert.Equal(t, stored, feed.Current())
}

func TestFeed_SubscribeAfterStartGetsCurrent(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("Get", mock.Anything).Return(model.DefaultBusinessSettings(), nil)

	feed := NewFeed(repo, zerolog.Nop())
	require.NoError(t, feed.Start(context.Background(), 0))

	var received []model.BusinessSettings
	unsubscribe := feed.Subscribe(func(s model.BusinessSettings) {
		received = append(received, s)
	})
	defer unsubscribe()

	require.Len(t, received, 1)
	assert.Equal(t, "My Restaurant", received[0].BusinessName)
}

func TestFeed_MissingDocumentServesDefaults(t *testing.T) {
	// The repository contract already folds a missing document into the
	// defaults; the feed passes them through untouched.
	repo := new(MockSettingsRepository)
	repo.On("Get", mock.Anything).Return(model.DefaultBusinessSettings(), nil)

	feed := NewFeed(repo, zerolog.Nop())
	require.NoError(t, feed.Start(context.Background(), 0))

	current := feed.Current()
	assert.True(t, current.AcceptingOrders)
	assert.True(t, current.BusinessOpen)
	assert.Equal(t, "My Restaurant", current.BusinessName)
}

func TestFeed_UpdateRepublishes(t *testing.T) {
	repo := new(MockSettingsRepository)
	initial := model.DefaultBusinessSettings()
	updated := initial
	updated.BusinessOpen = false

	repo.On("Get", mock.Anything).Return(initial, nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	repo.On("Get", mock.Anything).Return(updated, nil)

	feed := NewFeed(repo, zerolog.Nop())
	require.NoError(t, feed.Start(context.Background(), 0))

	var received []model.BusinessSettings
	unsubscribe := feed.Subscribe(func(s model.BusinessSettings) {
		received = append(received, s)
	})
	defer unsubscribe()

	open := false
	require.NoError(t, feed.Update(context.Background(), model.BusinessSettingsUpdate{BusinessOpen: &open}))

	// One delivery on subscribe, one after the update; each a full snapshot.
	require.Len(t, received, 2)
	assert.True(t, received[0].BusinessOpen)
	assert.False(t, received[1].BusinessOpen)
	assert.False(t, feed.Current().BusinessOpen)
}

func TestFeed_UpdateValidationAborts(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("Get", mock.Anything).Return(model.DefaultBusinessSettings(), nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(model.ErrEmptyBusinessName)

	feed := NewFeed(repo, zerolog.Nop())
	require.NoError(t, feed.Start(context.Background(), 0))

	name := "   "
	err := feed.Update(context.Background(), model.BusinessSettingsUpdate{BusinessName: &name})
	assert.ErrorIs(t, err, model.ErrEmptyBusinessName)

	// No re-fetch, no publish.
	repo.AssertNumberOfCalls(t, "Get", 1)
}

func TestFeed_Unsubscribe(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("Get", mock.Anything).Return(model.DefaultBusinessSettings(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	feed := NewFeed(repo, zerolog.Nop())
	require.NoError(t, feed.Start(context.Background(), 0))

	calls := 0
	unsubscribe := feed.Subscribe(func(model.BusinessSettings) { calls++ })
	require.Equal(t, 1, calls)

	unsubscribe()

	require.NoError(t, feed.Update(context.Background(), model.BusinessSettingsUpdate{}))
	assert.Equal(t, 1, calls)
}
