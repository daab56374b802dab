package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/dashboard"
)

func contentView(location string) dashboard.View {
	return dashboard.View{
		Current: dashboard.CurrentConditions{Location: location, Temperature: "15°"},
	}
}

func TestStore_InitialStateIsLoading(t *testing.T) {
	store := dashboard.NewStore()

	state, search, view := store.Snapshot()
	assert.Equal(t, dashboard.StateLoading, state)
	assert.Empty(t, search)
	assert.Nil(t, view)
}

func TestStore_ContentPublishesViewAndSearchText(t *testing.T) {
	store := dashboard.NewStore()
	store.ShowContent(contentView("Berlin, Germany"))

	state, search, view := store.Snapshot()
	assert.Equal(t, dashboard.StateContent, state)
	assert.Equal(t, "Berlin, Germany", search)
	require.NotNil(t, view)
	assert.Equal(t, "15°", view.Current.Temperature)
}

func TestStore_NoResultsClearsSearchAndSuppressesPanels(t *testing.T) {
	store := dashboard.NewStore()
	store.ShowContent(contentView("Berlin, Germany"))
	store.ShowLoading()
	store.ShowNoResults()

	state, search, view := store.Snapshot()
	assert.Equal(t, dashboard.StateNoResults, state)
	assert.Empty(t, search, "no-results clears the search field")
	assert.Nil(t, view, "no-results suppresses the weather panels")
}

func TestStore_ErrorSuppressesPanelsButKeepsSearchText(t *testing.T) {
	store := dashboard.NewStore()
	store.ShowContent(contentView("Berlin, Germany"))
	store.ShowError()

	state, search, view := store.Snapshot()
	assert.Equal(t, dashboard.StateError, state)
	assert.Equal(t, "Berlin, Germany", search)
	assert.Nil(t, view)
}

func TestStore_LoadingKeepsLastView(t *testing.T) {
	store := dashboard.NewStore()
	store.ShowContent(contentView("Berlin, Germany"))
	store.ShowLoading()

	state, _, view := store.Snapshot()
	assert.Equal(t, dashboard.StateLoading, state)
	require.NotNil(t, view, "chrome stays visible while a refresh is in flight")
	assert.Equal(t, "Berlin, Germany", view.Current.Location)
}

func TestStore_ErrorThenContentRecovers(t *testing.T) {
	store := dashboard.NewStore()
	store.ShowError()
	store.ShowLoading()
	store.ShowContent(contentView("Paris, France"))

	state, search, view := store.Snapshot()
	assert.Equal(t, dashboard.StateContent, state)
	assert.Equal(t, "Paris, France", search)
	require.NotNil(t, view)
}
