package directory_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpvr/pvrfs/internal/directory"
	"github.com/openpvr/pvrfs/internal/pvrpath"
	"github.com/openpvr/pvrfs/internal/testutil"
)

func timerBackend() *testutil.Backend {
	b := testutil.NewBackend()
	b.Timers.List = []*testutil.FakeTimer{
		{Client: 1, Index: 1, TTitle: "News", Channel: 5},
		{Client: 1, Index: 2, TTitle: "Paused", Disabled: true, Channel: 5},
		{Client: 1, Index: 3, TTitle: "Series", Rule: true, Channel: 5},
		{Client: 1, Index: 4, TTitle: "Episode", Parent: 3, Channel: 5},
		{Client: 1, Index: 5, TTitle: "Reminder", Rule: true, Radio: true,
			Channel: pvrpath.AnyChannelUID},
		{Client: 2, Index: 3, TTitle: "OtherClient", Parent: 9, Channel: 7},
	}
	return b
}

func TestTimersRootListing(t *testing.T) {
	d := newDir(t, timerBackend())

	results, err := d.List(context.Background(), "pvr://timers/tv/timers/")
	require.NoError(t, err)

	want := []string{"News", "Paused", "Episode", "OtherClient"}
	if diff := cmp.Diff(want, listLabels(results)); diff != "" {
		t.Errorf("timers root mismatch (-want +got):\n%s", diff)
	}
	for _, e := range results.Items() {
		assert.False(t, e.IsFolder)
		assert.NotNil(t, e.Timer)
	}
}

func TestTimersHideDisabledView(t *testing.T) {
	d := newDir(t, timerBackend())

	results, err := d.List(context.Background(), "pvr://timers/tv/timers/?view=hidedisabled")
	require.NoError(t, err)

	want := []string{"News", "Episode", "OtherClient"}
	if diff := cmp.Diff(want, listLabels(results)); diff != "" {
		t.Errorf("hidedisabled view mismatch (-want +got):\n%s", diff)
	}
}

func TestTimersHideDisabledDefaultFromSettings(t *testing.T) {
	b := timerBackend()
	b.Settings.HideDisabled = true
	d := newDir(t, b)

	results, err := d.List(context.Background(), "pvr://timers/tv/timers/")
	require.NoError(t, err)
	assert.NotContains(t, listLabels(results), "Paused")
}

func TestTimersUnsupportedView(t *testing.T) {
	d := newDir(t, timerBackend())

	_, err := d.List(context.Background(), "pvr://timers/tv/timers/?view=upcoming")
	assert.ErrorIs(t, err, directory.ErrUnsupportedView)
}

func TestTimerRulesIncludeAnyChannelRules(t *testing.T) {
	d := newDir(t, timerBackend())

	results, err := d.List(context.Background(), "pvr://timers/tv/rules/")
	require.NoError(t, err)

	// A rule not bound to any channel shows up in both kinds.
	want := []string{"Series", "Reminder"}
	if diff := cmp.Diff(want, listLabels(results)); diff != "" {
		t.Errorf("rules listing mismatch (-want +got):\n%s", diff)
	}
	for _, e := range results.Items() {
		assert.True(t, e.IsFolder, "rules list as folders")
	}
}

func TestTimerRuleSubListing(t *testing.T) {
	d := newDir(t, timerBackend())

	results, err := d.List(context.Background(), "pvr://timers/tv/rules/1/3/")
	require.NoError(t, err)

	// Only the timer spawned by rule 3 of client 1; the client 2 timer with
	// a different parent stays out.
	want := []string{"Episode"}
	if diff := cmp.Diff(want, listLabels(results)); diff != "" {
		t.Errorf("rule sub-listing mismatch (-want +got):\n%s", diff)
	}
}

func TestTimerEntryPathEncodesOrigin(t *testing.T) {
	d := newDir(t, timerBackend())

	results, err := d.List(context.Background(), "pvr://timers/tv/timers/")
	require.NoError(t, err)

	news, ok := results.Get("pvr://timers/tv/timers/1/1/")
	require.True(t, ok)
	assert.Equal(t, "News", news.Label)
}
