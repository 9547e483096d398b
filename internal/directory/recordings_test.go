package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpvr/pvrfs/internal/directory"
	"github.com/openpvr/pvrfs/internal/testutil"
)

var recBase = time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

// showBackend seeds one show recorded into nested folders plus one loose
// recording at the view root.
func showBackend() *testutil.Backend {
	b := testutil.NewBackend()
	b.Recordings.List = []*testutil.FakeRecording{
		{Client: 1, RecTitle: "Ep1", Dir: "Foo/Bar", Time: recBase, Size: 100, Plays: 1},
		{Client: 1, RecTitle: "Ep2", Dir: "Foo/Baz", Time: recBase.Add(time.Hour), Size: 200},
		{Client: 1, RecTitle: "Loose", Time: recBase.Add(2 * time.Hour), Size: 50},
	}
	return b
}

func TestRecordingsGroupedListing(t *testing.T) {
	b := showBackend()
	d := newDir(t, b)

	results, err := d.List(context.Background(), "pvr://recordings/tv/active/")
	require.NoError(t, err)

	want := []string{
		"pvr://recordings/tv/active/Foo/",
		"pvr://recordings/tv/active/Loose.pvr",
	}
	if diff := cmp.Diff(want, listPaths(results)); diff != "" {
		t.Fatalf("grouped listing mismatch (-want +got):\n%s", diff)
	}

	folder, ok := results.Get("pvr://recordings/tv/active/Foo/")
	require.True(t, ok)
	assert.True(t, folder.IsFolder)
	assert.Equal(t, "Foo", folder.Label)
	require.NotNil(t, folder.Folder)
	assert.Equal(t, 2, folder.Folder.TotalEpisodes)
	assert.Equal(t, 1, folder.Folder.WatchedEpisodes)
	assert.Equal(t, 1, folder.Folder.UnwatchedEpisodes)
	assert.Equal(t, int64(300), folder.SizeInBytes)
	assert.Equal(t, directory.OverlayUnwatched, folder.Overlay)
	// The newest contained recording drives the folder's sort time.
	assert.Equal(t, recBase.Add(time.Hour), folder.DateTime)
}

func TestRecordingsGroupedFolderAllWatched(t *testing.T) {
	b := testutil.NewBackend()
	b.Recordings.List = []*testutil.FakeRecording{
		{Client: 1, RecTitle: "Ep1", Dir: "Foo", Time: recBase, Plays: 2},
		{Client: 1, RecTitle: "Ep2", Dir: "Foo", Time: recBase, Plays: 1},
	}
	d := newDir(t, b)

	results, err := d.List(context.Background(), "pvr://recordings/tv/active/")
	require.NoError(t, err)

	folder, ok := results.Get("pvr://recordings/tv/active/Foo/")
	require.True(t, ok)
	assert.Equal(t, directory.OverlayWatched, folder.Overlay)
	assert.Equal(t, 2, folder.Folder.WatchedEpisodes)
	assert.Zero(t, folder.Folder.UnwatchedEpisodes)
}

func TestRecordingsFlatListing(t *testing.T) {
	d := newDir(t, showBackend())

	results, err := d.List(context.Background(), "pvr://recordings/tv/active/?view=flat")
	require.NoError(t, err)

	require.Equal(t, 3, results.Len())
	for _, e := range results.Items() {
		assert.False(t, e.IsFolder)
		assert.NotNil(t, e.Recording)
	}
}

func TestRecordingsFlatDefaultFromSettings(t *testing.T) {
	b := showBackend()
	b.Settings.Grouped = false
	d := newDir(t, b)

	results, err := d.List(context.Background(), "pvr://recordings/tv/active/")
	require.NoError(t, err)
	assert.Equal(t, 3, results.Len())

	// An explicit view option overrides the configured default.
	results, err = d.List(context.Background(), "pvr://recordings/tv/active/?view=grouped")
	require.NoError(t, err)
	assert.Equal(t, 2, results.Len())
}

func TestRecordingsSubFolderListing(t *testing.T) {
	d := newDir(t, showBackend())

	// Grouped: the Foo folder shows its sub-folders.
	results, err := d.List(context.Background(), "pvr://recordings/tv/active/Foo/")
	require.NoError(t, err)
	want := []string{
		"pvr://recordings/tv/active/Foo/Bar/",
		"pvr://recordings/tv/active/Foo/Baz/",
	}
	if diff := cmp.Diff(want, listPaths(results)); diff != "" {
		t.Errorf("sub-folder listing mismatch (-want +got):\n%s", diff)
	}

	// Flat: everything below Foo, recursively.
	results, err = d.List(context.Background(), "pvr://recordings/tv/active/Foo/?view=flat")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"Ep1", "Ep2"}, listLabels(results)); diff != "" {
		t.Errorf("flat sub-listing mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordingsFolderMatchingIsCaseInsensitive(t *testing.T) {
	b := testutil.NewBackend()
	b.Recordings.List = []*testutil.FakeRecording{
		{Client: 1, RecTitle: "Ep1", Dir: "Foo", Time: recBase},
		{Client: 1, RecTitle: "Ep2", Dir: "FOO", Time: recBase},
	}
	d := newDir(t, b)

	results, err := d.List(context.Background(), "pvr://recordings/tv/active/")
	require.NoError(t, err)
	require.Equal(t, 1, results.Len(), "differing case must not split the folder")

	results, err = d.List(context.Background(), "pvr://recordings/tv/active/foo/")
	require.NoError(t, err)
	assert.Equal(t, 2, results.Len())
}

func TestRecordingsUnsupportedView(t *testing.T) {
	d := newDir(t, showBackend())

	_, err := d.List(context.Background(), "pvr://recordings/tv/active/?view=bytitle")
	assert.ErrorIs(t, err, directory.ErrUnsupportedView)
}

func TestRecordingsDeletedViewIsSeparate(t *testing.T) {
	b := testutil.NewBackend()
	b.Recordings.List = []*testutil.FakeRecording{
		{Client: 1, RecTitle: "Kept", Time: recBase},
		{Client: 1, RecTitle: "Trashed", Deleted: true, Time: recBase},
	}
	d := newDir(t, b)

	results, err := d.List(context.Background(), "pvr://recordings/tv/active/")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"Kept"}, listLabels(results)); diff != "" {
		t.Errorf("active view mismatch (-want +got):\n%s", diff)
	}

	results, err = d.List(context.Background(), "pvr://recordings/tv/deleted/")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"Trashed"}, listLabels(results)); diff != "" {
		t.Errorf("deleted view mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordingsClientProviderFilter(t *testing.T) {
	b := testutil.NewBackend()
	b.Recordings.List = []*testutil.FakeRecording{
		{Client: 1, Provider: 10, RecTitle: "Mine", Time: recBase},
		{Client: 2, Provider: 10, RecTitle: "OtherClient", Time: recBase},
		{Client: 1, Provider: 20, RecTitle: "OtherProvider", Time: recBase},
	}
	d := newDir(t, b)

	results, err := d.List(context.Background(),
		"pvr://recordings/tv/active/?clientid=1&providerid=10")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"Mine"}, listLabels(results)); diff != "" {
		t.Errorf("filtered listing mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordingsLeafOverlay(t *testing.T) {
	b := testutil.NewBackend()
	b.Recordings.List = []*testutil.FakeRecording{
		{Client: 1, RecTitle: "Seen", Time: recBase, Plays: 3},
		{Client: 1, RecTitle: "New", Time: recBase},
	}
	d := newDir(t, b)

	results, err := d.List(context.Background(), "pvr://recordings/tv/active/")
	require.NoError(t, err)

	seen, ok := results.Get("pvr://recordings/tv/active/Seen.pvr")
	require.True(t, ok)
	assert.Equal(t, directory.OverlayWatched, seen.Overlay)

	fresh, ok := results.Get("pvr://recordings/tv/active/New.pvr")
	require.True(t, ok)
	assert.Equal(t, directory.OverlayUnwatched, fresh.Overlay)
}

func TestRecordingsDirectoryInfo(t *testing.T) {
	b := testutil.NewBackend()
	b.Queue = nil // keep the deferred job out of the call counts
	b.Recordings.List = []*testutil.FakeRecording{
		{Client: 1, RecTitle: "Ep1", Dir: "Foo", Time: recBase, Size: 100, Plays: 1},
		{Client: 1, RecTitle: "Ep2", Dir: "Foo", Time: recBase.Add(time.Hour), Size: 200, PartWay: true},
		{Client: 1, RecTitle: "Elsewhere", Dir: "Other", Time: recBase, Size: 999},
	}
	d := newDir(t, b)

	info, err := d.RecordingsDirectoryInfo(context.Background(), "pvr://recordings/tv/active/Foo/")
	require.NoError(t, err)

	require.NotNil(t, info.Folder)
	assert.Equal(t, 2, info.Folder.TotalEpisodes)
	assert.Equal(t, 1, info.Folder.WatchedEpisodes)
	assert.Equal(t, 1, info.Folder.UnwatchedEpisodes)
	assert.Equal(t, 1, info.Folder.InProgressEpisodes)
	assert.Equal(t, int64(300), info.SizeInBytes)
	assert.Equal(t, recBase.Add(time.Hour), info.DateTime)
	assert.Equal(t, directory.OverlayUnwatched, info.Overlay)
}
