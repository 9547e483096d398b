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

func TestRefreshJobRecountsInProgressEpisodes(t *testing.T) {
	b := testutil.NewBackend()
	// Locally the recording looks untouched, but the authoritative backend
	// check reports it as partially watched.
	rec := &testutil.FakeRecording{Client: 1, RecTitle: "Ep1", Dir: "Foo",
		Time: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC), PartWay: true}
	b.Recordings.List = []*testutil.FakeRecording{rec}
	d := newDir(t, b)

	results, err := d.List(context.Background(), "pvr://recordings/tv/active/")
	require.NoError(t, err)

	// The interactive listing carries the cheap count only.
	folder, ok := results.Get("pvr://recordings/tv/active/Foo/")
	require.True(t, ok)
	assert.Zero(t, folder.Folder.InProgressEpisodes,
		"listing itself must not run the expensive check")

	// The synchronous test queue ran the deferred job during List.
	want := []directory.EntryUpdate{
		{Path: "pvr://recordings/tv/active/Foo/", InProgressEpisodes: 1},
	}
	if diff := cmp.Diff(want, b.Notifier.Updates()); diff != "" {
		t.Errorf("refresh updates mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(1), rec.PartiallyWatchedCalls())
}

func TestRefreshJobSkipsUnchangedFolders(t *testing.T) {
	b := testutil.NewBackend()
	// Local resume state already agrees with the backend.
	b.Recordings.List = []*testutil.FakeRecording{
		{Client: 1, RecTitle: "Ep1", Dir: "Foo", PartWayLocal: true, PartWay: true},
	}
	d := newDir(t, b)

	_, err := d.List(context.Background(), "pvr://recordings/tv/active/")
	require.NoError(t, err)
	assert.Empty(t, b.Notifier.Updates())
}

func TestNoQueueKeepsExpensiveCheckOffListingPath(t *testing.T) {
	b := testutil.NewBackend()
	b.Queue = nil
	rec := &testutil.FakeRecording{Client: 1, RecTitle: "Ep1", Dir: "Foo", PartWay: true}
	b.Recordings.List = []*testutil.FakeRecording{rec}
	d := newDir(t, b)

	_, err := d.List(context.Background(), "pvr://recordings/tv/active/")
	require.NoError(t, err)
	assert.Zero(t, rec.PartiallyWatchedCalls())
	assert.Empty(t, b.Notifier.Updates())
}

func TestRefreshJobHonorsFolderFilter(t *testing.T) {
	b := testutil.NewBackend()
	mine := &testutil.FakeRecording{Client: 1, RecTitle: "Mine", Dir: "Foo", PartWay: true}
	other := &testutil.FakeRecording{Client: 2, RecTitle: "Other", Dir: "Foo", PartWay: true}
	b.Recordings.List = []*testutil.FakeRecording{mine, other}
	d := newDir(t, b)

	_, err := d.List(context.Background(), "pvr://recordings/tv/active/?clientid=1")
	require.NoError(t, err)

	// The rescan applies the listing's client filter, so only the matching
	// recording is consulted and counted.
	want := []directory.EntryUpdate{
		{Path: "pvr://recordings/tv/active/Foo/?clientid=1", InProgressEpisodes: 1},
	}
	if diff := cmp.Diff(want, b.Notifier.Updates()); diff != "" {
		t.Errorf("filtered refresh mismatch (-want +got):\n%s", diff)
	}
	assert.Zero(t, other.PartiallyWatchedCalls())
}
