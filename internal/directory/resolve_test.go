package directory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpvr/pvrfs/internal/directory"
	"github.com/openpvr/pvrfs/internal/testutil"
)

func TestResolveChannelItem(t *testing.T) {
	b := channelBackend()
	d := newDir(t, b)

	item := &directory.PlayableItem{
		Path:    "plugin://some.addon/play?id=1",
		DynPath: "pvr://channels/tv/Favourites/1@1.pvr",
	}
	require.True(t, d.Resolve(context.Background(), item))

	assert.Equal(t, "pvr://channels/tv/Favourites/1@1.pvr", item.Path)
	require.NotNil(t, item.Member)
	assert.Equal(t, "One", item.Member.Channel().Name())
	require.Len(t, b.Playback.Prepared, 1)
	assert.Same(t, item, b.Playback.Prepared[0])
}

func TestResolveRecordingItem(t *testing.T) {
	b := testutil.NewBackend()
	rec := &testutil.FakeRecording{Client: 1, RecTitle: "Ep1", Dir: "Foo"}
	b.Recordings.List = []*testutil.FakeRecording{rec}
	d := newDir(t, b)

	item := &directory.PlayableItem{
		Path:    "plugin://some.addon/play?id=2",
		DynPath: "pvr://recordings/tv/active/Foo/Ep1.pvr",
	}
	require.True(t, d.Resolve(context.Background(), item))

	assert.Equal(t, rec.Path(), item.Path)
	assert.Equal(t, rec, item.Recording)
}

func TestResolveGuideItem(t *testing.T) {
	b := testutil.NewBackend()
	b.Guide.Entries = []*testutil.FakeGuideEntry{
		{EntryPath: "pvr://guide/tv/1@5/100.epg", ETitle: "Heat"},
	}
	d := newDir(t, b)

	item := &directory.PlayableItem{
		Path:    "plugin://some.addon/play?id=3",
		DynPath: "pvr://guide/tv/1@5/100.epg",
	}
	require.True(t, d.Resolve(context.Background(), item))
	require.NotNil(t, item.Guide)
	assert.Equal(t, "Heat", item.Guide.Title())
}

func TestResolveNativePathSkipsLookup(t *testing.T) {
	b := testutil.NewBackend()
	d := newDir(t, b)

	item := &directory.PlayableItem{Path: "pvr://recordings/tv/active/Ep.pvr"}
	require.True(t, d.Resolve(context.Background(), item))

	// The primary path is already ours; no canonicalization happens.
	assert.Nil(t, item.Recording)
	require.Len(t, b.Playback.Prepared, 1)
}

func TestResolveForeignItemNotOurs(t *testing.T) {
	b := testutil.NewBackend()
	d := newDir(t, b)

	item := &directory.PlayableItem{
		Path:    "plugin://some.addon/play",
		DynPath: "smb://share/file.ts",
	}
	assert.False(t, d.Resolve(context.Background(), item))
	assert.Empty(t, b.Playback.Prepared)
}

func TestResolveUnknownEntityLeavesItemUntouched(t *testing.T) {
	b := testutil.NewBackend()
	d := newDir(t, b)

	item := &directory.PlayableItem{
		Path:    "plugin://some.addon/play",
		DynPath: "pvr://recordings/tv/active/Foo/Missing.pvr",
	}
	// Still handed to playback preparation, just not canonicalized.
	assert.True(t, d.Resolve(context.Background(), item))
	assert.Equal(t, "plugin://some.addon/play", item.Path)
	assert.Nil(t, item.Recording)
}

func TestResolvePlaybackDeclines(t *testing.T) {
	b := testutil.NewBackend()
	b.Playback.Err = errors.New("busy")
	d := newDir(t, b)

	item := &directory.PlayableItem{Path: "pvr://recordings/tv/active/Ep.pvr"}
	assert.False(t, d.Resolve(context.Background(), item))
}

func TestResolveWithoutPlaybackCollaborator(t *testing.T) {
	deps := testutil.NewBackend().Deps()
	deps.Playback = nil
	d := directory.New(deps)

	item := &directory.PlayableItem{Path: "pvr://recordings/tv/active/Ep.pvr"}
	assert.False(t, d.Resolve(context.Background(), item))
}
