package replay

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hikari/internal/application/system"
	"github.com/younwookim/hikari/internal/domain/progress"
	"github.com/younwookim/hikari/internal/infrastructure/storage"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name   string
		intent system.Intent
		event  Event
	}{
		{"down", system.PointerDown{X: 1, Y: 2}, Event{K: KindDown, X: 1, Y: 2}},
		{"move", system.PointerMove{X: 3, Y: 4}, Event{K: KindMove, X: 3, Y: 4}},
		{"up", system.PointerUp{X: 5, Y: 6}, Event{K: KindUp, X: 5, Y: 6}},
		{"keydown", system.KeyDown{Key: system.KeySpace}, Event{K: KindKeyDown}},
		{"keyup", system.KeyUp{Key: system.KeySpace}, Event{K: KindKeyUp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := EncodeIntent(tt.intent)
			require.NoError(t, err)
			assert.Equal(t, tt.event, e)

			in, err := DecodeEvent(e)
			require.NoError(t, err)
			assert.Equal(t, tt.intent, in)
		})
	}
}

func TestDecodeEvent_Unknown(t *testing.T) {
	_, err := DecodeEvent(Event{K: "wiggle"})
	assert.Error(t, err)
}

func TestFrameInput_JSONShape(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":3}`, string(data), "empty frames omit events")

	data, err = json.Marshal(FrameInput{F: 4, E: []Event{{K: KindUp, X: 10, Y: 20}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":4,"e":[{"k":"up","x":10,"y":20}]}`, string(data))
}

type fixedSource struct {
	frames [][]system.Intent
	i      int
}

func (f *fixedSource) Poll() []system.Intent {
	if f.i >= len(f.frames) {
		return nil
	}
	out := f.frames[f.i]
	f.i++
	return out
}

func TestTee_RecordsAndReplays(t *testing.T) {
	src := &fixedSource{frames: [][]system.Intent{
		{system.PointerDown{X: 10, Y: 10}},
		nil,
		{system.PointerUp{X: 12, Y: 11}, system.KeyDown{Key: system.KeySpace}},
	}}
	rec := NewRecorder(99, "session-1", progress.Snapshot{}, Screen{W: 480, H: 800})
	tee := Tee(src, rec)

	var live [][]system.Intent
	for i := 0; i < 3; i++ {
		live = append(live, tee.Poll())
	}
	assert.Equal(t, 3, rec.FrameCount())

	rp := NewReplayer(rec.Data())
	assert.Equal(t, int64(99), rp.Seed())
	assert.Equal(t, "session-1", rp.Session())
	for i := 0; i < 3; i++ {
		assert.Equal(t, live[i], rp.Poll(), "frame %d", i)
	}
	assert.True(t, rp.Done())
	assert.Nil(t, rp.Poll())
}

func TestRecorder_Stop(t *testing.T) {
	src := &fixedSource{frames: [][]system.Intent{
		nil,
		{system.PointerDown{X: 3, Y: 4}},
	}}
	rec := NewRecorder(1, "s", progress.Snapshot{}, Screen{})
	tee := Tee(src, rec)
	tee.Poll()
	rec.Stop()

	assert.Equal(t, []system.Intent{system.PointerDown{X: 3, Y: 4}}, tee.Poll(), "input still flows")
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")

	empty := NewRecorder(1, "s", progress.Snapshot{}, Screen{})
	assert.Error(t, empty.Save(path), "nothing recorded")

	rec := NewRecorder(7, "abc", progress.Snapshot{}, Screen{W: 360, H: 640})
	rec.RecordFrame([]system.Intent{system.PointerDown{X: 1, Y: 2}})
	rec.RecordFrame([]system.Intent{system.PointerUp{X: 1, Y: 2}})
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, "abc", data.Session)
	assert.Equal(t, Screen{W: 360, H: 640}, data.Screen)
	assert.Len(t, data.Frames, 2)
}

func TestReplayer_StartsFromRecordedProgress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")

	live := progress.New()
	live.MarkCleared(1)
	live.MarkCleared(2)
	live.UnlockSecret()

	rec := NewRecorder(5, "s", live.Snapshot(), Screen{W: 480, H: 800})
	rec.RecordFrame([]system.Intent{system.PointerUp{X: 1, Y: 1}})
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	rp := NewReplayer(*data)
	assert.Equal(t, Screen{W: 480, H: 800}, rp.Screen())

	store, err := rp.Store()
	require.NoError(t, err)
	st := storage.Load(store)
	assert.True(t, st.IsCleared(1))
	assert.True(t, st.IsCleared(2))
	assert.False(t, st.IsCleared(3))
	assert.True(t, st.SecretUnlocked())
	assert.Equal(t, 2, st.ClearedCount())
}

func TestReplayer_EmptyProgress(t *testing.T) {
	rp := NewReplayer(CreateTestReplayData(2, 0, 0))
	store, err := rp.Store()
	require.NoError(t, err)

	st := storage.Load(store)
	assert.Equal(t, 0, st.ClearedCount())
	assert.False(t, st.SecretUnlocked())
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "run.json")

	assert.Equal(t, file, OutputPath(file))
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, OutputPath(""))

	got := OutputPath(dir)
	assert.Equal(t, dir, filepath.Dir(got))
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, filepath.Base(got))

	got = OutputPath(filepath.Join(dir, "new") + string(filepath.Separator))
	assert.Equal(t, filepath.Join(dir, "new"), filepath.Dir(got))
}

func TestLoadReplay_Missing(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReplayer_Frames(t *testing.T) {
	data := CreateTestReplayData(12, 50, 60)
	rp := NewReplayer(data)
	assert.Equal(t, 12, rp.TotalFrames())

	in, ok := rp.Next()
	require.True(t, ok)
	assert.Equal(t, []system.Intent{system.PointerDown{X: 50, Y: 60}}, in)
	assert.Equal(t, 1, rp.CurrentFrame())

	in, _ = rp.Next()
	assert.Equal(t, []system.Intent{system.PointerUp{X: 50, Y: 60}}, in)

	in, _ = rp.Next()
	assert.Nil(t, in)

	rp.Reset()
	assert.Equal(t, 0, rp.CurrentFrame())
}
