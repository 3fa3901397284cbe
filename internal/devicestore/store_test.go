package devicestore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"classsync/internal/devicestore"
	"classsync/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]devicestore.Store {
	f, err := devicestore.NewFile(filepath.Join(t.TempDir(), "nested", "device.json"))
	require.NoError(t, err)
	return map[string]devicestore.Store{
		"Memory": devicestore.NewMemory(),
		"File":   f,
	}
}

func TestStore(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set("k", []byte("plain text")))
			v, ok, err := store.Get("k")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "plain text", string(v))

			require.NoError(t, store.Set("k", []byte(`{"a":1}`)))
			v, _, _ = store.Get("k")
			assert.JSONEq(t, `{"a":1}`, string(v))

			require.NoError(t, store.Remove("k"))
			_, ok, _ = store.Get("k")
			assert.False(t, ok)
			require.NoError(t, store.Remove("k"))
		})
	}
}

func TestFile_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")
	first, err := devicestore.NewFile(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(devicestore.KeyAccent, []byte(`"green"`)))

	second, err := devicestore.NewFile(path)
	require.NoError(t, err)
	v, ok, err := second.Get(devicestore.KeyAccent)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"green"`, string(v))
}

func TestFile_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	f, err := devicestore.NewFile(path)
	require.NoError(t, err)
	_, ok, err := f.Get(devicestore.KeyDarkMode)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.Set(devicestore.KeyDarkMode, []byte("true")))
	v, ok, _ := f.Get(devicestore.KeyDarkMode)
	assert.True(t, ok)
	assert.Equal(t, "true", string(v))
}

// A store that cannot be read must not be overwritten with only the new key.
func TestFile_ReadErrorIsReturned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")
	require.NoError(t, os.MkdirAll(path, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0o600))

	f, err := devicestore.NewFile(path)
	require.NoError(t, err)

	_, _, err = f.Get(devicestore.KeyLocalTasks)
	assert.Error(t, err)
	assert.Error(t, f.Set(devicestore.KeyAccent, []byte(`"green"`)))
	assert.Error(t, f.Remove(devicestore.KeyAccent))

	_, err = os.Stat(filepath.Join(path, "keep"))
	assert.NoError(t, err)
}

func TestPreferences_LocalStates(t *testing.T) {
	p := devicestore.NewPreferences(devicestore.NewMemory())
	assert.Empty(t, p.LocalStates())

	states := []devicestore.LocalState{{
		State: model.PersonalState{UserID: uuid.New(), AssignmentID: uuid.New(), Completed: true, Note: "deck 2"},
		Seq:   3,
	}}
	require.NoError(t, p.SetLocalStates(states))
	assert.Equal(t, states, p.LocalStates())
}

func TestPreferences_Defaults(t *testing.T) {
	store := devicestore.NewMemory()
	p := devicestore.NewPreferences(store)

	assert.Equal(t, devicestore.DefaultView, p.LastView())
	assert.False(t, p.DarkMode())
	assert.Equal(t, devicestore.DefaultAccent, p.Accent())
	assert.Empty(t, p.ClassColors())
	assert.Empty(t, p.LocalTasks())
	_, ok := p.Session()
	assert.False(t, ok)
	_, ok = p.Undo()
	assert.False(t, ok)
}

func TestPreferences_MalformedFallsBack(t *testing.T) {
	store := devicestore.NewMemory()
	for _, key := range []string{
		devicestore.KeyLastView, devicestore.KeyDarkMode, devicestore.KeyAccent,
		devicestore.KeyClassColors, devicestore.KeyLocalTasks, devicestore.KeySession, devicestore.KeyUndo,
	} {
		require.NoError(t, store.Set(key, []byte("{{garbage")))
	}
	p := devicestore.NewPreferences(store)

	assert.Equal(t, devicestore.DefaultView, p.LastView())
	assert.False(t, p.DarkMode())
	assert.Equal(t, devicestore.DefaultAccent, p.Accent())
	assert.Empty(t, p.ClassColors())
	assert.Nil(t, p.LocalTasks())
	_, ok := p.Session()
	assert.False(t, ok)
}

func TestPreferences_RoundTrip(t *testing.T) {
	p := devicestore.NewPreferences(devicestore.NewMemory())

	require.NoError(t, p.SetLastView("history"))
	require.NoError(t, p.SetLastView("auth"))
	assert.Equal(t, "history", p.LastView())

	require.NoError(t, p.SetDarkMode(true))
	assert.True(t, p.DarkMode())

	classID := uuid.New()
	require.NoError(t, p.SetClassColor(classID, "purple"))
	assert.Equal(t, "purple", p.ClassColors()[classID])
	require.NoError(t, p.SetClassColor(classID, ""))
	assert.Empty(t, p.ClassColors())

	due := model.NewDate(2024, time.June, 10)
	tasks := []model.Assignment{{ID: uuid.New(), Title: "flashcards", DueDate: &due, IsPersonal: true, Storage: model.StorageDevice}}
	require.NoError(t, p.SetLocalTasks(tasks))
	got := p.LocalTasks()
	require.Len(t, got, 1)
	assert.Equal(t, due, *got[0].DueDate)
	assert.Nil(t, got[0].DueTime)

	marker := devicestore.UndoMarker{AssignmentID: uuid.New(), Deadline: time.Date(2024, 6, 9, 10, 0, 5, 0, time.UTC)}
	require.NoError(t, p.SetUndo(marker))
	back, ok := p.Undo()
	require.True(t, ok)
	assert.True(t, marker.Deadline.Equal(back.Deadline))
	require.NoError(t, p.ClearUndo())
	_, ok = p.Undo()
	assert.False(t, ok)
}
