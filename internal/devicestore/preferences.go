package devicestore

import (
	"encoding/json"
	"time"

	"classsync/internal/model"

	"github.com/google/uuid"
)

const (
	KeyLastView    = "cs_last_view"
	KeyDarkMode    = "cs_dark"
	KeyAccent      = "cs_accent"
	KeyClassColors = "cs_class_colors"
	KeyLocalTasks  = "cs_local_tasks"
	KeyLocalStates = "cs_local_states"
	KeySession     = "cs_session"
	KeyUndo        = "cs_undo"
)

const (
	DefaultView   = "dashboard"
	DefaultAccent = "blue"
)

// transientViews are screens that must never be restored on the next start.
var transientViews = map[string]bool{
	"":               true,
	"loading":        true,
	"auth":           true,
	"setup_required": true,
	"banned":         true,
}

type UndoMarker struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	Deadline     time.Time `json:"deadline"`
}

// Preferences reads and writes typed values. Missing or unreadable values
// yield the default; errors only surface from writes.
type Preferences struct {
	store Store
}

func NewPreferences(store Store) *Preferences {
	return &Preferences{store: store}
}

func (p *Preferences) Store() Store {
	return p.store
}

func (p *Preferences) load(key string, dst any) bool {
	data, ok, err := p.store.Get(key)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (p *Preferences) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.store.Set(key, data)
}

func (p *Preferences) LastView() string {
	var v string
	if !p.load(KeyLastView, &v) || transientViews[v] {
		return DefaultView
	}
	return v
}

// SetLastView ignores transient views.
func (p *Preferences) SetLastView(view string) error {
	if transientViews[view] {
		return nil
	}
	return p.save(KeyLastView, view)
}

func (p *Preferences) DarkMode() bool {
	var v bool
	p.load(KeyDarkMode, &v)
	return v
}

func (p *Preferences) SetDarkMode(on bool) error {
	return p.save(KeyDarkMode, on)
}

func (p *Preferences) Accent() string {
	var v string
	if !p.load(KeyAccent, &v) || v == "" {
		return DefaultAccent
	}
	return v
}

func (p *Preferences) SetAccent(accent string) error {
	return p.save(KeyAccent, accent)
}

func (p *Preferences) ClassColors() map[uuid.UUID]string {
	v := make(map[uuid.UUID]string)
	if !p.load(KeyClassColors, &v) {
		return make(map[uuid.UUID]string)
	}
	return v
}

func (p *Preferences) SetClassColor(classID uuid.UUID, color string) error {
	colors := p.ClassColors()
	if color == "" {
		delete(colors, classID)
	} else {
		colors[classID] = color
	}
	return p.save(KeyClassColors, colors)
}

func (p *Preferences) LocalTasks() []model.Assignment {
	var v []model.Assignment
	if !p.load(KeyLocalTasks, &v) {
		return nil
	}
	return v
}

func (p *Preferences) SetLocalTasks(tasks []model.Assignment) error {
	return p.save(KeyLocalTasks, tasks)
}

// LocalState is the personal state of a device task with the sequence of
// the write that produced it.
type LocalState struct {
	State model.PersonalState `json:"state"`
	Seq   int64               `json:"seq"`
}

func (p *Preferences) LocalStates() []LocalState {
	var v []LocalState
	if !p.load(KeyLocalStates, &v) {
		return nil
	}
	return v
}

func (p *Preferences) SetLocalStates(states []LocalState) error {
	return p.save(KeyLocalStates, states)
}

func (p *Preferences) Session() (model.Session, bool) {
	var v model.Session
	if !p.load(KeySession, &v) || v.AccessToken == "" {
		return model.Session{}, false
	}
	return v, true
}

func (p *Preferences) SetSession(s model.Session) error {
	return p.save(KeySession, s)
}

func (p *Preferences) ClearSession() error {
	return p.store.Remove(KeySession)
}

func (p *Preferences) Undo() (UndoMarker, bool) {
	var v UndoMarker
	if !p.load(KeyUndo, &v) || v.AssignmentID == uuid.Nil {
		return UndoMarker{}, false
	}
	return v, true
}

func (p *Preferences) SetUndo(m UndoMarker) error {
	return p.save(KeyUndo, m)
}

func (p *Preferences) ClearUndo() error {
	return p.store.Remove(KeyUndo)
}
