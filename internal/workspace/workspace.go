// Package workspace is the client's session view-model. It owns the signed
// in user's data, routes every user action to the backend or the device, and
// tells subscribers when something they render has changed.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"classsync/internal/devicestore"
	"classsync/internal/errdefs"
	"classsync/internal/logging"
	"classsync/internal/model"
	"classsync/internal/placement"
	"classsync/internal/reconciler"
	"classsync/internal/urgency"
	"classsync/internal/views"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotConfigured = errors.New("backend is not configured")
	ErrBanned        = errors.New("account is banned")
	ErrNotSignedIn   = errors.New("not signed in")
	ErrForbidden     = errors.New("admin only")
	// ErrUnreachable is returned by every call once the backend could not be
	// reached while a session was being set up.
	ErrUnreachable = fmt.Errorf("%w: server unreachable", errdefs.ErrUnavailable)
)

type State string

const (
	StateSetupRequired State = "setup_required"
	StateAuth          State = "auth"
	StateBanned        State = "banned"
	StateReady         State = "ready"
	// StateUnavailable is terminal for this workspace: no further remote
	// calls are made. A new workspace tries again.
	StateUnavailable State = "unavailable"
)

type Event int

const (
	EventSession Event = iota
	EventData
	EventState
	EventUndo
	EventPrefs
)

func (e Event) String() string {
	switch e {
	case EventSession:
		return "session"
	case EventData:
		return "data"
	case EventState:
		return "state"
	case EventUndo:
		return "undo"
	case EventPrefs:
		return "prefs"
	default:
		return "unknown"
	}
}

type Config struct {
	Policy     reconciler.Policy
	UndoWindow time.Duration
	Clock      reconciler.Clock
	Logger     *logging.Logger
}

// Dashboard is everything a screen renders at one instant.
type Dashboard struct {
	views.Views
	Urgency     map[uuid.UUID]urgency.Classification
	States      map[uuid.UUID]model.PersonalState
	Profile     *model.Profile
	Profiles    []model.Profile
	Settings    model.AppSettings
	View        string
	UndoTarget  uuid.UUID
	UndoPending bool
}

type Workspace struct {
	backend Backend
	prefs   *devicestore.Preferences
	router  *placement.Router
	cfg     Config

	mu          sync.RWMutex
	state       State
	session     model.Session
	profile     *model.Profile
	profiles    []model.Profile
	classes     []model.ClassRecord
	assignments []model.Assignment
	settings    model.AppSettings
	view        string
	rec         *reconciler.Reconciler

	subMu sync.Mutex
	subs  []func(Event)
}

// New builds a workspace. A nil backend means the client has no server
// configured; the workspace then stays in StateSetupRequired.
func New(backend Backend, store devicestore.Store, cfg Config) *Workspace {
	if cfg.Clock == nil {
		cfg.Clock = reconciler.SystemClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if cfg.UndoWindow <= 0 {
		cfg.UndoWindow = reconciler.DefaultUndoWindow
	}
	prefs := devicestore.NewPreferences(store)
	w := &Workspace{
		backend: backend,
		prefs:   prefs,
		cfg:     cfg,
		state:   StateAuth,
		view:    prefs.LastView(),
	}
	if backend == nil {
		w.state = StateSetupRequired
	}
	w.router = placement.NewRouter(backend, prefs, cfg.Clock.Now)
	return w
}

func (w *Workspace) Subscribe(fn func(Event)) {
	w.subMu.Lock()
	defer w.subMu.Unlock()
	w.subs = append(w.subs, fn)
}

func (w *Workspace) emit(e Event) {
	w.subMu.Lock()
	subs := append([]func(Event){}, w.subs...)
	w.subMu.Unlock()
	for _, fn := range subs {
		fn(e)
	}
}

func (w *Workspace) State() State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

func (w *Workspace) Profile() *model.Profile {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.profile == nil {
		return nil
	}
	p := *w.profile
	return &p
}

func (w *Workspace) Prefs() *devicestore.Preferences {
	return w.prefs
}

// Start resumes the session stored on the device, if any.
func (w *Workspace) Start(ctx context.Context) error {
	if err := w.remote(); err != nil {
		return err
	}
	session, ok := w.prefs.Session()
	if !ok || session.Expired(w.cfg.Clock.Now()) {
		w.setState(StateAuth)
		return nil
	}
	err := w.block(ctx, w.establish(ctx, session))
	if errors.Is(err, errdefs.ErrAuthentication) {
		w.cfg.Logger.Info(ctx, "stored session rejected", zap.Error(err))
		_ = w.prefs.ClearSession()
		w.backend.SetAccessToken("")
		w.setState(StateAuth)
		return nil
	}
	return err
}

func (w *Workspace) SignIn(ctx context.Context, email, password string) error {
	if err := w.remote(); err != nil {
		return err
	}
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", errdefs.ErrValidation)
	}
	session, err := w.backend.SignIn(ctx, &model.SignInInput{Email: email, Password: password})
	if err != nil {
		return w.block(ctx, fmt.Errorf("sign in: %w", err))
	}
	return w.block(ctx, w.begin(ctx, session))
}

// SignUp creates an account. The full name is checked before any request.
func (w *Workspace) SignUp(ctx context.Context, email, password, fullName string) error {
	if err := w.remote(); err != nil {
		return err
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return fmt.Errorf("%w: full name is required", errdefs.ErrValidation)
	}
	session, err := w.backend.SignUp(ctx, &model.SignUpInput{
		Email:    strings.TrimSpace(email),
		Password: password,
		FullName: fullName,
	})
	if err != nil {
		return w.block(ctx, fmt.Errorf("sign up: %w", err))
	}
	return w.block(ctx, w.begin(ctx, session))
}

func (w *Workspace) begin(ctx context.Context, session *model.Session) error {
	if err := w.prefs.SetSession(*session); err != nil {
		w.cfg.Logger.Warn(ctx, "failed to store session on device", zap.Error(err))
	}
	return w.establish(ctx, *session)
}

func (w *Workspace) establish(ctx context.Context, session model.Session) error {
	w.backend.SetAccessToken(session.AccessToken)
	profile, err := w.backend.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	w.mu.Lock()
	w.session = session
	w.profile = profile
	if w.rec != nil {
		w.rec.Close()
		w.rec = nil
	}
	if profile.IsBanned {
		w.state = StateBanned
		w.mu.Unlock()
		w.emit(EventSession)
		return nil
	}
	w.state = StateReady
	w.view = w.prefs.LastView()
	rec := reconciler.New(profile.ID, w.router, reconciler.Config{
		Policy:     w.cfg.Policy,
		UndoWindow: w.cfg.UndoWindow,
		Clock:      w.cfg.Clock,
		Logger:     w.cfg.Logger,
	})
	rec.Subscribe(func(model.PersonalState) { w.emit(EventState) })
	rec.SubscribeUndo(func() { w.emit(EventUndo) })
	w.rec = rec
	w.mu.Unlock()

	if marker, ok := w.prefs.Undo(); ok {
		rec.RestoreUndo(marker.AssignmentID, marker.Deadline)
	}
	w.emit(EventSession)
	return w.Refresh(ctx)
}

// SignOut forgets the device session. Pending writes are flushed first.
func (w *Workspace) SignOut(ctx context.Context) error {
	w.mu.Lock()
	rec := w.rec
	w.rec = nil
	w.session = model.Session{}
	w.profile = nil
	w.profiles = nil
	w.classes = nil
	w.assignments = nil
	w.settings = model.AppSettings{}
	if w.state != StateSetupRequired && w.state != StateUnavailable {
		w.state = StateAuth
	}
	w.mu.Unlock()

	if rec != nil {
		rec.Close()
	}
	if w.backend != nil {
		w.backend.SetAccessToken("")
	}
	_ = w.prefs.ClearUndo()
	if err := w.prefs.ClearSession(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	w.cfg.Logger.Debug(ctx, "signed out")
	w.emit(EventSession)
	return nil
}

// remote reports why no backend call may be made, if any.
func (w *Workspace) remote() error {
	if w.backend == nil {
		return ErrNotConfigured
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.state == StateUnavailable {
		return ErrUnreachable
	}
	return nil
}

// block moves the workspace to StateUnavailable when err says the backend
// could not be reached. Other errors pass through unchanged.
func (w *Workspace) block(ctx context.Context, err error) error {
	if !errors.Is(err, errdefs.ErrUnavailable) {
		return err
	}
	w.mu.Lock()
	rec := w.rec
	w.rec = nil
	w.state = StateUnavailable
	w.mu.Unlock()

	if rec != nil {
		rec.Close()
	}
	w.cfg.Logger.Warn(ctx, "backend unreachable, workspace blocked", zap.Error(err))
	w.emit(EventSession)
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

func (w *Workspace) setState(s State) {
	w.mu.Lock()
	w.state = s
	w.mu.Unlock()
	w.emit(EventSession)
}

func (w *Workspace) ready() (*model.Profile, *reconciler.Reconciler, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	switch w.state {
	case StateSetupRequired:
		return nil, nil, ErrNotConfigured
	case StateBanned:
		return nil, nil, ErrBanned
	case StateUnavailable:
		return nil, nil, ErrUnreachable
	case StateReady:
		return w.profile, w.rec, nil
	default:
		return nil, nil, ErrNotSignedIn
	}
}

func (w *Workspace) admin() (*model.Profile, error) {
	p, _, err := w.ready()
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin {
		return nil, ErrForbidden
	}
	return p, nil
}

// Refresh reloads everything the dashboard shows from the backend and merges
// the tasks kept on this device.
func (w *Workspace) Refresh(ctx context.Context) error {
	profile, rec, err := w.ready()
	if err != nil {
		return err
	}

	var (
		classes     []model.ClassRecord
		assignments []model.Assignment
		states      []model.PersonalState
		settings    *model.AppSettings
		profiles    []model.Profile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		classes, err = w.backend.ListClasses(gctx)
		return err
	})
	g.Go(func() (err error) {
		assignments, err = w.backend.ListAssignments(gctx)
		return err
	})
	g.Go(func() (err error) {
		states, err = w.backend.ListStates(gctx)
		return err
	})
	g.Go(func() (err error) {
		settings, err = w.backend.GetSettings(gctx)
		return err
	})
	if profile.IsAdmin {
		g.Go(func() (err error) {
			profiles, err = w.backend.ListProfiles(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	merged := placement.Merge(assignments, w.router.LocalTasks(profile.ID), profile.ID)
	rec.Load(append(states, w.router.LocalStates(profile.ID)...))

	w.mu.Lock()
	w.classes = classes
	w.assignments = merged
	w.profiles = profiles
	if settings != nil {
		w.settings = *settings
	}
	w.mu.Unlock()
	w.emit(EventData)
	return nil
}

// Dashboard derives the lists for now. It never calls the backend.
func (w *Workspace) Dashboard(now time.Time) Dashboard {
	w.mu.RLock()
	d := Dashboard{
		Profiles: append([]model.Profile(nil), w.profiles...),
		Settings: w.settings,
		View:     w.view,
	}
	in := views.Input{
		Assignments: append([]model.Assignment(nil), w.assignments...),
		Classes:     append([]model.ClassRecord(nil), w.classes...),
	}
	if w.profile != nil {
		p := *w.profile
		d.Profile = &p
		in.Caller = p.ID
		in.IsAdmin = p.IsAdmin
		in.Enrollment = p.EnrolledClasses
	}
	rec := w.rec
	w.mu.RUnlock()

	if rec != nil {
		in.States = rec.Snapshot()
		d.UndoTarget, _, d.UndoPending = rec.PendingUndo()
	}
	d.States = in.States
	d.Views = views.Build(in)
	d.Urgency = make(map[uuid.UUID]urgency.Classification, len(d.Active))
	for i := range d.Active {
		d.Urgency[d.Active[i].ID] = urgency.ClassifyAssignment(&d.Active[i], now)
	}
	return d
}

// Find looks up an assignment by id or by a unique id prefix.
func (w *Workspace) Find(ref string) (*model.Assignment, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var found *model.Assignment
	for i := range w.assignments {
		a := &w.assignments[i]
		if a.ID.String() == ref {
			c := *a
			return &c, nil
		}
		if ref != "" && strings.HasPrefix(a.ID.String(), ref) {
			if found != nil {
				return nil, fmt.Errorf("%w: %q is ambiguous", errdefs.ErrValidation, ref)
			}
			found = a
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: assignment %q", errdefs.ErrNotFound, ref)
	}
	c := *found
	return &c, nil
}

// FindClass looks up a class by id, id prefix or exact name.
func (w *Workspace) FindClass(ref string) (*model.ClassRecord, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var found *model.ClassRecord
	for i := range w.classes {
		c := &w.classes[i]
		if c.ID.String() == ref || strings.EqualFold(c.Name, ref) {
			cp := *c
			return &cp, nil
		}
		if ref != "" && strings.HasPrefix(c.ID.String(), ref) {
			if found != nil {
				return nil, fmt.Errorf("%w: %q is ambiguous", errdefs.ErrValidation, ref)
			}
			found = c
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: class %q", errdefs.ErrNotFound, ref)
	}
	cp := *found
	return &cp, nil
}

// Close flushes pending state writes and records an open undo window on the
// device so a later session can still use it.
func (w *Workspace) Close(ctx context.Context) error {
	w.mu.Lock()
	rec := w.rec
	w.rec = nil
	w.mu.Unlock()
	if rec == nil {
		return nil
	}
	rec.Wait()

	var err error
	if id, deadline, ok := rec.PendingUndo(); ok {
		err = w.prefs.SetUndo(devicestore.UndoMarker{AssignmentID: id, Deadline: deadline})
	} else {
		err = w.prefs.ClearUndo()
	}
	rec.Close()
	if err != nil {
		w.cfg.Logger.Warn(ctx, "failed to persist undo marker", zap.Error(err))
		return fmt.Errorf("persist undo marker: %w", err)
	}
	return nil
}
