package sync

import (
	"context"
	"errors"
	stdsync "sync"
	"testing"
	"time"

	"github.com/RW482/vora/entities"
)

type fakeClient struct {
	mu       stdsync.Mutex
	pushes   int
	lastPush *entities.Snapshot
	pullSnap *entities.Snapshot
	failPush bool
	failPull bool
}

func (f *fakeClient) Create(ctx context.Context, snap *entities.Snapshot) (string, error) {
	return "new-bin", nil
}

func (f *fakeClient) Push(ctx context.Context, token string, snap *entities.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPush {
		return errors.New("remote down")
	}
	f.pushes++
	f.lastPush = snap
	return nil
}

func (f *fakeClient) Pull(ctx context.Context, token string) (*entities.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPull {
		return nil, errors.New("remote down")
	}
	return f.pullSnap, nil
}

func (f *fakeClient) pushCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pushes
}

type fakeStore struct {
	mu       stdsync.Mutex
	snap     *entities.Snapshot
	replaces int
}

func (f *fakeStore) Load() (*entities.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap, nil
}

func (f *fakeStore) Replace(snap *entities.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = snap
	f.replaces++
	return nil
}

type fakeSettings struct {
	mu   stdsync.Mutex
	vals map[string]string
}

func newFakeSettings() *fakeSettings { return &fakeSettings{vals: map[string]string{}} }

func (f *fakeSettings) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.vals[key], nil
}

func (f *fakeSettings) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vals[key] = value
	return nil
}

func snapWithOrders(n int) *entities.Snapshot {
	s := &entities.Snapshot{
		Users:    []entities.User{{ID: "u1", Username: "admin"}},
		Branches: []entities.Branch{},
		Trucks:   []entities.Truck{},
		Orders:   []entities.Order{},
	}
	for i := 0; i < n; i++ {
		s.Orders = append(s.Orders, entities.Order{ID: string(rune('a' + i)), PartyName: "Party"})
	}
	return s
}

func TestDebouncedPushCollapsesBurst(t *testing.T) {
	fc := &fakeClient{}
	fs := &fakeStore{snap: snapWithOrders(0)}
	o := NewOrchestrator(fc, fs, newFakeSettings(), 40*time.Millisecond, time.Hour)
	o.SetToken("tok")

	for i := 1; i <= 5; i++ {
		fs.mu.Lock()
		fs.snap = snapWithOrders(i)
		fs.mu.Unlock()
		o.NotifyMutation()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)

	if got := fc.pushCount(); got != 1 {
		t.Fatalf("pushes = %d, want 1 (burst should collapse)", got)
	}
	fc.mu.Lock()
	got := len(fc.lastPush.Orders)
	fc.mu.Unlock()
	if got != 5 {
		t.Errorf("pushed snapshot has %d orders, want 5 (state after last edit)", got)
	}
}

func TestNotifyMutationWithoutTokenIsNoop(t *testing.T) {
	fc := &fakeClient{}
	fs := &fakeStore{snap: snapWithOrders(1)}
	o := NewOrchestrator(fc, fs, newFakeSettings(), 10*time.Millisecond, time.Hour)

	o.NotifyMutation()
	time.Sleep(60 * time.Millisecond)

	if got := fc.pushCount(); got != 0 {
		t.Errorf("pushes = %d, want 0 with no token linked", got)
	}
}

func TestPullReplacesOnlyOnDifference(t *testing.T) {
	remote := snapWithOrders(3)
	fc := &fakeClient{pullSnap: remote}
	fs := &fakeStore{snap: snapWithOrders(1)}
	o := NewOrchestrator(fc, fs, newFakeSettings(), time.Hour, time.Hour)
	o.SetToken("tok")

	replaced, err := o.PullNow(context.Background())
	if err != nil {
		t.Fatalf("PullNow: %v", err)
	}
	if !replaced {
		t.Fatal("first pull should replace differing local state")
	}
	if fs.replaces != 1 {
		t.Fatalf("replaces = %d, want 1", fs.replaces)
	}

	// Local now matches remote; a second pull is a no-op.
	replaced, err = o.PullNow(context.Background())
	if err != nil {
		t.Fatalf("PullNow: %v", err)
	}
	if replaced {
		t.Error("identical state should not be replaced")
	}
	if fs.replaces != 1 {
		t.Errorf("replaces = %d, want still 1", fs.replaces)
	}
}

func TestOnlineFlagTracksRemote(t *testing.T) {
	fc := &fakeClient{failPush: true}
	fs := &fakeStore{snap: snapWithOrders(1)}
	o := NewOrchestrator(fc, fs, newFakeSettings(), time.Hour, time.Hour)
	o.SetToken("tok")

	if err := o.PushNow(context.Background()); err == nil {
		t.Fatal("PushNow should fail when the remote is down")
	}
	if o.Status().Online {
		t.Error("online should be false after a failed push")
	}

	fc.mu.Lock()
	fc.failPush = false
	fc.mu.Unlock()
	if err := o.PushNow(context.Background()); err != nil {
		t.Fatalf("PushNow: %v", err)
	}
	if !o.Status().Online {
		t.Error("online should recover after a successful push")
	}
}

func TestLinkAdoptsExistingToken(t *testing.T) {
	fc := &fakeClient{pullSnap: snapWithOrders(2)}
	fs := &fakeStore{snap: snapWithOrders(0)}
	settings := newFakeSettings()
	o := NewOrchestrator(fc, fs, settings, time.Hour, time.Hour)

	token, err := o.Link(context.Background(), "shared-tok")
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if token != "shared-tok" {
		t.Errorf("token = %q, want shared-tok", token)
	}
	if fs.replaces != 1 {
		t.Errorf("adopting a token should pull the shared document, replaces = %d", fs.replaces)
	}
	if v, _ := settings.Get(entities.SettingSyncToken); v != "shared-tok" {
		t.Errorf("persisted token = %q, want shared-tok", v)
	}
}

func TestLinkCreatesFreshBin(t *testing.T) {
	fc := &fakeClient{}
	fs := &fakeStore{snap: snapWithOrders(1)}
	o := NewOrchestrator(fc, fs, newFakeSettings(), time.Hour, time.Hour)

	token, err := o.Link(context.Background(), "")
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if token != "new-bin" {
		t.Errorf("token = %q, want new-bin", token)
	}
	if o.Token() != "new-bin" {
		t.Errorf("orchestrator token = %q, want new-bin", o.Token())
	}
}

func TestStartStop(t *testing.T) {
	fc := &fakeClient{pullSnap: snapWithOrders(1)}
	fs := &fakeStore{snap: snapWithOrders(1)}
	o := NewOrchestrator(fc, fs, newFakeSettings(), time.Hour, 20*time.Millisecond)
	o.SetToken("tok")

	o.Start()
	time.Sleep(70 * time.Millisecond)
	o.Stop()

	// A second Stop must not block or panic.
	o.Stop()
}

func TestTokenPersistsAcrossRestart(t *testing.T) {
	settings := newFakeSettings()
	settings.Set(entities.SettingSyncToken, "persisted-tok")

	o := NewOrchestrator(&fakeClient{}, &fakeStore{snap: snapWithOrders(0)}, settings, time.Hour, time.Hour)
	if o.Token() != "persisted-tok" {
		t.Errorf("token = %q, want persisted-tok", o.Token())
	}
}
