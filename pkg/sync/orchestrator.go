package sync

import (
	"context"
	"encoding/json"
	"log"
	stdsync "sync"
	"time"

	"github.com/RW482/vora/entities"
)

// Store is the local side of the exchange: the snapshot service backed by
// the SQLite database.
type Store interface {
	Load() (*entities.Snapshot, error)
	Replace(snap *entities.Snapshot) error
}

// Settings persists the sync token and last-sync timestamp across restarts.
type Settings interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type Status struct {
	Token    string    `json:"token"`
	Online   bool      `json:"online"`
	Syncing  bool      `json:"syncing"`
	LastSync time.Time `json:"last_sync"`
}

// Orchestrator schedules the two sync tasks: a debounced push after local
// mutations and a periodic pull. A single mutex serializes push and pull so
// a slow pull can never interleave with a push and clobber its result.
type Orchestrator struct {
	remote   Client
	store    Store
	settings Settings

	debounce time.Duration
	interval time.Duration

	op stdsync.Mutex // serializes push/pull against the remote

	mu       stdsync.Mutex // guards the fields below
	token    string
	online   bool
	syncing  bool
	lastSync time.Time
	timer    *time.Timer
	stopChan chan bool
	started  bool
}

func NewOrchestrator(remote Client, store Store, settings Settings, debounce, interval time.Duration) *Orchestrator {
	o := &Orchestrator{
		remote:   remote,
		store:    store,
		settings: settings,
		debounce: debounce,
		interval: interval,
		online:   true,
		stopChan: make(chan bool),
	}
	if settings != nil {
		if tok, err := settings.Get(entities.SettingSyncToken); err == nil && tok != "" {
			o.token = tok
		}
		if ts, err := settings.Get(entities.SettingLastSync); err == nil && ts != "" {
			if t, err := time.Parse(time.RFC3339, ts); err == nil {
				o.lastSync = t
			}
		}
	}
	return o
}

// SetToken adopts an existing bin token (e.g. from config) without
// creating a new remote document.
func (o *Orchestrator) SetToken(token string) {
	if token == "" {
		return
	}
	o.mu.Lock()
	o.token = token
	o.mu.Unlock()
	o.persistToken(token)
}

// Link creates a remote bin seeded with the current local state, or adopts
// an existing token and pulls from it.
func (o *Orchestrator) Link(ctx context.Context, existing string) (string, error) {
	if existing != "" {
		o.SetToken(existing)
		if _, err := o.PullNow(ctx); err != nil {
			return "", err
		}
		return existing, nil
	}

	snap, err := o.store.Load()
	if err != nil {
		return "", err
	}
	token, err := o.remote.Create(ctx, snap)
	if err != nil {
		o.setOnline(false)
		return "", err
	}
	o.mu.Lock()
	o.token = token
	o.online = true
	o.mu.Unlock()
	o.persistToken(token)
	log.Printf("[sync] linked to bin %s", token)
	return token, nil
}

// Start launches the periodic pull loop. Safe to call with no token
// configured: ticks are skipped until one is linked.
func (o *Orchestrator) Start() {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return
	}
	o.started = true
	o.mu.Unlock()

	ticker := time.NewTicker(o.interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				if o.Token() == "" {
					continue
				}
				if _, err := o.PullNow(context.Background()); err != nil {
					log.Printf("[sync] pull: %v", err)
				}
			case <-o.stopChan:
				ticker.Stop()
				return
			}
		}
	}()
	log.Printf("[sync] started (pull every %s, push debounce %s)", o.interval, o.debounce)
}

// Stop cancels the pull loop and any pending debounced push. Must run on
// shutdown so no orphaned timer acts after teardown.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	started := o.started
	o.started = false
	o.mu.Unlock()
	if started {
		o.stopChan <- true
	}
}

// NotifyMutation schedules a push after the debounce window. Each call
// resets the timer, so a burst of edits results in a single push carrying
// the state after the last one.
func (o *Orchestrator) NotifyMutation() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.token == "" {
		return
	}
	if o.timer != nil {
		o.timer.Stop()
	}
	o.timer = time.AfterFunc(o.debounce, func() {
		if err := o.PushNow(context.Background()); err != nil {
			log.Printf("[sync] push: %v", err)
		}
	})
}

// PushNow overwrites the remote document with the current local state.
func (o *Orchestrator) PushNow(ctx context.Context) error {
	token := o.Token()
	if token == "" {
		return nil
	}
	o.op.Lock()
	defer o.op.Unlock()
	o.setSyncing(true)
	defer o.setSyncing(false)

	snap, err := o.store.Load()
	if err != nil {
		return err
	}
	if err := o.remote.Push(ctx, token, snap); err != nil {
		o.setOnline(false)
		return err
	}
	o.markSynced()
	return nil
}

// PullNow fetches the remote document and replaces local state when the
// serialized blobs differ. Returns whether a replace happened.
func (o *Orchestrator) PullNow(ctx context.Context) (bool, error) {
	token := o.Token()
	if token == "" {
		return false, nil
	}
	o.op.Lock()
	defer o.op.Unlock()
	o.setSyncing(true)
	defer o.setSyncing(false)

	remote, err := o.remote.Pull(ctx, token)
	if err != nil {
		o.setOnline(false)
		return false, err
	}
	local, err := o.store.Load()
	if err != nil {
		return false, err
	}

	// String comparison of the serialized blobs, not a semantic diff: the
	// dataset is small and this avoids replacing identical state.
	rb, _ := json.Marshal(remote)
	lb, _ := json.Marshal(local)
	if string(rb) == string(lb) {
		o.markSynced()
		return false, nil
	}

	if err := o.store.Replace(remote); err != nil {
		return false, err
	}
	o.markSynced()
	log.Printf("[sync] applied remote snapshot (%d orders, %d trucks)", len(remote.Orders), len(remote.Trucks))
	return true, nil
}

func (o *Orchestrator) Token() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.token
}

func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Status{Token: o.token, Online: o.online, Syncing: o.syncing, LastSync: o.lastSync}
}

func (o *Orchestrator) setOnline(v bool) {
	o.mu.Lock()
	o.online = v
	o.mu.Unlock()
}

func (o *Orchestrator) setSyncing(v bool) {
	o.mu.Lock()
	o.syncing = v
	o.mu.Unlock()
}

func (o *Orchestrator) markSynced() {
	now := time.Now()
	o.mu.Lock()
	o.online = true
	o.lastSync = now
	o.mu.Unlock()
	if o.settings != nil {
		if err := o.settings.Set(entities.SettingLastSync, now.Format(time.RFC3339)); err != nil {
			log.Printf("[sync] persist last-sync: %v", err)
		}
	}
}

func (o *Orchestrator) persistToken(token string) {
	if o.settings == nil {
		return
	}
	if err := o.settings.Set(entities.SettingSyncToken, token); err != nil {
		log.Printf("[sync] persist token: %v", err)
	}
}
