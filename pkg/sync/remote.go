package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/RW482/vora/entities"
)

type remote struct {
	endpoint string
	httpc    *http.Client
}

func NewRemote(endpoint string) Client {
	return &remote{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpc:    &http.Client{Timeout: 20 * time.Second},
	}
}

// Create posts the blob to the bin root. The response names the new
// document as either "binId" or "id" depending on the provider.
func (r *remote) Create(ctx context.Context, snap *entities.Snapshot) (string, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCreate, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCreate, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCreate, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrRemoteCreate, resp.StatusCode)
	}

	var out struct {
		BinID string `json:"binId"`
		ID    string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCreate, err)
	}
	token := out.BinID
	if token == "" {
		token = out.ID
	}
	if token == "" {
		return "", fmt.Errorf("%w: no bin id in response", ErrRemoteCreate)
	}
	return token, nil
}

func (r *remote) Push(ctx context.Context, token string, snap *entities.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteWrite, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+"/"+token, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteWrite, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteWrite, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRemoteWrite, resp.StatusCode)
	}
	return nil
}

func (r *remote) Pull(ctx context.Context, token string) (*entities.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"/"+token, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteFormat, err)
	}
	resp, err := r.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteFormat, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrRemoteFormat, resp.StatusCode)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteFormat, err)
	}
	return DecodeSnapshot(raw)
}

// DecodeSnapshot unwraps the optional {"contents": …} envelope some bin
// providers add, then checks the users-field heuristic before accepting
// the document as a real snapshot.
func DecodeSnapshot(raw map[string]json.RawMessage) (*entities.Snapshot, error) {
	if inner, ok := raw["contents"]; ok {
		var unwrapped map[string]json.RawMessage
		if err := json.Unmarshal(inner, &unwrapped); err != nil {
			return nil, fmt.Errorf("%w: bad contents envelope: %v", ErrRemoteFormat, err)
		}
		raw = unwrapped
	}
	if _, ok := raw["users"]; !ok {
		return nil, fmt.Errorf("%w: missing users collection", ErrRemoteFormat)
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteFormat, err)
	}
	var snap entities.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteFormat, err)
	}
	return &snap, nil
}
