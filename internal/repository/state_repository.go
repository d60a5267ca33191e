package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/compozy/githelper/internal/domain"
	"github.com/spf13/afero"
)

const (
	// StateSchemaVersion defines the current schema version for state files
	StateSchemaVersion = "1.0.0"
	// StateFilePermissions defines the permissions for state files
	StateFilePermissions = 0o600
	// StateDirPermissions defines the permissions for state directory
	StateDirPermissions = 0o700
	latestFileName      = "latest.txt"
)

// ErrStateNotFound indicates no recorded session matches the request.
var ErrStateNotFound = errors.New("state not found")

// StateRepository records tagging sessions so an interrupted run leaves a trace
// of what it already published.
type StateRepository interface {
	Save(ctx context.Context, state *domain.RollbackState) error
	Load(ctx context.Context, sessionID string) (*domain.RollbackState, error)
	LoadLatest(ctx context.Context) (*domain.RollbackState, error)
	Delete(ctx context.Context, sessionID string) error
	Path(sessionID string) string
}

// StateMetadata contains metadata about the state file
type StateMetadata struct {
	SchemaVersion string    `json:"schema_version"`
	Checksum      string    `json:"checksum"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StateWrapper wraps the state with metadata
type StateWrapper struct {
	Metadata StateMetadata         `json:"metadata"`
	State    *domain.RollbackState `json:"state"`
}

// JSONStateRepository implements StateRepository using JSON file storage
type JSONStateRepository struct {
	fs       afero.Fs
	stateDir string
}

// NewJSONStateRepository creates a new JSON-based state repository
func NewJSONStateRepository(fs afero.Fs, stateDir string) StateRepository {
	if stateDir == "" {
		stateDir = filepath.Join(os.TempDir(), "githelper-sessions")
	}
	return &JSONStateRepository{fs: fs, stateDir: stateDir}
}

// Path returns the file holding the given session.
func (r *JSONStateRepository) Path(sessionID string) string {
	return filepath.Join(r.stateDir, fmt.Sprintf("state-%s.json", sessionID))
}

// Save writes the state atomically and marks it as the latest session.
func (r *JSONStateRepository) Save(_ context.Context, state *domain.RollbackState) error {
	if err := r.fs.MkdirAll(r.stateDir, StateDirPermissions); err != nil {
		return fmt.Errorf("failed to ensure state directory: %w", err)
	}
	stateData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	wrapper := StateWrapper{
		Metadata: StateMetadata{
			SchemaVersion: StateSchemaVersion,
			Checksum:      checksum(stateData),
			UpdatedAt:     time.Now(),
		},
		State: state,
	}
	data, err := json.MarshalIndent(wrapper, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state file: %w", err)
	}
	filename := r.Path(state.SessionID)
	if err := r.writeAtomic(filename, data); err != nil {
		return err
	}
	return r.writeAtomic(filepath.Join(r.stateDir, latestFileName), []byte(state.SessionID))
}

// Load reads and validates a session.
func (r *JSONStateRepository) Load(_ context.Context, sessionID string) (*domain.RollbackState, error) {
	data, err := afero.ReadFile(r.fs, r.Path(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStateNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	var wrapper StateWrapper
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	if wrapper.Metadata.SchemaVersion != StateSchemaVersion {
		return nil, fmt.Errorf("unsupported state schema version: %s", wrapper.Metadata.SchemaVersion)
	}
	if wrapper.State == nil {
		return nil, fmt.Errorf("state file %s has no state", sessionID)
	}
	stateData, err := json.Marshal(wrapper.State)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state for checksum validation: %w", err)
	}
	if wrapper.Metadata.Checksum != checksum(stateData) {
		return nil, fmt.Errorf("state checksum mismatch: data may be corrupted")
	}
	return wrapper.State, nil
}

// LoadLatest retrieves the most recently saved session.
func (r *JSONStateRepository) LoadLatest(ctx context.Context) (*domain.RollbackState, error) {
	data, err := afero.ReadFile(r.fs, filepath.Join(r.stateDir, latestFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to read latest link: %w", err)
	}
	return r.Load(ctx, string(data))
}

// Delete removes a session; a missing session is not an error.
func (r *JSONStateRepository) Delete(_ context.Context, sessionID string) error {
	if err := r.fs.Remove(r.Path(sessionID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete state file: %w", err)
	}
	return nil
}

func (r *JSONStateRepository) writeAtomic(filename string, data []byte) error {
	tmp := filename + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, data, StateFilePermissions); err != nil {
		return fmt.Errorf("failed to write temp state file: %w", err)
	}
	if err := r.fs.Rename(tmp, filename); err != nil {
		_ = r.fs.Remove(tmp)
		return fmt.Errorf("failed to move state file into place: %w", err)
	}
	return nil
}

// checksum calculates SHA-256 checksum of data
func checksum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
