package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"adsync/internal/audit"
	"adsync/internal/observability"
	"adsync/internal/store"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// KeyStore defines the database operations required by KeyProcessor
type KeyStore interface {
	CreateAgentKey(ctx context.Context, name, keyHash, keySuffix string) (store.AgentAPIKey, error)
	GetActiveAgentKeyByHash(ctx context.Context, keyHash string) (store.AgentAPIKey, error)
	ListAgentKeys(ctx context.Context) ([]store.AgentAPIKey, error)
	RevokeAgentKey(ctx context.Context, id uuid.UUID) (store.AgentAPIKey, error)
	TouchAgentKey(ctx context.Context, id uuid.UUID, at time.Time) error
}

type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry) (store.AuditEntry, error)
}

var (
	ErrInvalidKey  = errors.New("invalid or revoked agent key")
	ErrKeyNotFound = errors.New("agent key not found")
)

const (
	keyBytes     = 32
	suffixLength = 8
	touchTimeout = 5 * time.Second
)

// CreatedKey carries the plaintext key, which is never stored and shown only once
type CreatedKey struct {
	KeyView
	Key string `json:"key"`
}

// KeyView is an agent key as listed to users
type KeyView struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	KeyPreview string     `json:"key_preview"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type KeyProcessor struct {
	store  KeyStore
	audit  AuditRecorder
	logger *observability.Logger
	now    func() time.Time
	async  func(func())
}

func New(store KeyStore, audit AuditRecorder, logger *observability.Logger) KeyProcessor {
	return KeyProcessor{
		store:  store,
		audit:  audit,
		logger: logger,
		now:    time.Now,
		async:  func(f func()) { go f() },
	}
}

// GenerateKey returns a new random key with its SHA-256 hash and display suffix
func GenerateKey() (rawKey, keyHash, suffix string, err error) {
	b := make([]byte, keyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", "", fmt.Errorf("failed to generate agent key: %w", err)
	}
	rawKey = hex.EncodeToString(b)
	return rawKey, HashKey(rawKey), rawKey[len(rawKey)-suffixLength:], nil
}

// HashKey is the lookup hash stored for a key
func HashKey(rawKey string) string {
	sum := sha256.Sum256([]byte(rawKey))
	return hex.EncodeToString(sum[:])
}

// CreateKey generates and stores a new agent key
func (p *KeyProcessor) CreateKey(ctx context.Context, actor audit.Actor, name string) (CreatedKey, error) {
	rawKey, keyHash, suffix, err := GenerateKey()
	if err != nil {
		p.logger.Error(ctx, "failed to generate agent key", err)
		return CreatedKey{}, err
	}

	key, err := p.store.CreateAgentKey(ctx, name, keyHash, suffix)
	if err != nil {
		return CreatedKey{}, err
	}

	p.recordAudit(ctx, audit.Entry{
		Actor:      actor,
		ActionType: audit.ActionAPIKeyCreate,
		EntityType: audit.EntityAPIKey,
		EntityID:   key.ID.String(),
		EntityName: key.Name,
		AfterState: map[string]interface{}{"name": key.Name, "key_preview": key.Preview()},
		Success:    true,
	})

	p.logger.Info(ctx, "created agent key", observability.Field{Key: "agent_key_id", Value: key.ID.String()})
	return CreatedKey{KeyView: viewOf(key), Key: rawKey}, nil
}

// ListKeys lists every key, newest first, without secrets
func (p *KeyProcessor) ListKeys(ctx context.Context) ([]KeyView, error) {
	keys, err := p.store.ListAgentKeys(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]KeyView, 0, len(keys))
	for _, k := range keys {
		views = append(views, viewOf(k))
	}
	return views, nil
}

// RevokeKey stops a key from authenticating
func (p *KeyProcessor) RevokeKey(ctx context.Context, actor audit.Actor, id uuid.UUID) (KeyView, error) {
	key, err := p.store.RevokeAgentKey(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return KeyView{}, ErrKeyNotFound
		}
		return KeyView{}, err
	}

	p.recordAudit(ctx, audit.Entry{
		Actor:       actor,
		ActionType:  audit.ActionAPIKeyRevoke,
		EntityType:  audit.EntityAPIKey,
		EntityID:    key.ID.String(),
		EntityName:  key.Name,
		BeforeState: map[string]interface{}{"revoked": false},
		AfterState:  map[string]interface{}{"revoked": true},
		Success:     true,
	})
	return viewOf(key), nil
}

// Authenticate resolves a presented key to its record. The use is recorded in the background.
func (p *KeyProcessor) Authenticate(ctx context.Context, rawKey string) (store.AgentAPIKey, error) {
	keyHash := HashKey(rawKey)

	key, err := p.store.GetActiveAgentKeyByHash(ctx, keyHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AgentAPIKey{}, ErrInvalidKey
		}
		return store.AgentAPIKey{}, err
	}
	if subtle.ConstantTimeCompare([]byte(key.KeyHash), []byte(keyHash)) != 1 {
		return store.AgentAPIKey{}, ErrInvalidKey
	}

	usedAt := p.now()
	touchCtx := context.WithoutCancel(ctx)
	p.async(func() {
		ctx, cancel := context.WithTimeout(touchCtx, touchTimeout)
		defer cancel()
		if err := p.store.TouchAgentKey(ctx, key.ID, usedAt); err != nil {
			p.logger.WarnWithError(ctx, "failed to record agent key use", err)
		}
	})

	return key, nil
}

func (p *KeyProcessor) recordAudit(ctx context.Context, entry audit.Entry) {
	if _, err := p.audit.Record(ctx, entry); err != nil {
		p.logger.Error(ctx, "failed to write audit entry for agent key", err)
	}
}

func viewOf(k store.AgentAPIKey) KeyView {
	return KeyView{
		ID:         k.ID,
		Name:       k.Name,
		KeyPreview: k.Preview(),
		LastUsedAt: k.LastUsedAt,
		RevokedAt:  k.RevokedAt,
		CreatedAt:  k.CreatedAt,
	}
}
