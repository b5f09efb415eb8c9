package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trustedform/pkg/platform/sentinel"
)

// Store persists built flows. Get returns sentinel.ErrNotFound for unknown ids.
type Store interface {
	Save(ctx context.Context, f *Flow) error
	Get(ctx context.Context, id uuid.UUID) (*Flow, error)
	List(ctx context.Context, limit int) ([]*Flow, error)
}

// InMemoryStore keeps flows in process.
type InMemoryStore struct {
	mu    sync.RWMutex
	flows map[uuid.UUID]*Flow
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{flows: make(map[uuid.UUID]*Flow)}
}

func (s *InMemoryStore) Save(_ context.Context, f *Flow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.flows[f.ID]; exists {
		return fmt.Errorf("flow %s: %w", f.ID, sentinel.ErrConflict)
	}
	cp := *f
	s.flows[f.ID] = &cp
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id uuid.UUID) (*Flow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.flows[id]
	if !ok {
		return nil, fmt.Errorf("flow %s: %w", id, sentinel.ErrNotFound)
	}
	cp := *f
	return &cp, nil
}

// List returns the newest flows first.
func (s *InMemoryStore) List(_ context.Context, limit int) ([]*Flow, error) {
	s.mu.RLock()
	out := make([]*Flow, 0, len(s.flows))
	for _, f := range s.flows {
		cp := *f
		out = append(out, &cp)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Flow) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return slices.Compare(b.ID[:], a.ID[:])
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// PostgresStore keeps flows in the flows table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Save(ctx context.Context, f *Flow) error {
	if len(f.Steps) == 0 {
		return errors.New("flow has no steps")
	}
	definition, err := json.Marshal(f.Steps)
	if err != nil {
		return fmt.Errorf("encode flow: %w", err)
	}
	step := f.Steps[0]

	tag, err := s.pool.Exec(ctx, `
		INSERT INTO flows (id, entity_id, entity_name, module_id, definition, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		f.ID, step.Entity.ID, step.Entity.Name, step.Integration.ModuleID, definition, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert flow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flow %s: %w", f.ID, sentinel.ErrConflict)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*Flow, error) {
	row := s.pool.QueryRow(ctx, `SELECT id, definition, created_at FROM flows WHERE id = $1`, id)
	f, err := scanFlow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("flow %s: %w", id, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get flow: %w", err)
	}
	return f, nil
}

func (s *PostgresStore) List(ctx context.Context, limit int) ([]*Flow, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, definition, created_at FROM flows
		ORDER BY created_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list flows: %w", err)
	}
	defer rows.Close()

	var out []*Flow
	for rows.Next() {
		f, err := scanFlow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flow: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list flows: %w", err)
	}
	return out, nil
}

func scanFlow(row pgx.Row) (*Flow, error) {
	var (
		f          Flow
		definition []byte
	)
	if err := row.Scan(&f.ID, &definition, &f.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(definition, &f.Steps); err != nil {
		return nil, fmt.Errorf("decode flow: %w", err)
	}
	f.CreatedAt = f.CreatedAt.UTC()
	return &f, nil
}
