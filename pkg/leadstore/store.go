package leadstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/buntdb"
)

const (
	keyPrefix    = "lead:"
	createdIndex = "leads_created"
)

// Config configures the lead store.
type Config struct {
	Path string `env:"LEADSTORE_PATH" envDefault:"./tmp/leads.db"`
}

// Lead is a stored contact-form submission.
type Lead struct {
	ID        string            `json:"id"`
	Site      string            `json:"site,omitempty"`
	Fields    map[string]string `json:"fields"`
	Meta      map[string]string `json:"meta,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	// Created mirrors CreatedAt as unix nanoseconds for the ordering index.
	Created int64 `json:"created"`
}

// ListOptions filters List results.
type ListOptions struct {
	Site  string
	Limit int
}

// Store persists leads in buntdb. Safe for concurrent use.
type Store struct {
	db *buntdb.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, errors.Join(ErrOpen, err)
	}

	if err := db.CreateIndex(createdIndex, keyPrefix+"*", buntdb.IndexJSON("created")); err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrOpen, err)
	}

	return &Store{db: db}, nil
}

// MustOpen is like Open but panics on error.
func MustOpen(path string) *Store {
	s, err := Open(path)
	if err != nil {
		panic(err)
	}
	return s
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a new lead. CreatedAt defaults to now.
func (s *Store) Save(ctx context.Context, lead Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if lead.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidLead)
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	lead.Created = lead.CreatedAt.UnixNano()

	raw, err := json.Marshal(lead)
	if err != nil {
		return errors.Join(ErrInvalidLead, err)
	}

	err = s.db.Update(func(tx *buntdb.Tx) error {
		if _, err := tx.Get(keyPrefix + lead.ID); err == nil {
			return ErrDuplicateLead
		} else if !errors.Is(err, buntdb.ErrNotFound) {
			return err
		}
		_, _, err := tx.Set(keyPrefix+lead.ID, string(raw), nil)
		return err
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDuplicateLead):
		return fmt.Errorf("%w: %s", ErrDuplicateLead, lead.ID)
	default:
		return errors.Join(ErrStorage, err)
	}
}

// Get returns the lead with the given id.
func (s *Store) Get(ctx context.Context, id string) (Lead, error) {
	if err := ctx.Err(); err != nil {
		return Lead{}, err
	}

	var raw string
	err := s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(keyPrefix + id)
		raw = v
		return err
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return Lead{}, ErrNotFound
	}
	if err != nil {
		return Lead{}, errors.Join(ErrStorage, err)
	}

	var lead Lead
	if err := json.Unmarshal([]byte(raw), &lead); err != nil {
		return Lead{}, errors.Join(ErrStorage, err)
	}
	return lead, nil
}

// List returns leads newest first. A zero Limit returns every match.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	leads := []Lead{}
	var decodeErr error
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.Descend(createdIndex, func(_, val string) bool {
			var lead Lead
			if err := json.Unmarshal([]byte(val), &lead); err != nil {
				decodeErr = err
				return false
			}
			if opts.Site != "" && lead.Site != opts.Site {
				return true
			}
			leads = append(leads, lead)
			return opts.Limit <= 0 || len(leads) < opts.Limit
		})
	})
	if err != nil {
		return nil, errors.Join(ErrStorage, err)
	}
	if decodeErr != nil {
		return nil, errors.Join(ErrStorage, decodeErr)
	}
	return leads, nil
}

// Count returns the number of stored leads.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var n int
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend(createdIndex, func(_, _ string) bool {
			n++
			return true
		})
	})
	if err != nil {
		return 0, errors.Join(ErrStorage, err)
	}
	return n, nil
}

// Healthcheck returns a probe for httpserver.HealthCheckHandler.
func (s *Store) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := s.Count(ctx)
		return err
	}
}
