package contact

import (
	"context"
	"path"

	"github.com/dmitrymomot/landkit/pkg/archive"
	"github.com/dmitrymomot/landkit/pkg/leadstore"
)

// StoreSubmitter keeps submissions in the local lead inbox.
type StoreSubmitter struct {
	store *leadstore.Store
}

func NewStoreSubmitter(store *leadstore.Store) *StoreSubmitter {
	return &StoreSubmitter{store: store}
}

func (s *StoreSubmitter) Submit(ctx context.Context, sub Submission) error {
	return s.store.Save(ctx, LeadFromSubmission(sub))
}

// LeadFromSubmission converts a submission into a lead record.
func LeadFromSubmission(sub Submission) leadstore.Lead {
	return leadstore.Lead{
		ID:        sub.ID.String(),
		Site:      sub.Meta.Site,
		Fields:    sub.Fields.Clone(),
		Meta:      sub.Meta.Map(),
		CreatedAt: sub.SubmittedAt,
	}
}

// ArchiveSubmitter writes each submission as a JSON object, partitioned by
// site and date: <site>/<yyyy>/<mm>/<dd>/<id>.json.
type ArchiveSubmitter struct {
	archive *archive.Archive
}

func NewArchiveSubmitter(a *archive.Archive) *ArchiveSubmitter {
	return &ArchiveSubmitter{archive: a}
}

func (s *ArchiveSubmitter) Submit(ctx context.Context, sub Submission) error {
	_, err := s.archive.Put(ctx, ArchiveKey(sub), sub)
	return err
}

// ArchiveKey returns the object name for sub, relative to the archive prefix.
func ArchiveKey(sub Submission) string {
	site := sub.Meta.Site
	if site == "" {
		site = "default"
	}
	return path.Join(site, sub.SubmittedAt.UTC().Format("2006/01/02"), sub.ID.String()+".json")
}
