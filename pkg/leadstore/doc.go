// Package leadstore keeps contact-form leads in an embedded buntdb database.
//
// It backs the local lead inbox: every accepted submission can be saved here
// and listed later from the CLI. Use ":memory:" as the path for an in-memory
// store.
//
//	store, err := leadstore.Open(cfg.Path)
//	defer store.Close()
//
//	err = store.Save(ctx, leadstore.Lead{ID: id, Site: "ledger", Fields: fields})
//	leads, err := store.List(ctx, leadstore.ListOptions{Site: "ledger", Limit: 20})
//
// Leads are stored as JSON under "lead:<id>" and listed newest first.
package leadstore
