package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/landkit/pkg/leadstore"
	contactsvc "github.com/dmitrymomot/landkit/svc/contact"
)

var leadsFlags struct {
	db     string
	site   string
	limit  int
	output string
}

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect the local lead inbox",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored leads, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := leadsFlags.db
		if path == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.LeadStore.Path
		}

		store, err := leadstore.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		leads, err := store.List(cmd.Context(), leadstore.ListOptions{
			Site:  leadsFlags.site,
			Limit: leadsFlags.limit,
		})
		if err != nil {
			return err
		}
		return writeLeads(cmd.OutOrStdout(), leadsFlags.output, leads)
	},
}

func init() {
	f := leadsListCmd.Flags()
	f.StringVar(&leadsFlags.db, "db", "", "lead store path, overrides LEADSTORE_PATH")
	f.StringVar(&leadsFlags.site, "site", "", "only leads from this site")
	f.IntVar(&leadsFlags.limit, "limit", 20, "maximum number of leads, 0 for all")
	f.StringVarP(&leadsFlags.output, "output", "o", "table", "output format: table, json or yaml")

	leadsCmd.AddCommand(leadsListCmd)
}

type leadView struct {
	ID        string            `json:"id" yaml:"id"`
	Site      string            `json:"site" yaml:"site"`
	CreatedAt time.Time         `json:"created_at" yaml:"created_at"`
	Fields    map[string]string `json:"fields" yaml:"fields"`
	Meta      map[string]string `json:"meta,omitempty" yaml:"meta,omitempty"`
}

func writeLeads(w io.Writer, format string, leads []leadstore.Lead) error {
	rows := make([]leadView, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, leadView{
			ID:        l.ID,
			Site:      l.Site,
			CreatedAt: l.CreatedAt,
			Fields:    l.Fields,
			Meta:      l.Meta,
		})
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(rows)
	case "table", "":
		table := tablewriter.NewWriter(w)
		table.Header("Created", "Site", "Name", "Email", "Interest", "ID")
		for _, v := range rows {
			if err := table.Append(
				v.CreatedAt.Local().Format(time.DateTime),
				v.Site,
				v.Fields[contactsvc.FieldName],
				v.Fields[contactsvc.FieldEmail],
				v.Fields[contactsvc.FieldInterest],
				v.ID,
			); err != nil {
				return err
			}
		}
		return table.Render()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
