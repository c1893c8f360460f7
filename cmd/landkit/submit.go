package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var submitFlags struct {
	url      string
	site     string
	name     string
	email    string
	company  string
	message  string
	interest string
	timeout  time.Duration
}

type submitPayload struct {
	Site     string `json:"site,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Message  string `json:"message"`
	Interest string `json:"interest"`
}

type submitResult struct {
	Status string            `json:"status"`
	Errors map[string]string `json:"errors,omitempty"`
}

var errSubmitRejected = errors.New("submission was not accepted")

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send a contact submission to a running server",
	Example: `  landkit submit --site payflow --name "Jordan Lee" \
    --email jordan@example.com --message "Please contact me about pricing."`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var (
			result  submitResult
			problem submitResult
		)
		resp, err := resty.New().
			SetBaseURL(strings.TrimRight(submitFlags.url, "/")).
			SetTimeout(submitFlags.timeout).
			R().
			SetContext(cmd.Context()).
			SetHeader("Accept", "application/json").
			SetBody(submitPayload{
				Site:     submitFlags.site,
				Name:     submitFlags.name,
				Email:    submitFlags.email,
				Company:  submitFlags.company,
				Message:  submitFlags.message,
				Interest: submitFlags.interest,
			}).
			SetResult(&result).
			SetError(&problem).
			Post("/api/contact")
		if err != nil {
			return fmt.Errorf("post submission: %w", err)
		}

		out := cmd.OutOrStdout()
		if resp.IsSuccess() {
			fmt.Fprintf(out, "%s (%d)\n", result.Status, resp.StatusCode())
			return nil
		}

		status := problem.Status
		if status == "" {
			status = resp.Status()
		}
		fmt.Fprintf(out, "%s (%d)\n", status, resp.StatusCode())
		fields := make([]string, 0, len(problem.Errors))
		for field := range problem.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(out, "  %s: %s\n", field, problem.Errors[field])
		}
		return errSubmitRejected
	},
}

func init() {
	f := submitCmd.Flags()
	f.StringVar(&submitFlags.url, "url", "http://localhost:8080", "server base URL")
	f.StringVar(&submitFlags.site, "site", "", "site slug, the default site when empty")
	f.StringVar(&submitFlags.name, "name", "", "contact name")
	f.StringVar(&submitFlags.email, "email", "", "contact email")
	f.StringVar(&submitFlags.company, "company", "", "company")
	f.StringVar(&submitFlags.message, "message", "", "message body")
	f.StringVar(&submitFlags.interest, "interest", "", "interest: general, demo, pricing or partnership")
	f.DurationVar(&submitFlags.timeout, "timeout", 10*time.Second, "request timeout")
}
