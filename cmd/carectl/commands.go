package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(remindersCmd(), petsCmd(), plansCmd(), recordsCmd())
}

func remindersCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Show the merged reminder feed of all active pets",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			path := "/pets/health-reminders"
			if cmd.Flags().Changed("days") {
				path += "?" + url.Values{"days": {strconv.Itoa(days)}}.Encode()
			}
			var out []map[string]any
			if err := c.DoJSON(cmd.Context(), http.MethodGet, path, nil, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVarP(&days, "days", "d", 30, "Horizon in days (0..365)")
	return cmd
}

func petsCmd() *cobra.Command {
	petsCmd := &cobra.Command{Use: "pets", Short: "Pet operations"}

	petsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List my pets",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out []map[string]any
			if err := c.DoJSON(cmd.Context(), http.MethodGet, "/pets", nil, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	var name, species string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out map[string]any
			payload := map[string]any{"name": name, "species": species}
			if err := c.DoJSON(cmd.Context(), http.MethodPost, "/pets", payload, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Pet name (required)")
	createCmd.Flags().StringVarP(&species, "species", "s", "dog", "dog|cat|other")
	_ = createCmd.MarkFlagRequired("name")
	petsCmd.AddCommand(createCmd)

	return petsCmd
}

func plansCmd() *cobra.Command {
	plansCmd := &cobra.Command{Use: "plans", Short: "Care plan operations"}

	plansCmd.AddCommand(&cobra.Command{
		Use:   "list PET_ID",
		Short: "List care plans of a pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out []map[string]any
			if err := c.DoJSON(cmd.Context(), http.MethodGet, "/pets/"+url.PathEscape(args[0])+"/care-plans", nil, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	var (
		title, category, frequency, start string
		interval, lead                    int
	)
	createCmd := &cobra.Command{
		Use:   "create PET_ID",
		Short: "Create a care plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			payload := map[string]any{
				"title":      title,
				"category":   category,
				"frequency":  frequency,
				"start_date": start,
			}
			if cmd.Flags().Changed("interval") {
				payload["custom_interval_days"] = interval
			}
			if cmd.Flags().Changed("lead") {
				payload["reminder_lead_days"] = lead
			}
			var out map[string]any
			if err := c.DoJSON(cmd.Context(), http.MethodPost, "/pets/"+url.PathEscape(args[0])+"/care-plans", payload, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	createCmd.Flags().StringVar(&title, "title", "", "Title (required)")
	createCmd.Flags().StringVar(&category, "category", "other", "nutrition|exercise|grooming|medication|wellness|other")
	createCmd.Flags().StringVar(&frequency, "frequency", "once", "once|daily|weekly|monthly|custom")
	createCmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (required)")
	createCmd.Flags().IntVar(&interval, "interval", 0, "Custom interval in days (frequency=custom)")
	createCmd.Flags().IntVar(&lead, "lead", 1, "Reminder lead days")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("start")
	plansCmd.AddCommand(createCmd)

	plansCmd.AddCommand(&cobra.Command{
		Use:   "complete PET_ID PLAN_ID",
		Short: "Mark the current occurrence of a plan as done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out map[string]any
			path := "/pets/" + url.PathEscape(args[0]) + "/care-plans/" + url.PathEscape(args[1]) + "/complete"
			if err := c.DoJSON(cmd.Context(), http.MethodPost, path, nil, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	plansCmd.AddCommand(&cobra.Command{
		Use:   "delete PET_ID PLAN_ID",
		Short: "Delete a care plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			path := "/pets/" + url.PathEscape(args[0]) + "/care-plans/" + url.PathEscape(args[1])
			if err := c.DoJSON(cmd.Context(), http.MethodDelete, path, nil, nil); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	})

	return plansCmd
}

func recordsCmd() *cobra.Command {
	recordsCmd := &cobra.Command{Use: "records", Short: "Health record operations"}

	recordsCmd.AddCommand(&cobra.Command{
		Use:   "list PET_ID",
		Short: "List health records of a pet (newest first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out []map[string]any
			if err := c.DoJSON(cmd.Context(), http.MethodGet, "/pets/"+url.PathEscape(args[0])+"/health-records", nil, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	return recordsCmd
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
