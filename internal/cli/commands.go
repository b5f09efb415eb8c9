package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trustedform/internal/batch"
	"trustedform/internal/outbound"
	"trustedform/internal/trustedform/providers"
)

func (a *App) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <module> [file]",
		Short: "Run one adapter over one lead",
		Long:  `Reads the lead variables as JSON from file, or from stdin when file is omitted or "-".`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			leads, err := a.readLeads(args[1:])
			if err != nil {
				return err
			}
			if len(leads) != 1 {
				return fmt.Errorf("run takes one lead, got %d; use batch", len(leads))
			}
			appended, err := a.service.Run(cmd.Context(), args[0], leads[0])
			if err != nil {
				return err
			}
			return a.print(appended)
		},
	}
}

type batchOutput struct {
	Summary batch.Summary  `json:"summary" yaml:"summary"`
	Results []batch.Result `json:"results,omitempty" yaml:"results,omitempty"`
}

func (a *App) batchCmd() *cobra.Command {
	var (
		concurrency int
		summaryOnly bool
	)
	cmd := &cobra.Command{
		Use:   "batch <module> [file]",
		Short: "Run one adapter over many leads",
		Long:  `Reads a JSON array or a stream of JSON lead objects from file or stdin.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			leads, err := a.readLeads(args[1:])
			if err != nil {
				return err
			}
			if concurrency == 0 {
				concurrency = a.cfg.Batch.Concurrency
			}
			b := batch.New(a.service, batch.WithConcurrency(concurrency), batch.WithLogger(a.logger))
			results, err := b.Run(cmd.Context(), args[0], leads)
			if err != nil {
				return err
			}
			out := batchOutput{Summary: batch.Summarize(results)}
			if !summaryOnly {
				out.Results = results
			}
			return a.print(out)
		},
	}
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "leads in flight (default from config)")
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "print only the outcome counts")
	return cmd
}

func (a *App) variablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variables [module]",
		Short: "List adapters, or describe one adapter's variables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			registry := a.service.Registry()
			if len(args) == 0 {
				return a.print(outbound.Summaries(registry))
			}
			adapter, err := a.adapter(args[0])
			if err != nil {
				return err
			}
			return a.print(outbound.Variables(adapter))
		},
	}
}

type validation struct {
	Index  int    `json:"index" yaml:"index"`
	LeadID string `json:"lead_id,omitempty" yaml:"lead_id,omitempty"`
	Valid  bool   `json:"valid" yaml:"valid"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func (a *App) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <module> [file]",
		Short: "Report which leads an adapter would skip, without sending anything",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			adapter, err := a.adapter(args[0])
			if err != nil {
				return err
			}
			leads, err := a.readLeads(args[1:])
			if err != nil {
				return err
			}
			out := make([]validation, 0, len(leads))
			for i, vars := range leads {
				reason := adapter.Validate(vars)
				out = append(out, validation{
					Index:  i,
					LeadID: vars.Lead.ID,
					Valid:  reason == "",
					Reason: reason,
				})
			}
			return a.print(out)
		},
	}
}

func (a *App) adapter(id string) (providers.Adapter, error) {
	adapter, ok := a.service.Registry().Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", providers.ErrProviderNotFound, id)
	}
	return adapter, nil
}
