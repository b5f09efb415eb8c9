package cli

import (
	"encoding/json"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"

	"trustedform/internal/trustedform/lead"
)

const sampleCertHost = "https://cert.trustedform.com/"

func (a *App) sampleCmd() *cobra.Command {
	var (
		count int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate fake leads to feed run, batch or validate",
		Long:  `Leads are always written as a JSON array, the input format the other commands read.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			enc := json.NewEncoder(a.Out)
			enc.SetIndent("", "  ")
			return enc.Encode(SampleLeads(gofakeit.New(seed), count))
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of leads")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	return cmd
}

// SampleLeads generates n leads with valid looking certificate URLs and
// contact fields, retain enabled.
func SampleLeads(faker *gofakeit.Faker, n int) []*lead.Vars {
	leads := make([]*lead.Vars, n)
	for i := range leads {
		leads[i] = &lead.Vars{
			Lead: lead.Lead{
				ID:                 faker.Regex("[0-9a-z]{24}"),
				TrustedFormCertURL: sampleCertHost + faker.Regex("[0-9a-f]{40}"),
				Email:              faker.Email(),
				Phone1:             faker.Phone(),
			},
			TrustedForm: lead.Options{Retain: true},
			Source:      lead.Source{Name: faker.Company()},
		}
	}
	return leads
}
