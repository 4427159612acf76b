package cli

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payroll-engine/internal/engine"
	"payroll-engine/internal/model"
	"payroll-engine/internal/roster"
)

var errCalculationFailed = errors.New("calculation failed")

func newComputeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compute [roster-file]",
		Short: "Compute payslips for a JSON or YAML roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := roster.Load(args[0])
			if err != nil {
				return err
			}
			if req.TenantID == "" {
				req.TenantID = a.cfg.DefaultTenantID
			}

			resp := engine.Process(req)
			a.logger.Debug("roster computed",
				zap.String("file", args[0]),
				zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
				zap.String("outcome", resp.CalculationMetadata.CalculationOutcome))

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("encode response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
				return errCalculationFailed
			}
			return nil
		},
	}
}
