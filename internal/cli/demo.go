package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payroll-engine/internal/pay"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the pay of a fixed demo roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := demoRoster()
			if err != nil {
				return err
			}
			for _, e := range employees {
				a.logger.Debug("computing pay", zap.String("name", e.Name), zap.Int("id", e.ID))
				fmt.Fprintln(cmd.OutOrStdout(), describe(e))
			}
			return nil
		},
	}
}

func demoRoster() ([]*pay.Employee, error) {
	billie, err := pay.NewEmployee("Billie", 12345,
		&pay.HourlyContract{PayRate: 50, HoursWorked: 100, EmployerCost: pay.DefaultEmployerCost}, nil)
	if err != nil {
		return nil, err
	}

	charlie, err := pay.NewEmployee("Charlie", 47832,
		pay.NewSalariedContract(5000),
		&pay.ContractCommission{Commission: pay.DefaultCommission, ContractsLanded: 10})
	if err != nil {
		return nil, err
	}

	renee, err := pay.NewEmployee("Renee", 19904, pay.NewFreelancerContract(40, 20), nil)
	if err != nil {
		return nil, err
	}

	return []*pay.Employee{billie, charlie, renee}, nil
}

// describe reports the commission when there is one, otherwise the hours
// worked when the contract tracks them.
func describe(e *pay.Employee) string {
	earned := formatAmount(e.ComputePay())

	if m, ok := e.Commission.(*pay.ContractCommission); ok {
		return fmt.Sprintf("%s landed %d contracts and earned $%s.", e.Name, m.ContractsLanded, earned)
	}

	switch c := e.Contract.(type) {
	case *pay.HourlyContract:
		return fmt.Sprintf("%s worked for %s hours and earned $%s.", e.Name, formatAmount(c.HoursWorked), earned)
	case *pay.FreelancerContract:
		return fmt.Sprintf("%s worked for %s hours and earned $%s.", e.Name, formatAmount(c.HoursWorked), earned)
	}
	return fmt.Sprintf("%s earned $%s.", e.Name, earned)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
