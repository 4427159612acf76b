package pay

// Commission defines an optional bonus paid on top of a contract.
type Commission interface {
	Payment() float64
}

// DefaultCommission is the bonus paid per landed contract.
const DefaultCommission = 100

type ContractCommission struct {
	Commission      float64
	ContractsLanded int
}

func NewContractCommission(contractsLanded int) *ContractCommission {
	return &ContractCommission{
		Commission:      DefaultCommission,
		ContractsLanded: contractsLanded,
	}
}

func (c *ContractCommission) Payment() float64 {
	return c.Commission * float64(c.ContractsLanded)
}
