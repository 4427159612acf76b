package strategies

const (
	TypeHourly             = "hourly"
	TypeSalaried           = "salaried"
	TypeFreelancer         = "freelancer"
	TypeContractCommission = "contract_commission"
)

var contracts = map[string]ContractBuilder{
	TypeHourly:     &HourlyBuilder{},
	TypeSalaried:   &SalariedBuilder{},
	TypeFreelancer: &FreelancerBuilder{},
}

var commissions = map[string]CommissionBuilder{
	TypeContractCommission: &ContractCommissionBuilder{},
}

func Contract(name string) (ContractBuilder, bool) {
	b, ok := contracts[name]
	return b, ok
}

func Commission(name string) (CommissionBuilder, bool) {
	b, ok := commissions[name]
	return b, ok
}
