package pay

// Contract defines the pay basis attached to an employee.
// Payment returns the base amount owed, computed only from the contract's own fields.
type Contract interface {
	Payment() float64
}

const (
	DefaultEmployerCost = 1000
	DefaultPercentage   = 1
)

type HourlyContract struct {
	PayRate      float64
	HoursWorked  float64
	EmployerCost float64
}

// NewHourlyContract returns an hourly contract carrying the default employer cost.
func NewHourlyContract(payRate, hoursWorked float64) *HourlyContract {
	return &HourlyContract{
		PayRate:      payRate,
		HoursWorked:  hoursWorked,
		EmployerCost: DefaultEmployerCost,
	}
}

func (c *HourlyContract) Payment() float64 {
	return c.PayRate*c.HoursWorked + c.EmployerCost
}

type SalariedContract struct {
	MonthlySalary float64
	Percentage    float64
}

// NewSalariedContract returns a full-time salaried contract.
func NewSalariedContract(monthlySalary float64) *SalariedContract {
	return &SalariedContract{
		MonthlySalary: monthlySalary,
		Percentage:    DefaultPercentage,
	}
}

func (c *SalariedContract) Payment() float64 {
	return c.MonthlySalary * c.Percentage
}

type FreelancerContract struct {
	PayRate     float64
	HoursWorked float64
	// VATNumber is carried for reporting and never enters the payment.
	VATNumber string
}

func NewFreelancerContract(payRate, hoursWorked float64) *FreelancerContract {
	return &FreelancerContract{
		PayRate:     payRate,
		HoursWorked: hoursWorked,
	}
}

func (c *FreelancerContract) Payment() float64 {
	return c.PayRate * c.HoursWorked
}
