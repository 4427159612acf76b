package pay

import (
	"errors"
	"reflect"
)

var ErrMissingContract = errors.New("employee requires a contract")

// Employee combines exactly one contract with at most one commission.
// A nil Commission means the employee earns no bonus at all, which is
// distinct from a commission that happens to pay zero.
type Employee struct {
	Name       string
	ID         int
	Contract   Contract
	Commission Commission
}

// NewEmployee builds an employee from already constructed strategies.
// Pass a nil commission for employees without a bonus.
func NewEmployee(name string, id int, contract Contract, commission Commission) (*Employee, error) {
	if isNil(contract) {
		return nil, ErrMissingContract
	}
	if isNil(commission) {
		commission = nil
	}
	return &Employee{
		Name:       name,
		ID:         id,
		Contract:   contract,
		Commission: commission,
	}, nil
}

func (e *Employee) HasCommission() bool {
	return e.Commission != nil
}

// ComputePay returns the contract payment plus the commission payment, if any.
func (e *Employee) ComputePay() float64 {
	total := e.Contract.Payment()
	if e.Commission != nil {
		total += e.Commission.Payment()
	}
	return total
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
