package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PayrollStatusPending = "Pending"
	PayrollStatusPaid    = "Paid"
)

type PayrollEarnings struct {
	BasicWage          float64 `json:"basic_wage" bson:"basic_wage"`
	HouseRentAllowance float64 `json:"house_rent_allowance" bson:"house_rent_allowance"`
	Overtime           float64 `json:"overtime" bson:"overtime"`
	Gratuity           float64 `json:"gratuity" bson:"gratuity"`
	SpecialAllowance   float64 `json:"special_allowance" bson:"special_allowance"`
	PFEmployer         float64 `json:"pf_employer" bson:"pf_employer"`
	ESIEmployer        float64 `json:"esi_employer" bson:"esi_employer"`
}

type PayrollDeductions struct {
	PFEmployee      float64 `json:"pf_employee" bson:"pf_employee"`
	ESIEmployee     float64 `json:"esi_employee" bson:"esi_employee"`
	Tax             float64 `json:"tax" bson:"tax"`
	OtherDeductions float64 `json:"other_deductions" bson:"other_deductions"`
}

func (e PayrollEarnings) Total() float64 {
	return e.BasicWage + e.HouseRentAllowance + e.Overtime + e.Gratuity +
		e.SpecialAllowance + e.PFEmployer + e.ESIEmployer
}

func (d PayrollDeductions) Total() float64 {
	return d.PFEmployee + d.ESIEmployee + d.Tax + d.OtherDeductions
}

type Payroll struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID   primitive.ObjectID `json:"employee_id" bson:"employee_id"`
	Reference    string             `json:"reference" bson:"reference"`
	Month        string             `json:"month" bson:"month"`
	Year         int                `json:"year" bson:"year"`
	BasicSalary  float64            `json:"basic_salary" bson:"basic_salary"`
	Earnings     PayrollEarnings    `json:"earnings" bson:"earnings"`
	Deductions   PayrollDeductions  `json:"deductions" bson:"deductions"`
	CTC          float64            `json:"ctc" bson:"ctc"`
	InHandSalary float64            `json:"in_hand_salary" bson:"in_hand_salary"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// NewDefaultPayroll membuat record payroll awal untuk karyawan baru:
// gaji pokok terisi, komponen lain nol, status Pending.
func NewDefaultPayroll(employeeID primitive.ObjectID, salary float64, now time.Time) *Payroll {
	return &Payroll{
		ID:          primitive.NewObjectID(),
		EmployeeID:  employeeID,
		Reference:   uuid.New().String(),
		Month:       now.Month().String(),
		Year:        now.Year(),
		BasicSalary: salary,
		Earnings: PayrollEarnings{
			BasicWage: salary,
		},
		Status:    PayrollStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type PayrollUpdatePayload struct {
	Earnings   *PayrollEarnings   `json:"earnings,omitempty"`
	Deductions *PayrollDeductions `json:"deductions,omitempty"`
	Status     string             `json:"status,omitempty" validate:"omitempty,oneof=Pending Paid"`
}
