package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Employee struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name,omitempty"`
	LastName    string             `json:"last_name" bson:"last_name,omitempty"`
	Email       string             `json:"email" bson:"email,omitempty"`
	Password    string             `json:"password,omitempty" bson:"password,omitempty"`
	Role        string             `json:"role" bson:"role,omitempty"`
	Position    string             `json:"position" bson:"position,omitempty"`
	Department  string             `json:"department" bson:"department,omitempty"`
	Manager     string             `json:"manager" bson:"manager,omitempty"`
	JobTitle    string             `json:"job_title" bson:"job_title,omitempty"`
	JobCategory string             `json:"job_category" bson:"job_category,omitempty"`
	Salary      float64            `json:"salary" bson:"salary,omitempty"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type EmployeeRegisterPayload struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	LastName    string  `json:"last_name" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Position    string  `json:"position" validate:"required,oneof=Intern Junior Mid-Level Senior Lead Supervisor Manager Director VP CTO CFO CEO Developer"`
	Department  string  `json:"department" validate:"required"`
	Manager     string  `json:"manager" validate:"required"`
	JobTitle    string  `json:"job_title" validate:"required"`
	JobCategory string  `json:"job_category" validate:"required"`
	Salary      float64 `json:"salary" validate:"required,min=0"`
}

type EmployeeLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type EmployeeUpdatePayload struct {
	Name        string  `json:"name,omitempty"`
	LastName    string  `json:"last_name,omitempty"`
	Position    string  `json:"position,omitempty" validate:"omitempty,oneof=Intern Junior Mid-Level Senior Lead Supervisor Manager Director VP CTO CFO CEO Developer"`
	Department  string  `json:"department,omitempty"`
	Manager     string  `json:"manager,omitempty"`
	JobTitle    string  `json:"job_title,omitempty"`
	JobCategory string  `json:"job_category,omitempty"`
	Salary      float64 `json:"salary,omitempty" validate:"omitempty,min=0"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=50,hasuppercase"`
}
