package models

import (
	"time"

	id "worktime/pkg/domain"
)

// Company is a tenant. All other data is scoped by its id.
type Company struct {
	ID        id.CompanyID
	Name      string
	Timezone  string
	CreatedAt time.Time
}

// Employee is a member of a company's workforce.
type Employee struct {
	ID        id.EmployeeID
	CompanyID id.CompanyID
	FullName  string
	ManagerID *id.EmployeeID
	HireDate  *id.Date
	IsActive  bool
	CreatedAt time.Time
}
