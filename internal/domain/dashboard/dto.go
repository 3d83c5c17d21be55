package dashboard

import "github.com/shopspring/decimal"

type DashboardResponse struct {
	Employees     EmployeeStats   `json:"employees"`
	TempEmployees EmployeeStats   `json:"temp_employees"`
	Branches      int             `json:"branches"`
	Vehicles      VehicleStats    `json:"vehicles"`
	Vacations     VacationStats   `json:"vacations"`
	Documents     DocumentStats   `json:"documents"`
	MonthSpend    decimal.Decimal `json:"month_spend"`
	SpendByBranch []BranchSpend   `json:"spend_by_branch"`
}

type EmployeeStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type VehicleStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Maintenance int `json:"maintenance"`
	Retired     int `json:"retired"`
}

type VacationStats struct {
	Ongoing   int `json:"ongoing"`
	Scheduled int `json:"scheduled"`
}

type DocumentStats struct {
	Tracked  int `json:"tracked"`
	Expired  int `json:"expired"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
}

type BranchSpend struct {
	BranchID   string          `json:"branch_id"`
	BranchName string          `json:"branch_name"`
	Amount     decimal.Decimal `json:"amount"`
}
