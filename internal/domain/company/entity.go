package company

type Company struct {
	ID       string
	Name     string
	IsActive bool
}
