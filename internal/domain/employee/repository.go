package employee

import "context"

// Repository reads employee snapshots. The engine never writes employees.
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Employee, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Employee, error)
	// ListByCompany returns every employee of the company, active or not;
	// the targeting pipeline applies the activity filter itself so the
	// per-stage diagnostics can report how many were dropped there.
	ListByCompany(ctx context.Context, companyID uint) ([]*Employee, error)
}
