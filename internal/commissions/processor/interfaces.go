//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

package processor

import (
	"context"

	"dub-server/internal/store"

	"github.com/google/uuid"
)

// CommissionStore defines the database operations required by CommissionProcessor
type CommissionStore interface {
	GetProgramByID(ctx context.Context, programID uuid.UUID) (store.Program, error)
	GetRewardForEvent(ctx context.Context, programID uuid.UUID, event string) (store.Reward, error)
	GetProgramEnrollment(ctx context.Context, programID, partnerID uuid.UUID) (store.ProgramEnrollment, error)
	CreateCommission(ctx context.Context, params store.CreateCommissionParams) (store.Commission, error)
	ListCommissions(ctx context.Context, params store.ListCommissionsParams) ([]store.Commission, int, error)
	GetSaleCommissionsByInvoice(ctx context.Context, workspaceID uuid.UUID, invoiceID string) ([]store.Commission, error)
	CountCustomerSaleCommissions(ctx context.Context, programID, customerID uuid.UUID) (int, error)
	RefundCommission(ctx context.Context, commissionID uuid.UUID) (store.Commission, error)
}
