package fines

import (
	"context"
	"library/pkg/domain"
)

//go:generate mockgen -package mockfines -source=interface.go -destination=mock/mockfines.go *
type Reconciler interface {
	// Reconcile brings the user's overdue loans and their fines up to date:
	// every unreturned loan past its due date is marked OVERDUE and carries a
	// PENDING fine of DailyRate per started day. PAID fines are left alone.
	Reconcile(ctx context.Context, userID domain.UserID) error
}
