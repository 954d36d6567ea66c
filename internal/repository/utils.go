package repository

import (
	"context"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// committed transactions report closed; not worth logging
		if err.Error() != domain.ErrMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
