package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawmart/pawmart/internal/notify"
	domain "github.com/pawmart/pawmart/pkg/types"
)

const batchThreshold = 5

// ProcessAlerts announces fresh listings. Five or more go out as a single
// batch message, fewer are sent one by one. A failed single alert does not
// stop the others.
func ProcessAlerts(
	ctx context.Context,
	a notify.ListingAlerter,
	scope string,
	fresh []domain.Listing,
) error {
	if len(fresh) == 0 {
		return nil
	}

	if len(fresh) >= batchThreshold {
		if err := a.SendBatch(ctx, fresh, scope); err != nil {
			return fmt.Errorf("sending batch alert: %w", err)
		}
		return nil
	}

	var errs []error
	for i := range fresh {
		if err := a.SendListing(ctx, &fresh[i]); err != nil {
			errs = append(errs, fmt.Errorf("sending alert for %s: %w", fresh[i].ID, err))
		}
	}
	return errors.Join(errs...)
}
