package bootstrap

import (
	"context"
	"fmt"

	"github.com/kizuna-dev/teambuilder/internal/constellation"
	"github.com/kizuna-dev/teambuilder/internal/logger"
)

// SyncConstellations loads, validates and writes the constellation seed.
// An unchanged file is skipped by hash unless force is set.
func SyncConstellations(ctx context.Context, svc constellation.Service, force bool) error {
	logger.Info(LogMsgSyncingConstellations, "force", force)

	result, err := svc.Sync(ctx, force)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncConstellations, err)
	}

	if result.Skipped {
		logger.Info(LogMsgConstellationsUnchanged)
		return nil
	}
	logger.Info(LogMsgConstellationsSynced,
		"constellations", result.Constellations,
		"characters", result.Characters)
	return nil
}
