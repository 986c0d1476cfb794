package jobs

import (
	"context"
	"fmt"
	"time"

	"handmeup-backend/internal/logger"
)

// SendPendingRequestDigest emails each owner who has rental requests
// still waiting for a decision.
func (jr *JobRunner) SendPendingRequestDigest() {
	jr.runWithRecovery("SendPendingRequestDigest", func() {
		ctx := context.Background()

		query := `
			SELECT r.owner_id, a.email, COALESCE(p.display_name, ''), COUNT(*)
			FROM rentals r
			JOIN accounts a ON a.id = r.owner_id
			LEFT JOIN user_profiles p ON p.user_id = r.owner_id
			WHERE r.status = 'pending'
			GROUP BY r.owner_id, a.email, p.display_name
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to load pending request digest", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var ownerID, email, name string
			var pending int
			if err := rows.Scan(&ownerID, &email, &name, &pending); err != nil {
				logger.Error("Failed to scan digest row", "error", err)
				continue
			}
			if err := jr.services.Email.SendPendingRequestDigest(ctx, email, name, pending); err != nil {
				logger.Error("Failed to send pending request digest", "owner_id", ownerID, "error", err)
				continue
			}
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating digest rows", "error", err)
			return
		}

		logger.Info("Sent pending request digests", "count", count)
	})
}

// CleanupOrphanImages deletes storage objects for items whose upload was
// never confirmed within the cutoff window.
func (jr *JobRunner) CleanupOrphanImages() {
	jr.runWithRecovery("CleanupOrphanImages", func() {
		ctx := context.Background()

		cutoff := time.Now().UTC().Add(-48 * time.Hour)
		query := `SELECT id FROM clothing WHERE image_url = '' AND created_on < $1`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to load orphan image candidates", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var itemID int64
			if err := rows.Scan(&itemID); err != nil {
				logger.Error("Failed to scan orphan candidate", "error", err)
				continue
			}

			// Upload keys carry whichever extension the client declared,
			// so every issued extension has to be checked.
			for _, ext := range []string{"jpg", "png", "webp"} {
				key := fmt.Sprintf("clothing/%d.%s", itemID, ext)
				exists, _, err := jr.services.Storage.FileExists(ctx, key)
				if err != nil || !exists {
					continue
				}
				if err := jr.services.Storage.DeleteFile(ctx, key); err != nil {
					logger.Error("Failed to delete orphan image", "item_id", itemID, "key", key, "error", err)
					continue
				}
				count++
				logger.Debug("Deleted orphan image", "item_id", itemID, "key", key)
			}
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating orphan candidates", "error", err)
			return
		}

		logger.Info("Cleaned up orphan images", "count", count)
	})
}
