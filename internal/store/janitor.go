package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunJanitor prunes sessions idle for longer than ttl every interval until
// ctx is cancelled.
func RunJanitor(ctx context.Context, st Store, interval, ttl time.Duration) {
	if interval <= 0 || ttl <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := st.Prune(ctx, now.Add(-ttl))
			if err != nil {
				log.Warn().Err(err).Msg("prune sessions")
				continue
			}
			if n > 0 {
				log.Info().Int("pruned", n).Msg("pruned idle sessions")
			}
		}
	}
}
