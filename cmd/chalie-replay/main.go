// Command chalie-replay
//
// Replays a thread's stored message ledger through a fresh boundary
// detector and compares the replayed decisions against the recorded ones.
// Embeddings are not persisted, so the drift layer runs on deterministic
// feature-hashed pseudo-embeddings of the normalized text; the recorded
// best similarity drives the surprise layer unchanged. Useful for tuning
// detector parameters against real conversations.
package main

import (
	"context"
	"flag"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"strings"
	"time"

	"chalie/internal/modkit"
	"chalie/internal/modkit/module"
	"chalie/internal/platform/config"
	"chalie/internal/platform/logger"
	"chalie/internal/platform/store"

	core "chalie/internal/core/boundary"
	msgdom "chalie/internal/services/messages/domain"
	messagesmod "chalie/internal/services/messages/module"
)

// hashEmbed maps normalized text onto a fixed-dimension vector by feature
// hashing its tokens. Deterministic across runs; the detector normalizes it
func hashEmbed(text string, dim int) []float64 {
	vec := make([]float64, dim)
	for _, tok := range strings.Fields(text) {
		h := fnv.New64a()
		_, _ = h.Write([]byte(tok))
		sum := h.Sum64()
		idx := int(sum % uint64(dim))
		if sum&(1<<63) != 0 {
			vec[idx] -= 1
		} else {
			vec[idx] += 1
		}
	}
	return vec
}

func main() {
	var (
		thread       = flag.String("thread", "", "thread id to replay (required)")
		dim          = flag.Int("dim", 64, "pseudo-embedding dimensionality")
		page         = flag.Int("page", 500, "ledger page size")
		fastWindow   = flag.Int("fast-window", 0, "fast EWMA window override (0 uses the default)")
		slowWindow   = flag.Int("slow-window", 0, "slow EWMA window override (0 uses the default)")
		leakRate     = flag.Float64("leak-rate", 0, "accumulator leak rate override (0 uses the default)")
		boundaryBase = flag.Float64("boundary-base", 0, "boundary base override (0 uses the default)")
		verbose      = flag.Bool("v", false, "print every decision, not just disagreements")
	)
	flag.Parse()

	if *thread == "" {
		log.Fatal("-thread is required")
	}
	if *dim < 2 {
		log.Fatal("-dim must be at least 2")
	}

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "chalie",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{
		Log: *l,
		Cfg: root,
		PG:  st.PG,
	}

	msgs := messagesmod.New(deps)
	reader := module.MustPortsOf[messagesmod.Ports](msgs).Reader

	params := core.Params{
		FastWindow:   *fastWindow,
		SlowWindow:   *slowWindow,
		LeakRate:     *leakRate,
		BoundaryBase: *boundaryBase,
	}

	state := core.NewState()
	var after msgdom.AfterKey
	seq, agree, storedFired, replayFired := 0, 0, 0, 0

	for {
		rows, next, err := reader.List(context.Background(), msgdom.ListInput{
			ThreadID: *thread,
			After:    after,
			Limit:    *page,
		})
		if err != nil {
			l.Fatal().Err(err).Msg("ledger read failed")
		}
		if len(rows) == 0 {
			break
		}

		for _, row := range rows {
			seq++
			det := core.New(params, state)
			res := det.Update(hashEmbed(row.TextNorm, *dim), row.BestSimilarity)
			state = det.State()

			if row.IsBoundary {
				storedFired++
			}
			if res.IsBoundary {
				replayFired++
			}
			match := res.IsBoundary == row.IsBoundary
			if match {
				agree++
			}
			if *verbose || !match {
				fmt.Printf("%5d  %s  stored=%-5t replay=%-5t acc=%.3f bound=%.3f conf=%.3f\n",
					seq, row.CreatedAt.UTC().Format(time.RFC3339),
					row.IsBoundary, res.IsBoundary,
					res.Accumulator, res.Boundary, res.Confidence)
			}
		}
		after = next
	}

	if seq == 0 {
		fmt.Fprintf(os.Stderr, "no messages for thread %s\n", *thread)
		os.Exit(1)
	}
	fmt.Printf("replayed %d messages: stored %d boundaries, replay %d, agreement %d/%d (%.1f%%)\n",
		seq, storedFired, replayFired, agree, seq, 100*float64(agree)/float64(seq))
}
