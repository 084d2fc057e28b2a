// Package engine is the top-level entrypoint: it turns a planned query
// into a cursor tree and drains it to completion, streaming result rows
// over a channel the way the teacher's query.Engine.Query does (spec §6.3,
// §12).
package engine

import (
	"context"
	"fmt"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/exec"
	"github.com/panda-sheep/memgraph/internal/tracing"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// Run executes p to completion against db, streaming result rows to resCh
// in batches of at most opts.ChunkSize rows. Run always closes resCh
// before returning, on success or failure.
func Run(ctx context.Context, p *plan.Plan, db accessor.GraphDbAccessor, params map[string]value.Value, opts RunOptions, resCh chan<- ResultChunk) error {
	defer close(resCh)

	span, ctx := opentracing.StartSpanFromContext(ctx, "engine.Run")
	defer span.Finish()
	start := time.Now()
	defer tracing.ObserveSpan(span, metrics.runDurationSeconds, start)

	columns := make([]string, len(p.Output))
	for i, s := range p.Output {
		columns[i] = s.Name
	}

	cursor := exec.MakeCursor(p.Root, &exec.Runtime{DB: db, Params: params})
	frame := symbol.NewFrame(p.Symbols)

	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	var pulls, rows int
	chunk := ResultChunk{Columns: columns}
	for {
		ok, err := cursor.Pull(ctx, frame)
		if err != nil {
			logrus.WithFields(logrus.Fields{"pulls": pulls, "rows": rows}).WithError(err).Error("engine: query failed")
			span.SetTag("error", true)
			return err
		}
		pulls++
		if !ok {
			break
		}
		rows++
		chunk.Values = append(chunk.Values, frame.Row(p.Output)...)
		if chunk.NumRows() >= chunkSize {
			resCh <- chunk
			chunk = ResultChunk{Columns: columns}
		}
	}
	if chunk.NumRows() > 0 || rows == 0 {
		resCh <- chunk
	}
	metrics.rowsEmittedTotal.Add(float64(rows))

	if opts.Debug && opts.DebugOut != nil {
		fmt.Fprintf(opts.DebugOut, "pulls=%d rows=%d\n", pulls, rows)
	}
	return nil
}
