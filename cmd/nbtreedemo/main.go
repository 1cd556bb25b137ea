// Command nbtreedemo drives a nbtree.Tree with a configurable number of
// concurrent tasks, each performing an insert/delete/find/insert sequence
// against a random key, then, when -out names a file, writes the tree's
// final shape to it as a DOT graph.
// It exists to exercise the tree under load and to visually inspect the
// result; it is not part of the nbtree package's API surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sync/atomic"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/lockfree/nbtree/nbtree"
	nbtreelog "github.com/lockfree/nbtree/nbtree/logging"
)

const (
	minSentinel = 1<<31 - 2
	maxSentinel = 1<<31 - 1
)

func main() {
	numTasks := flag.Int("tasks", 1000, "number of tasks to execute; each performs 2 inserts, 1 find and 1 delete")
	numWorkers := flag.Int("workers", 8, "number of goroutines used to run the tasks concurrently")
	maxValue := flag.Int("max", 10000, "maximum key value; tasks pick uniformly from [0, max]")
	outFile := flag.String("out", "", "file to write the tree's final DOT graph to; empty skips the printout")
	verbose := flag.Bool("v", false, "log every operation at debug level")
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if !*verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	if err := run(logger, *numTasks, *numWorkers, *maxValue, *outFile); err != nil {
		level.Error(logger).Log("msg", "run failed", "err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger, numTasks, numWorkers, maxValue int, outFile string) error {
	tree, err := nbtree.New(minSentinel, maxSentinel)
	if err != nil {
		return fmt.Errorf("nbtreedemo: %w", err)
	}
	set := nbtreelog.New[int](tree, logger)

	level.Info(logger).Log("msg", "running workload", "tasks", numTasks, "workers", numWorkers, "max", maxValue)
	start := time.Now()

	var nextTaskID atomic.Int64
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(numWorkers)
	for i := 0; i < numTasks; i++ {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return runTask(set, int(nextTaskID.Add(1)), maxValue)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("nbtreedemo: workload: %w", err)
	}

	level.Info(logger).Log(
		"msg", "workload complete",
		"elapsed", time.Since(start),
		"operations", 4*numTasks,
		"size", set.Size(),
	)

	if outFile == "" {
		return nil
	}
	level.Info(logger).Log("msg", "writing tree printout", "file", outFile)
	if err := os.WriteFile(outFile, []byte(tree.DotGraph()), 0o644); err != nil {
		return fmt.Errorf("nbtreedemo: write dot graph: %w", err)
	}
	return nil
}

// runTask performs the fixed insert/delete/find/insert sequence the
// algorithm's original stress-test harness used per task, against a
// uniformly random key in [0, maxValue].
func runTask(set nbtree.Set[int], id, maxValue int) error {
	v := rand.Intn(maxValue + 1)

	if _, err := set.Insert(v); err != nil {
		return fmt.Errorf("task %d: insert(%d): %w", id, v, err)
	}
	if _, err := set.Delete(v); err != nil {
		return fmt.Errorf("task %d: delete(%d): %w", id, v, err)
	}
	if _, err := set.Contains(v); err != nil {
		return fmt.Errorf("task %d: contains(%d): %w", id, v, err)
	}
	if _, err := set.Insert(v); err != nil {
		return fmt.Errorf("task %d: insert(%d): %w", id, v, err)
	}
	return nil
}
