package main

import (
	"fmt"
	"io"
	"time"

	"cvet/internal/pipeline"
)

func printStageTimings(out io.Writer, path string, timings *pipeline.Timings) {
	if out == nil || timings == nil {
		return
	}
	fmt.Fprintf(out, "%s: lex %.1f ms, parse %.1f ms, rules %.1f ms, report %.1f ms (total %.1f ms)\n",
		path,
		toMillis(timings.Duration(pipeline.StageLex)),
		toMillis(timings.Duration(pipeline.StageParse)),
		toMillis(timings.Duration(pipeline.StageRules)),
		toMillis(timings.Duration(pipeline.StageReport)),
		toMillis(timings.Total()),
	)
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
