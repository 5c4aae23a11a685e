// Package pipeline executes the audit stages in sequence: fetch,
// collect, analyze, score, recommend. Each stage is a Step that
// receives the accumulated report and fills in its section.
//
// Design decision: We use a pipeline pattern instead of direct function
// calls because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context for slow targets
//
// Only the fetch step may fail the pipeline; every later stage degrades
// to documented defaults on missing data and returns nil.
package pipeline
