// Package engine runs one sequence request end to end.
//
// Control flow:
//
//	Request -> sequence.New -> render.WriteSequence            (range mode)
//	Request -> read input -> sequence.New -> render.NumberLines (number-lines mode)
//
// Each run gets an ID from a RunIDGenerator. The ID tags every log record
// and, when a Recorder is configured, the history entry written after the
// run finishes, whether it succeeded or not.
//
// The engine is synchronous and single-threaded. Output already written
// when a run fails is left in place.
package engine
