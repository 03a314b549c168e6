// Package ir defines the validated request and the structured errors shared
// by every stage of sequ.
//
// A Request is produced once by the command layer (or a test harness) and
// passed by value into the core. The core packages (numeral, sequence,
// render) read it but never write it, and none of them hold global state.
package ir
