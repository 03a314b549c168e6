// Package sequence walks a bounded range in any notation.
//
// A Generator is built from a validated ir.Request. It resolves the literal
// bounds once and then hands out lazy iter.Seq values that can be ranged
// over as many times as needed; every pass recomputes the same items.
// Width equalization relies on that: one pass measures, the next prints.
//
// Two walks are offered:
//   - Values: start to end inclusive, stepping by the increment.
//   - Number: exactly n items for line numbering, ignoring end. Bounded
//     notations (alpha, roman) that run past their domain yield items with
//     Valid=false for the rest of the run.
package sequence
