// Package harness runs conformance scenarios against the sequ engine.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	request:
//	  notation: arabic
//	  start: "1"
//	  end: "5"
//	  increment: "1"
//	  separator: ","
//	  width: none        # none | equal | pad
//	  pad: "*"
//	  format: "%.2f"
//	  number_lines: false
//	input: |
//	  lines to number
//	expect:
//	  output: "1,2,3,4,5,\n"
//	  error: ""          # error code, e.g. ZERO_INCREMENT
//	  items: 5
//	  unnumbered: 0
//	golden: true         # also compare output with testdata/golden/<name>.golden
//
// Unknown fields are rejected, so a misspelled expectation fails loudly
// instead of passing vacuously.
//
// Every scenario runs against a fresh in-memory history store, and the
// harness checks that the recorded history entry agrees with the outcome.
package harness
