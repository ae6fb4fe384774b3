// Package harness runs declarative conformance scenarios against the type core.
//
// A scenario declares classes, names a set of types by their attribute
// records (the same records package record encodes), and lists checks to
// evaluate in order. Relations go through an oracle.Oracle so that scenario
// runs exercise the memo and the result cache exactly as the CLI does.
//
// # Scenario Format
//
// Scenarios are YAML (decoded strictly, so a misspelled field is an error)
// or CUE files with the same shape:
//
//	name: object_lattice
//	description: "Unknown-object types against named classes"
//	run_token: "test-run-lattice"
//	classes:
//	  - name: Foo
//	  - name: Bar
//	    parents: [Foo]
//	types:
//	  object: { kind: object_without_class }
//	  foo:    { kind: object, class: Foo }
//	checks:
//	  - relation: super
//	    left: object
//	    right: foo
//	    expect: yes
//
// # Check Relations
//
//   - super, sub, accepts: trinary relation through the oracle (accepts
//     honors strict)
//   - equals: structural identity, yes or no
//   - variance: whether right may replace left at the named variance
//   - subtract: left minus right, compared with expect_type
//   - infer: left is a template, right the received type, compared with
//     expect_map (template name to type name)
//   - describe: left rendered at level, compared with expect
//   - argument: left converted to an argument, rendered precisely and
//     followed by its variance, compared with expect
//
// # Deterministic Testing
//
// Every run uses a fixed run token (scenario.run_token, or
// testutil.DefaultRunToken) and deterministic clocks, so traces are
// byte-identical across runs and can be compared with golden files.
package harness
