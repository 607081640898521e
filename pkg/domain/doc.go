/*
Package domain contains the core domain models of the unary-addition Turing machine.

It defines the alphabet, the closed set of machine states, transition rules, the
execution trace and the run result. This package is kept pure and free of I/O,
following the same Hexagonal layout as the rest of the module: the engine in
internal/runtime mutates a tape, and everything it reports crosses the boundary as
the immutable values declared here.

# Key Entities

  - Symbol: one of '1', '+' or '_' (blank).
  - StateID: q0..q5, with q0 initial and q5 accepting (q1 is reserved and unreachable).
  - Rule: a single (state, symbol) -> (state, symbol, direction) mapping.
  - TraceEntry: a pre-transition snapshot captured at every executed step.
  - Result: the initial tape, the trace, the final tape, the step count and how the run ended.
  - Operand: a validated unary string.
*/
package domain
