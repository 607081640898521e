/*
Package turing simulates a fixed Turing machine that performs unary addition.

Two operands are written on a tape as runs of '1' separated by '+'. A deterministic
six-rule transition function runs until the machine halts or a step ceiling is
reached, and every executed step is recorded as a pre-transition snapshot.

# Concept

The engine is pure: each run builds its own tape, head and trace and returns them as
a domain.Result. Drivers (the CLI, the JSON stdio handler, the HTTP and MCP adapters)
only supply operands and render the result, so they can run concurrently without
coordination.

# Halting

A run ends in one of three ways, reported by Result.Status:

  - accepted: the machine entered q5.
  - undefined_transition: no rule matched; this is a normal halt (for example b = 0).
  - non_convergent: the step ceiling was reached. Result.Err returns ErrNonConvergent.

# Usage

	eng := turing.New()

	res, err := eng.RunStrings(context.Background(), "111", "11")
	if err != nil {
		log.Fatal(err) // invalid operand
	}
	if err := res.Err(); err != nil {
		log.Fatal(err) // ceiling exhausted
	}
	fmt.Println(res.FinalTape, res.Sum) // 111+11 5
*/
package turing
