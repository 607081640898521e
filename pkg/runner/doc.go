/*
Package runner implements the drivers that sit between callers and the turing engine.

Drivers never narrate from inside the engine: they supply operands, receive a
domain.Result and then format or forward it.

# Key Components

  - JSONHandler: reads one {"a","b","speed_ms"} request and writes the result (or an
    {"error","message"} object) as JSON, returning a process exit code.
  - FormatReport / FormatMarkdown: pure formatters for a single run.
  - FormatTable: the state list and transition function.
  - SelfCheck: the fixed battery of six additions with a pass/fail report.

# Usage

	eng := turing.New()
	h := runner.NewJSONHandler(os.Stdin, os.Stdout)
	os.Exit(h.Handle(ctx, eng))
*/
package runner
