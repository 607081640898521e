/*
Package ports defines the driven ports (interfaces) of the turing engine.

These interfaces decouple the engine facade from external implementations, allowing
results to be cached in memory or in Redis and the engine to be served over HTTP or
MCP without those adapters depending on the runtime internals.

# Key Interfaces

  - ResultStore: persists completed run results keyed by operand pair and ceiling.
  - Simulator: the engine surface consumed by transport adapters.
*/
package ports
