/*
Package domain contains the core types shared by every nodetrace component.

It defines trace categories and their toggles, the transient trace events produced around node
executions, correlation identifiers and the read-only inputs consumed by the emitters (state
snapshots and tool invocation records). The package is kept free of I/O.

# Key Entities

  - Category: An independently toggled class of trace output (node start, node end, ...).
  - ToggleSet: The master switch plus one switch per Category.
  - Event: One rendered trace event (start, end, log, state summary, tool batch).
  - CorrelationID: Opaque identifier linking events of one logical run.
  - HasSuccessor: Optional capability of node results that name the next node.
*/
package domain
