/*
Package sink writes rendered trace lines to the console and to a per-process log file.

The File is opened lazily on the first write under <anchor>/logs/debug_<YYYYMMDD>_<HHMMSS>.log
and reused until Close. Any failure to create or write it degrades the Sink to console-only
output; the emitting caller never sees the error.

Sink.WriteBlock holds a single lock while writing one event to both destinations, so the lines
of an event are never interleaved with another goroutine's lines.
*/
package sink
