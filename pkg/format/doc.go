/*
Package format renders trace events into lines of text.

Every function is pure: given the same inputs (including the timestamp) it returns the same
lines. Multi-line events are framed by a separator of 70 '=' characters.
*/
package format
