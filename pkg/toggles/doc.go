/*
Package toggles holds the runtime switches that decide which trace categories are emitted.

The Registry is read on every emission, so changes made through Set, SetMaster or Apply take
effect on the next event without a restart. Initial values come from DefaultToggles, a YAML
file (LoadFile), DEBUG_* environment variables (ApplyEnv), or a polled Source (Watch).
*/
package toggles
