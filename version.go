package nodetrace

// Version is the released version of nodetrace.
const Version = "0.3.0"
