package roost

// Version is the SDK release, overridable at build time with
// -ldflags "-X github.com/roost-chat/roost.Version=...".
var Version = "0.1.0"
