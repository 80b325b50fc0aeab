/*
Package command defines application commands: the slash, user and message
commands a bot registers with the platform, together with their typed
options and choices.

A Registry holds the commands of one application and produces the bulk
registration payloads the platform expects. Invocation routing lives in
pkg/dispatch.
*/
package command
