// Ntfy is a command-line client for ntfy-compatible push-notification servers.
//
// It sends a message to a topic with a single HTTP request. The message comes
// from stdin when piped, otherwise from the positional arguments. Server URL,
// topic and method resolve from flags, NTFY_* environment variables, a
// KEY=VALUE config file and built-in defaults, in that order.
//
// Usage:
//
//	ntfy "backup finished"                  # publish to the default topic
//	echo "disk almost full" | ntfy -p high  # message from stdin
//	ntfy -t alerts -T "prod" "it is down"   # one-shot topic and title
//	ntfy config set topic deploys           # persist a default
//	ntfy config get url                     # show an effective value
//
// Exit codes: 0 delivered, 1 usage error, 2 delivery failure.
package main
