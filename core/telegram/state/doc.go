// Package state tracks in-progress multi-step conversations for Telegram
// bots. A session is an explicit {flow, step, accumulated fields} record per
// user, looked up by the router on every inbound message. It is intentionally
// domain-agnostic so it can be reused across bots.
package state
