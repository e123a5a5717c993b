// Package session holds the client-side state of the chat session: the
// conversation list, the active conversation, the transcript of the active
// conversation, the busy flag and the last error.
//
// [Store] is the single mutation surface. Every named mutator applies its
// change atomically and publishes a fresh [Snapshot] to subscribers; readers
// never see partially applied updates.
package session
