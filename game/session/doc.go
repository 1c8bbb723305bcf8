// Package session provides in-memory session management for the puzzle server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session cleanup and expiration
//
// Each session owns its own engine and therefore its own board. Sessions are
// never written to disk; restarting the server starts from an empty table.
//
// Session Identifiers:
//
// Generated IDs are 4 hex characters from crypto/rand. Callers may also pick
// their own ID (letters, digits, dash and underscore, up to 32 characters).
// Lookups are case-insensitive.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//	sessions := manager.List()
package session
