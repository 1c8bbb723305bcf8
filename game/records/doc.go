// Package records stores one row per solved round in SQLite.
//
// The store backs the records listing of the HTTP and MCP surfaces. The server
// opens it with MemoryDSN, so records last as long as the process does.
package records
