// Package store defines the [Store] interface for string-keyed, string-valued
// persistent storage and the typed helpers [Save], [Load] and [Remove] that
// serialize values to JSON at its boundary.
//
// Three implementations live here:
//
//   - [MemoryStore]: a map that is lost on restart.
//   - [SQLiteStore]: a persistent table in a SQLite database.
//   - [TieredStore]: a memory cache in front of a persistent backend.
//
// Redis and PostgreSQL backends are separate modules under store/redis and
// store/postgres. Custom backends can be created by implementing [Store].
package store
