// Package store provides persistence for dimcalc registers.
//
// RegisterFileStore serialises all registers into one JSON file under the
// configured home directory, guarded by a BLAKE2b-256 checksum so that hand
// edits or truncated writes are reported instead of silently loaded. Writes
// go through a temp file and rename. All methods are concurrency-safe via
// internal locking.
//
// MemoryStore implements the same contract without touching disk.
package store
