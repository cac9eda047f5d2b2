// Package hashmap provides the open-addressing hash engine shared by the
// identifier table and the type interner.
//
// Every slot carries a one-byte sentinel. An active sentinel has its top
// bit clear and caches the low 7 bits of the entry's hash, so most probe
// mismatches are rejected without touching the entry. Empty sentinels stop
// a lookup; deleted sentinels (tombstones) are probed past on lookup and
// reclaimed on insertion. Probing is linear with a +1 wraparound advance;
// the modulo happens once, at the start of the probe sequence.
//
// IndexedSet stores values in a separate append-only slice and keeps only
// indices in the table, so indices handed out by Insert stay valid across
// every rehash. Map stores entries inline and supports deletion.
//
// The engine never fails: running out of room grows the table and retries.
// Absence is an ordinary (value, false) result.
package hashmap
