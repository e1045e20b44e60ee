// Package pattern parses numeric range patterns such as "web[01:99]" and
// allocates fresh names from them.
//
// A pattern is a literal prefix followed by an inclusive id range in
// brackets. The zero-padding width is fixed by the lower bound as written:
// "web[007:099]" pads every id to three digits. Allocation continues the
// sequence after the highest id already in use, so freshly minted names
// never collide with conforming ones.
package pattern
