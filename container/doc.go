// Package container provides the two collections everything in karte is
// built from: a growable sequence ([Vector]) and a string-keyed open
// addressing hash table ([Hashmap]).
//
// Both are deliberately unsynchronized. Karte runs a single-threaded frame
// loop, and internal locking would tax the only consumer these types have.
// Callers sharing an instance across goroutines must provide their own
// mutual exclusion.
package container
