// Package nbtree implements the non-blocking external binary search tree of
// Ellen, Fatourou, Ruppert and van Breugel ("Non-blocking Binary Search
// Trees", PODC 2010).
//
// The tree stores an ordered set of comparable keys. User keys live only in
// leaves; internal nodes hold routing keys and a pair of atomically
// updatable children. Every internal node also carries a stamped
// (state, descriptor) pair that publishes an in-flight insert or delete to
// every other goroutine, so that any goroutine that stumbles across it can
// finish the operation on the original caller's behalf. That cooperative
// "help" protocol is what makes Insert and Delete lock-free: some goroutine
// is always completing an operation, even if the goroutine that started it
// is descheduled forever.
//
// Contains and the snapshot iterator never write to the tree and are
// wait-free. Insert and Delete retry under contention but are lock-free.
package nbtree
