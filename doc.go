// Package pacer provides debounce and throttle wrappers that limit how often
// a function runs in response to repeated triggers.
//
// # Key Concepts
//
//   - [Debouncer] defers its action until calls have stopped for a quiet
//     period, then runs it once with the arguments of the last call.
//   - [Throttler] runs its action immediately on the first call and drops
//     every call that arrives within the following window.
//   - [Option] values inject a clock, drop/supersede hooks and a logger.
//
// Both wrappers are generic over the argument type forwarded to the action.
// Use a struct when the action needs several values, or struct{} for none.
//
// # Quick Start
//
//	d, err := pacer.Debounce(func(q string) {
//		search(q)
//	}, 300*time.Millisecond)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer d.Stop()
//
//	d.Call("g")
//	d.Call("go")
//	d.Call("gopher") // search("gopher") runs 300ms from now
//
// The persistent key-value helpers live in package store.
package pacer
