// Package async turns synchronous or asynchronous work into a pending
// result with a bounded wait.
//
// A Promise settles exactly once. Countdown mirrors a promise's outcome
// unless a deadline passes first, and SafeAsync coerces plain values,
// funcs and awaitables into one promise:
//
//	p := async.SafeAsync(fetch, 2*time.Second, "key")
//	v, err := p.Await(ctx) // err is a TIMEOUT AppError after two seconds
//
// Timing out only stops the wrapper from waiting. The wrapped work keeps
// running and its late outcome is discarded.
package async
