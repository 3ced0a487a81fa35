// Package generator provides lazy, resumable sequence generators: a
// unit of computation that produces values on demand, one at a time,
// suspending itself between values and resuming exactly where it
// left off.
//
// A generator is created with New, which binds a sequence body to a
// freshly allocated frame without running any of it. The consumer
// drives the sequence by calling Next, which resumes the body until
// it yields its next value or finishes, and reads each produced
// value with Value. The All method adapts the same protocol to
// range-over-func iteration. Sequences may be bounded or infinite;
// the consumer simply stops pulling.
//
// A generator owns exactly one frame and is single-consumer by
// design: it must not be shared across goroutines or advanced from
// two call sites. Ownership transfers with Move and ends with Stop,
// which releases the frame at any point in the lifecycle, unwinding
// a mid-stream body through its deferred calls.
//
// Frame memory comes from a pluggable Allocator. The default draws
// frames from a shared pool; Install swaps in a custom strategy such
// as a FixedAllocator, which serves frames from a pre-sized slot
// array and fails allocation rather than growing. Each frame is
// freed through the allocator it was created under, so live
// generators are unaffected by later Install or ResetDefault calls.
//
// Panics inside a sequence body do not crash the consumer: the body
// is unwound, the generator finishes, and the captured failure is
// reported by Err with the body-side stack trace attached.
package generator
