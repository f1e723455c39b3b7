// Package kokoro provides incremental sentence boundary detection for
// streaming text, such as LLM output feeding a text-to-speech pipeline.
//
// # Quick Start
//
//	s := kokoro.New(func(sentence string) {
//	    fmt.Println(sentence)
//	})
//	s.Push("Dr. Smith is here. At 10 a.m.")
//	s.Push(" I saw him.")
//	s.Close()
//
// Each completed sentence is delivered to the callback as soon as enough
// lookahead exists to prove the boundary, and Close flushes whatever
// remains. Output is byte-identical no matter how the input is chunked,
// down to one character at a time.
//
// For batch input there is a convenience function:
//
//	sentences := kokoro.Split("This is a test. This is another test.")
//
// # Thread Safety
//
// A Splitter is not safe for concurrent use. It assumes a single producer
// calling Push and finally Close; callbacks run synchronously on that
// caller's goroutine, preserving emission order.
package kokoro
