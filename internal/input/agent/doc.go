// Package agent resolves input events to interactive targets.
//
// An Agent owns an ordered list of Grabber candidates and at most one
// grabbed target. Each incoming event is routed to the grabbed target
// when one exists, re-resolved by hit-testing the candidates in
// registration order otherwise, and handed to an optional default
// grabber as a last resort. Events that resolve to nothing are dropped
// silently.
package agent
