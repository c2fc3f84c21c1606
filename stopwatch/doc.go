// Package stopwatch implements the three-state manual stopwatch and its
// elapsed-time rendering.
//
// # Cycle
//
//	NotStarted --Advance--> Running --Advance--> Done --Advance--> NotStarted
//
// Each state carries only its own payload: Running holds the start instant,
// Done holds the display captured at stop. Restarting always measures from
// the newest start; nothing accumulates across cycles.
//
// # Display format
//
// Format renders "m:s:split" with no zero padding and no hour field, so
// 65.34s shows as "1:5:34" and 5ms shows as "0:0:0".
package stopwatch
