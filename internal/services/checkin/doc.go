// Package checkin records check-ins and describes the most recent one.
//
// The last check-in is kept as a venue name and a unix timestamp so the home
// screen can say how long ago it happened. Every check-in is also appended to
// a history with a random identifier.
package checkin
