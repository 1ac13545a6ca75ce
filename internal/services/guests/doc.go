// Package guests manages the patron's frequent guests and the selection of
// guests that check in together with the patron.
package guests
