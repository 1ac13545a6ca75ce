// Package app wires application dependencies for the CLI.
//
// It loads Config, opens the state store, picks the venue dataset, narrows it
// to the patron's region and builds the services commands use.
package app
