// Package commands defines the nocheckin CLI and wires dependencies for subcommands.
//
// Commands
//
//   - scan       Resolve a scanned venue code and check in
//   - enter      Resolve a typed 6-digit short code and check in
//   - venue      Add a venue by name, list user-entered venues
//   - checkin    Check in to a venue by name
//   - last       Show the last check-in
//   - history    List past check-ins
//   - settings   Show or change the patron profile and region
//   - guests     Add or list frequent guests
//   - cert       Show a vaccination certificate
//   - reset      Erase all stored state
//   - dataset    Import a venue spreadsheet, list dataset regions
//
// # Implementation
//
// The root command loads config.yml, opens the state store and builds the
// service graph for the patron's region before any subcommand runs. The graph
// is closed after the command returns, which also writes the metrics textfile
// when one is configured.
package commands
