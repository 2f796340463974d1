// Package application wires the configuration, logger and output stream
// together and runs the entry routine, keeping the main package focused on
// CLI parsing and bootstrap.
package application
