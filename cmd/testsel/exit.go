package main

// Process exit codes.
const (
	ExitSuccess      = 0
	ExitNoneSelected = 1 // no test in the catalog was selected
	ExitInputError   = 2 // bad flags, config, rules or catalog
)
