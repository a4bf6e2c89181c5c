package data

import (
	_ "embed"
)

// Lookups seeds species, sizes and urgencies into an empty database
//
//go:embed lookups.sql
var Lookups string
