// Package models defines the wire types exchanged with the finance API.
// Field names and JSON tags follow the server contract exactly.
package models
