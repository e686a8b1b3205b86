// Package prompt is the input boundary of the spath CLI.
//
// Users number vertices from 1; everything past this package numbers them
// from 0. Interactive reads answers from a terminal and re-asks on bad
// input; LoadFile and ParseGraph read the same data from a YAML document
// and reject it on the first bad value. FormatPath and Query.Title turn
// results back into 1-based text.
package prompt
