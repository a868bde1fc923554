// Package roster loads the fixed team roster from a line-oriented text file.
// Each non-blank line is one player name; the file must hold exactly Size
// names, and the resulting Roster is immutable.
package roster
