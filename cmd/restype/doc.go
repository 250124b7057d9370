// 17 Oct 2026

/*
Restype says what it knows about residue codes given on the command line.

For each code it prints the display code, the long code, the code one
would use in a PDB file and the categories the type belongs to. Codes
it does not recognise are reported as unknown.

Usage:
	restype [flags] code...

The flags are:
	-g
		Also print the common category of each neighbouring pair of codes.
	-c category
		Also say whether each code belongs to the category.
	-l logdest
		Log to stdout, stderr or the named file.
*/
package main
