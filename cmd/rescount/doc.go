// 17 Oct 2026

/*
Rescount reads residue codes and counts how often each residue type and
each category turns up.

Codes are separated by white space and may be spelt any way the
registry knows, so ADE, A, ra5 and RA3 all count as RNA adenine. Lines
starting with # are ignored. Codes that are not recognised are counted
as unknown types. Gzipped input is decompressed on the fly.

The output is csv. The first table has one line per type, the second the
total for each category, followed by the narrowest category covering
everything that was read.

Usage:
	rescount [flags] [infile [outfile]]

The flags are:
	-c category
		Only list types belonging to this category. The category
		totals are not affected.
	-l logdest
		Log to stdout, stderr or the named file.
	-p
		Also write a table with the common category of every pair
		of types seen.
*/
package main
