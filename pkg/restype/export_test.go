package restype

// Spellings returns the code and every alias seeded for n.
func Spellings(n Name) []string {
	sd := seedTable[n]
	return append([]string{sd.code}, sd.aliases...)
}

// Leaf says if a named type only describes itself.
func Leaf(n Name) bool { return seedTable[n].leaf }
