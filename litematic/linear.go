package litematic

// LinearIndex maps a local coordinate to its offset in the dense block array. X varies fastest, then Z,
// then Y; the order is fixed by the file format.
func LinearIndex(x, y, z, sizeX, sizeZ int) int {
	return (y*sizeZ+z)*sizeX + x
}
