package format

// Align4 rounds n up to the next multiple of DwordSize.
func Align4(n int) int {
	return (n + DwordSize - 1) &^ (DwordSize - 1)
}
