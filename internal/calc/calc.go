// Package calc holds trivial arithmetic helpers kept around as a smoke test
// for the build and CI wiring.
package calc

func Add(a, b int) int {
	return a + b
}

func Sub(a, b int) int {
	return a - b
}
