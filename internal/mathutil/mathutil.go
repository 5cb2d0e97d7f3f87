// Package mathutil holds the arithmetic helpers of the shared framework.
package mathutil

// Add returns the sum of two integers.
func Add(a, b int) int {
	return a + b
}

// Sum returns the sum of the given integers.
func Sum(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}
