// Package complexity counts loop iterations for the common time-complexity
// classes. Every function returns how often its innermost block ran, which
// is what a complexity class describes; wall-clock time is not measured.
package complexity

// LogLoop returns the values i takes in
//
//	for i := 1; i < n; i *= factor
//
// The block runs 1 + floor(log_factor(n-1)) times. A factor below 2 would
// never terminate and yields nil.
func LogLoop(n, factor int) []int {
	if factor < 2 {
		return nil
	}
	var out []int
	for i := 1; i < n; i *= factor {
		out = append(out, i)
	}
	return out
}

// PredictedIterations returns 1 + floor(log_factor(n-1)) for n > 1 and 0
// otherwise, computed without floating point.
func PredictedIterations(n, factor int) int {
	if n <= 1 || factor < 2 {
		return 0
	}
	k := 0
	for p := factor; p <= n-1; p *= factor {
		k++
	}
	return 1 + k
}

// Linear counts the iterations of a single loop over n.
func Linear(n int) int {
	count := 0
	for i := 0; i < n; i++ {
		count++
	}
	return count
}

// Linearithmic counts a doubling loop nested in a loop over n: N log N.
func Linearithmic(n int) int {
	count := 0
	for i := 0; i < n; i++ {
		for j := 1; j < n; j *= 2 {
			count++
		}
	}
	return count
}

// NestedLogLoops counts a doubling loop nested in another: log² N.
func NestedLogLoops(n int) int {
	count := 0
	for i := 1; i < n; i *= 2 {
		for j := 1; j < n; j *= 2 {
			count++
		}
	}
	return count
}

// LinearithmicSquared counts two nested doubling loops inside a loop over
// n: N log² N.
func LinearithmicSquared(n int) int {
	count := 0
	for i := 0; i < n; i++ {
		count += NestedLogLoops(n)
	}
	return count
}

// Quadratic counts two nested loops over n: N².
func Quadratic(n int) int {
	count := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			count++
		}
	}
	return count
}

// SqrtLoop counts `for i := 1; i*i < n; i++`: N^(1/2). Its growth curve
// looks like a logarithm's.
func SqrtLoop(n int) int {
	count := 0
	for i := 1; i*i < n; i++ {
		count++
	}
	return count
}

// LogLogLoop counts a loop whose variable is squared every round:
// log log N.
func LogLogLoop(n int) int {
	count := 0
	for i := 2; i < n; i *= i {
		count++
	}
	return count
}

// Factorial returns n! for 0 <= n <= 20, the largest that fits an int64.
func Factorial(n int) int64 {
	f := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		f *= i
	}
	return f
}
