// Package comparisons benchmarks the containers against other implementations.
// It only contains tests.
package comparisons
