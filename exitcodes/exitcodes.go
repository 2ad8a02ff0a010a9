// Package exitcodes defines the standard exit codes used by cukejunit.
//
// * Success (0): every reported feature passed
// * TestFailure (1): one or more features had failures or errors
// * RuntimeErr (2): runtime problems such as unreadable input or I/O errors
package exitcodes

const (
	Success     = 0
	TestFailure = 1
	RuntimeErr  = 2
)
