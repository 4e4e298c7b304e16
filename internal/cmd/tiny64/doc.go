// Package tiny64cmd builds the tiny64 command line: with no arguments it
// prints one ID, with -h or --help it prints the format documentation.
//
// Example:
//
//	code := tiny64cmd.Main(os.Args[1:], tiny64cmd.Options{})
//	os.Exit(code)
package tiny64cmd
