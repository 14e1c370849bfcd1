// Package oradb provides pure-Go value types for Oracle database clients.
//
// The package uses purego for FFI instead of CGO, allowing for easier
// cross-compilation and deployment. Column values such as INTERVAL DAY TO
// SECOND live in the types subpackage; the odpi subpackage holds the native
// client record layer that fetch code converts from.
//
// Usage:
//
//	import (
//	    "fmt"
//
//	    "github.com/connerohnesorge/oradb-go/types"
//	)
//
//	func main() {
//	    it, err := types.ParseIntervalDS("+01 02:03:04.500")
//	    if err != nil {
//	        // handle malformed literal
//	    }
//	    fmt.Println(it)
//	}
package oradb

// Version returns the version of the Oracle Go types library
const Version = "0.1.0"
