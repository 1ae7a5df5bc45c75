////////////////////////////////////////////////////////////////////////////////
// Facthunt: a crowd sourced fact resolution market for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"facthunt/contract"
)

func main() {
	debug := false
	contract.InitState(debug) // true = use MockState
	contract.InitENV(debug)   // true = use MockENV
	contract.InitHost(debug)  // true = use MockHost
}
