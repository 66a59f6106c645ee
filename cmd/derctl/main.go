// Command derctl inspects and edits DER/BER objects from the shell.
//
// An editing session lives in a state file (derctl.json by default) so a
// sequence of invocations can build up a change:
//
//	derctl import object.roa
//	derctl show
//	derctl set 12 65001
//	derctl export -o edited.roa
package main

func main() {
	execute()
}
