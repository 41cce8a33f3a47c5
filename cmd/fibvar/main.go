// fibvar drives the Fibonacci-variant circuit: it synthesizes a witnessed
// instance and mock-verifies it, or emits the setup shape for a given
// length.
package main

func main() {
	Execute()
}
