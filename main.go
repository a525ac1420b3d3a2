/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/suderio/ojcalc/cmd"

func main() {
	cmd.Execute()
}
