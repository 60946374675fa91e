package main

import "github.com/Bitlatte/splash/cmd"

func main() {
	cmd.Execute()
}
