package main

import "github.com/dogeorg/wifiwatch/cmd/wifiwatch/cmd"

func main() {
	cmd.Execute()
}
