package main

import "github.com/betacoin/betacoin/app/tooling/chainadmin/cmd"

func main() {
	cmd.Execute()
}
