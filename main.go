package main

import (
	"polyhello/cmd"
)

var (
	VerBranch = "Prod."
	VerStatus = "Beta"
	VerNumber = "1.0.0"
	VerCommit = "dev"
)

func main() {
	cmd.Execute(cmd.VersionInfo{
		Branch: VerBranch,
		Status: VerStatus,
		Number: VerNumber,
		Commit: VerCommit,
	})
}
