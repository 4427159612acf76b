package main

import "payroll-engine/internal/cli"

func main() {
	cli.Execute()
}
