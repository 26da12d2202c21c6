// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/clidoc/clidoc/cmd/clidoc"

func main() {
	cmd.Execute()
}
