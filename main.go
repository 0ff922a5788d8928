// SPDX-License-Identifier: MPL-2.0

package main

import cmd "sdkscan/cmd/sdkscan"

func main() {
	cmd.Execute()
}
