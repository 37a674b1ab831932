/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import "github.com/lumen-pages/navgen/cmd"

func main() {
	cmd.Execute()
}
