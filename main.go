// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/neetstand/admin-service/cmd"

func main() {
	cmd.Execute()
}
