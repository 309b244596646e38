// SPDX-License-Identifier: Unlicense OR MIT

//go:build !unix

package main

func terminalSize(fd int) (cols, rows int) {
	return 80, 24
}
