// SPDX-License-Identifier: Unlicense OR MIT

//go:build unix

package main

import "golang.org/x/sys/unix"

// terminalSize returns the size of the terminal at fd in cells.
func terminalSize(fd int) (cols, rows int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}
