package main

import (
	"github.com/errorparty/desktop/pkg/systray/subprocess"
	"github.com/spf13/cobra"
)

// `errorparty-desktop tray` command, started by the desktop process
func trayCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "tray",
		Short:  "Runs the tray icon process",
		Long:   "Runs the tray icon process. It reads menu definitions on stdin and reports clicks on stdout.",
		Hidden: true,
		Args:   cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			subprocess.Run()
		},
	}
}
