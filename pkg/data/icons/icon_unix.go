//go:build !windows
// +build !windows

package icons

// ErrorParty is the tray icon in the format the platform tray loads.
var ErrorParty = errorPartyPNG
