// Package icons holds the tray icons sent by name to the tray process.
package icons

var byName = map[string][]byte{
	"errorparty": ErrorParty,
}

// Lookup returns the named icon, or the default icon for unknown names.
func Lookup(name string) []byte {
	if icon, ok := byName[name]; ok {
		return icon
	}
	return ErrorParty
}
