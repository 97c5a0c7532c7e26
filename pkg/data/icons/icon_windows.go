package icons

// ErrorParty is the tray icon in the format the platform tray loads.
var ErrorParty = errorPartyICO
