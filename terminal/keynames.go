package terminal

// keyToName maps NamedKey constants to canonical config string names
var keyToName = map[NamedKey]string{
	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyUp:    "up",
	KeyRight: "right",
	KeyDown:  "down",
	KeyLeft:  "left",

	KeyInsert:   "insert",
	KeyDelete:   "delete",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyBacktab:  "backtab",

	KeyUnknown: "unknown",
}

// nameToKey is the reverse lookup, built at init
var nameToKey map[string]NamedKey

func init() {
	nameToKey = make(map[string]NamedKey, len(keyToName))
	for k, name := range keyToName {
		nameToKey[name] = k
	}
}

// String returns the canonical name, "none" for KeyNone
func (k NamedKey) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "none"
}

// ParseNamedKey resolves a canonical name back to its NamedKey
func ParseNamedKey(name string) (NamedKey, bool) {
	k, ok := nameToKey[name]
	return k, ok
}
