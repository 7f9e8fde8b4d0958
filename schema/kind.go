package schema

import "strings"

// Kind enumerates the resource types manageable through the remote API.
type Kind int

const (
	Account Kind = iota
	Application
	Directory
	Group
	AccountStoreMapping
)

var kindNames = map[Kind]string{
	Account:             "account",
	Application:         "application",
	Directory:           "directory",
	Group:               "group",
	AccountStoreMapping: "account-store-mapping",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func Kinds() []Kind {
	return []Kind{Account, Application, Directory, Group, AccountStoreMapping}
}

// ParseKind maps a CLI token to a Kind. Singular and plural spellings are
// accepted, plus the short "mapping" alias for account-store-mappings.
func ParseKind(token string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "account", "accounts":
		return Account, true
	case "application", "applications", "app", "apps":
		return Application, true
	case "directory", "directories", "dir", "dirs":
		return Directory, true
	case "group", "groups":
		return Group, true
	case "account-store-mapping", "account-store-mappings", "mapping", "mappings":
		return AccountStoreMapping, true
	default:
		return 0, false
	}
}
