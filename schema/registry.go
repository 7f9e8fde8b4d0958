package schema

// Semantic field names shared across kinds.
const (
	FieldHref         = "href"
	FieldStatus       = "status"
	FieldQuery        = "q"
	FieldApplication  = "application"
	FieldAccountStore = "account_store"
	FieldEmail        = "email"
	FieldName         = "name"
	FieldPassword     = "password"
)

// External flag names shared across kinds. Note that account_store shares
// --href with the href field on account-store-mappings: the mapping's store
// is addressed by the href of the directory or group backing it.
const (
	FlagHref          = "--href"
	FlagStatus        = "--status"
	FlagQuery         = "--query"
	FlagInApplication = "--in-application"
)

var fullSchemas = map[Kind]Schema{
	Account: newSchema(
		Field{Name: "username", Flag: "--username"},
		Field{Name: FieldEmail, Flag: "--email", Required: true},
		Field{Name: "given_name", Flag: "--given-name", Required: true},
		Field{Name: "middle_name", Flag: "--middle-name"},
		Field{Name: "surname", Flag: "--surname", Required: true},
		Field{Name: FieldPassword, Flag: "--password", Required: true, Secret: true},
		Field{Name: FieldStatus, Flag: FlagStatus},
		Field{Name: FieldHref, Flag: FlagHref},
	),
	Application: newSchema(
		Field{Name: FieldName, Flag: "--name", Required: true},
		Field{Name: "description", Flag: "--description"},
		Field{Name: FieldHref, Flag: FlagHref},
	),
	Directory: newSchema(
		Field{Name: FieldName, Flag: "--name", Required: true},
		Field{Name: "description", Flag: "--description"},
		Field{Name: FieldHref, Flag: FlagHref},
	),
	Group: newSchema(
		Field{Name: FieldName, Flag: "--name", Required: true},
		Field{Name: "description", Flag: "--description"},
		Field{Name: FieldHref, Flag: FlagHref},
	),
	AccountStoreMapping: newSchema(
		Field{Name: FieldHref, Flag: FlagHref},
		Field{Name: FieldAccountStore, Flag: FlagHref, Required: true},
		Field{Name: FieldApplication, Flag: FlagInApplication, Required: true},
		Field{Name: "is_default_account_store", Flag: "--is-default-account-store"},
		Field{Name: "is_default_group_store", Flag: "--is-default-group-store"},
	),
}

var extraSchemas = map[Kind]Schema{
	Application: newSchema(
		Field{Name: "create_directory", Flag: "--create-directory"},
	),
}

var primaryOrders = map[Kind][]string{
	Account:             {FieldEmail, FieldHref},
	Application:         {FieldName, FieldHref},
	Directory:           {FieldName, FieldHref},
	Group:               {FieldName, FieldHref},
	AccountStoreMapping: {FieldAccountStore, FieldHref},
}

var (
	requiredSchemas = buildDerived(fullSchemas, Schema.required)
	searchSchemas   = buildDerived(fullSchemas, Schema.withSearchFields)
)

func buildDerived(base map[Kind]Schema, derive func(Schema) Schema) map[Kind]Schema {
	derived := make(map[Kind]Schema, len(base))
	for kind, s := range base {
		derived[kind] = derive(s)
	}
	return derived
}

// Full returns every settable field of the kind, used for create and update.
func Full(kind Kind) Schema {
	return fullSchemas[kind]
}

// Required returns the subset of fields that must be present before a create
// can proceed.
func Required(kind Kind) Schema {
	return requiredSchemas[kind]
}

// Search returns the full schema plus the kind-independent status and
// free-text query filters, used for list.
func Search(kind Kind) Schema {
	return searchSchemas[kind]
}

// Extra returns operation side-channel fields that are not part of the
// resource body, such as the application create-directory switch. Kinds
// without side-channel fields return an empty schema.
func Extra(kind Kind) Schema {
	return extraSchemas[kind]
}

// PrimaryOrder returns the ordered candidate identifying fields for the kind.
// The first one present in a resolved attribute set is authoritative.
func PrimaryOrder(kind Kind) []string {
	order := primaryOrders[kind]
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// SupportsQuery reports whether list may apply search filters for the kind.
// Account-store-mapping listings are always unfiltered.
func SupportsQuery(kind Kind) bool {
	return kind != AccountStoreMapping
}
