package model

const (
	RedactPassthrough = "PASSTHROUGH"
	RedactRedact      = "REDACT"
	RedactBlock       = "BLOCK"
)

// RedactOptionValues lists the accepted values for a redaction setting.
var RedactOptionValues = []string{RedactPassthrough, RedactRedact, RedactBlock}

// RedactOption is one configurable prompt redaction entity.
type RedactOption struct {
	Key     string
	Name    string
	Default string
}

// RedactOptions enumerates the configurable redaction entities with their
// defaults for options not stored in the database.
var RedactOptions = []RedactOption{
	{Key: "redact_name", Name: "Name", Default: RedactPassthrough},
	{Key: "redact_organization", Name: "Organization", Default: RedactPassthrough},
	{Key: "redact_email", Name: "Email", Default: RedactPassthrough},
	{Key: "phone_number", Name: "Phone Number", Default: RedactPassthrough},
	{Key: "redact_location", Name: "Location", Default: RedactPassthrough},
}

// Setting is one persisted configuration option.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (Setting) TableName() string {
	return "configurations"
}
