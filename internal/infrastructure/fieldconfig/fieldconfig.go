// Package fieldconfig serves the static field definition documents the
// design-tool plugin uses to lay out its PLM panels.
package fieldconfig

import (
	_ "embed"
	"encoding/json"
)

//go:embed view_fields.json
var viewFields []byte

//go:embed result_fields.json
var resultFields []byte

//go:embed setting_fields.json
var settingFields []byte

// ViewFields returns the search-panel field definitions
func ViewFields() json.RawMessage { return viewFields }

// ResultFields returns the search-result column definitions
func ResultFields() json.RawMessage { return resultFields }

// SettingFields returns the settings-panel field definitions
func SettingFields() json.RawMessage { return settingFields }
