package soroban

import "github.com/google/uuid"

// DatasetInfo is the public description of the loaded dataset.
// No internal package imports — safe to use from outside the module.
type DatasetInfo struct {
	ID      uuid.UUID `json:"id"`
	Rows    int       `json:"rows"`
	Columns []string  `json:"columns"`
}

// ToolParam declares one named argument of a tool.
type ToolParam struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"` // "string", "number", "boolean", "string[]"
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Enum        []string `json:"enum,omitempty"`
	Default     any      `json:"default,omitempty"`
}

// ToolDescriptor is the public declaration of one callable tool. The
// ordered descriptor list is the contract handed to the agent runtime.
type ToolDescriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []ToolParam `json:"params"`
}

// ToolError is a domain failure reported as data. AvailableColumns is
// populated when a corrected column name would fix the call.
type ToolError struct {
	Message          string   `json:"message"`
	AvailableColumns []string `json:"available_columns,omitempty"`
}

// ToolResult is the outcome of one tool invocation: exactly one of
// Data or Err is set.
type ToolResult struct {
	Data any        `json:"data,omitempty"`
	Err  *ToolError `json:"error,omitempty"`
}
