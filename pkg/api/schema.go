package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/command.schema.json
var commandSchemaSource string

const commandSchemaURL = "command.schema.json"

var (
	commandSchemaOnce sync.Once
	commandSchema     *jsonschema.Schema
	commandSchemaErr  error
)

func loadCommandSchema() (*jsonschema.Schema, error) {
	commandSchemaOnce.Do(func() {
		commandSchema, commandSchemaErr = jsonschema.CompileString(commandSchemaURL, commandSchemaSource)
	})
	return commandSchema, commandSchemaErr
}

// ParseCommand проверяет сырое сообщение клиента по схеме и распаковывает его.
func ParseCommand(raw []byte) (ClientCommand, error) {
	var cmd ClientCommand
	if err := ValidateCommand(raw); err != nil {
		return cmd, err
	}
	if err := json.Unmarshal(raw, &cmd); err != nil {
		return cmd, fmt.Errorf("decode command: %w", err)
	}
	return cmd, nil
}

// ValidateCommand проверяет конверт команды по встроенной JSON-схеме.
func ValidateCommand(raw []byte) error {
	schema, err := loadCommandSchema()
	if err != nil {
		return fmt.Errorf("compile command schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("command rejected: %w", err)
	}
	return nil
}
