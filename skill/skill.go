// Package skill exposes the currency converter as a callable unit with a
// declared parameter schema, the way a hosting runtime consumes it.
package skill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"

	converter "go-currency-converter-agent"
	"go-currency-converter-agent/exchange"
)

// ConvertID is the identifier of the conversion skill.
const ConvertID = "convert"

// ErrInvalidArguments the arguments could not be decoded or a field is missing.
var ErrInvalidArguments = errors.New("invalid arguments")

// Descriptor describes a skill for discovery.
type Descriptor struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags,omitempty"`
	Examples    []string        `json:"examples,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// ConvertInput the arguments of the conversion skill.
//
// Currency membership is only declared in the schema. Codes outside of it are
// passed on so that they are answered like any other unsupported pair.
type ConvertInput struct {
	Amount         *float64           `json:"amount" validate:"required" jsonschema:"required" jsonschema_description:"The amount to convert"`
	SourceCurrency converter.Currency `json:"source_currency" validate:"required" jsonschema:"required" jsonschema_description:"The currency to convert from"`
	TargetCurrency converter.Currency `json:"target_currency" validate:"required" jsonschema:"required" jsonschema_description:"The currency to convert to"`
}

// JSONSchemaExtend declares the supported currencies as the enum of both currency fields.
func (ConvertInput) JSONSchemaExtend(schema *jsonschema.Schema) {
	currencies := converter.Currencies()
	enum := make([]any, 0, len(currencies))
	for _, c := range currencies {
		enum = append(enum, string(c))
	}
	for _, field := range []string{"source_currency", "target_currency"} {
		if property, ok := schema.Properties.Get(field); ok {
			property.Enum = enum
		}
	}
}

// Convert converts an amount from one currency to another.
type Convert struct {
	service    exchange.Service
	validate   *validator.Validate
	descriptor Descriptor
}

// NewConvert constructs the conversion skill on top of an exchange.Service.
func NewConvert(s exchange.Service) (*Convert, error) {
	schema, err := inputSchema(&ConvertInput{})
	if err != nil {
		return nil, fmt.Errorf("convert skill schema: %w", err)
	}
	return &Convert{
		service:  s,
		validate: validator.New(),
		descriptor: Descriptor{
			ID:          ConvertID,
			Name:        "Currency conversion",
			Description: "Converts a given amount from one currency to another. Supports EUR, JPY and USD.",
			Tags:        []string{"currency", "exchange rate", "conversion"},
			Examples: []string{
				"Convert 100 USD to EUR",
				"How much is 1000 JPY in USD?",
			},
			InputSchema: schema,
		},
	}, nil
}

// Descriptor returns the skill's discovery metadata.
func (c *Convert) Descriptor() Descriptor {
	return c.descriptor
}

// Execute decodes args and returns the converter's answer verbatim. Malformed
// arguments fail with ErrInvalidArguments; an unsupported currency is an answer.
func (c *Convert) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	var input ConvertInput
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if err := c.validate.Struct(input); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	return exchange.Text(ctx, c.service, converter.Amount(*input.Amount), input.SourceCurrency, input.TargetCurrency)
}

// inputSchema reflects the JSON schema of v, inlined without definitions.
func inputSchema(v any) (json.RawMessage, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(v)
	schema.Version = ""
	b, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}
