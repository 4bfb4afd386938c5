package draftkings

import (
	"github.com/go-playground/validator/v10"
)

// one shared instance, validator caches struct metadata internally
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a record against its struct tags. Callers log and
// drop records that fail instead of aborting the run.
func Validate(record any) error {
	return validate.Struct(record)
}
