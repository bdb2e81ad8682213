package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *gpvalidator.Validate
)

// Init initializes the validator singleton (idempotent)
func Init() {
	once.Do(func() {
		validate = gpvalidator.New()
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return validate.Struct(s)
}
