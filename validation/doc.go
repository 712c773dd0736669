// Package validation validates configuration structs with struct tags
// (go-playground/validator) and reports failures as INVALID_ARGUMENT
// AppErrors whose details list every failing field.
//
//	type AsyncConfig struct {
//	    DefaultTimeout time.Duration `mapstructure:"default_timeout" validate:"gt=0"`
//	}
//
//	if err := validation.Validate(cfg); err != nil { ... }
package validation
