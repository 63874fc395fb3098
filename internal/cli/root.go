package cli

import (
	"github.com/vslugin/long-term-booking/internal/booking"
	"github.com/vslugin/long-term-booking/internal/config"
	"github.com/vslugin/long-term-booking/internal/excel"
	"github.com/vslugin/long-term-booking/internal/i18n"
	"github.com/vslugin/long-term-booking/internal/validation"
)

// Context carries the shared dependencies into command Run methods
type Context struct {
	Config    *config.Config
	Catalog   *i18n.Catalog
	Validator *validation.Validator
	Expander  *booking.Expander
	Writer    *excel.Writer
}
