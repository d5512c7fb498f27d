package providers

import (
	"errors"
	"fmt"
	"folio/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid configuration: %s", v.Errors.One())
	}

	if cv.conf.Store.Configured() && cv.conf.Store.DSN == "" {
		return errors.New("invalid configuration: store.dsn is required when the store is configured")
	}
	if cv.conf.Auth.OwnerEmail != "" && !validate.IsEmail(cv.conf.Auth.OwnerEmail) {
		return errors.New("invalid configuration: auth.ownerEmail must be an email address")
	}
	if cv.conf.Backup.Enabled && (cv.conf.Backup.FilePath == "" || cv.conf.Backup.Interval <= 0) {
		return errors.New("invalid configuration: backup requires filePath and a positive interval")
	}

	return nil
}
