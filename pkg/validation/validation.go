/*
Copyright 2026 the Platform Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Struct checks the validate tags of v and joins every violation into one
// error naming the offending fields.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	var errs []error

	for _, fe := range fieldErrors {
		msg := fmt.Sprintf("field validation for '%s' failed on the '%s' tag", fe.Namespace(), fe.Tag())
		if param := fe.Param(); param != "" {
			msg += "=" + param
		}

		errs = append(errs, errors.New(msg)) //nolint:err113
	}

	return errors.Join(errs...)
}
