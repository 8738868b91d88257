// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"strconv"
)

var (
	errValueEmpty       = errors.New("value must not be empty")
	errValueNotAString  = errors.New("value must be a string")
	errValueNotANumber  = errors.New("value must be a whole number")
	errValueNegative    = errors.New("value must not be negative")
	errValueNotPositive = errors.New("value must be greater than zero")
)

func validateNonEmpty(val interface{}) error {
	s, ok := val.(string)
	if !ok {
		return errValueNotAString
	}
	if s == "" {
		return errValueEmpty
	}
	return nil
}

func validateNonNegativeInt(val interface{}) error {
	n, err := intValue(val)
	if err != nil {
		return err
	}
	if n < 0 {
		return errValueNegative
	}
	return nil
}

func validatePositiveInt(val interface{}) error {
	n, err := intValue(val)
	if err != nil {
		return err
	}
	if n <= 0 {
		return errValueNotPositive
	}
	return nil
}

func intValue(val interface{}) (int, error) {
	if err := validateNonEmpty(val); err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(val.(string))
	if err != nil {
		return 0, errValueNotANumber
	}
	return n, nil
}
