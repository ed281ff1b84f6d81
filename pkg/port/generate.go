// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package port

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

var GenerateRandomPortOrDefault func() string = _generateRandomPortOrDefault
var generateRandomPort func() (string, error) = _generateRandomPort

func _generateRandomPort() (string, error) {
	min := int64(54301)
	max := int64(54309)

	diff := max - min + 1

	n, err := rand.Int(rand.Reader, big.NewInt(diff))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(min+n.Int64(), 10), nil
}

// _generateRandomPortOrDefault picks a random callback port from the
// reserved range, falling back to the top of the range when the entropy
// source is unavailable.
func _generateRandomPortOrDefault() string {
	redirectPort, err := generateRandomPort()
	if err != nil {
		redirectPort = "54309"
	}
	return redirectPort
}
