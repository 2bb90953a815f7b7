// Package model holds the wire-level DTOs the handler registry returns
// (§4.2) and the pure conversion functions that derive them from
// adapter records. No type here ever originates state; every value is
// computed from an adapter.* argument.
package model

import (
	"encoding/json"
	"strconv"
)

// maxSafeInteger is 2^53-1 (§4.2: "values exceeding 2^53-1 ... are JSON
// strings"), the largest integer a JSON number round-trips losslessly
// through a float64-based decoder.
const maxSafeInteger = 1<<53 - 1

// Amount is a u64 quantity (block height, gas, reward, nonce, balance)
// that marshals as a JSON number while it fits a float64 exactly and as
// a decimal string once it would not, per §4.2.
type Amount uint64

func (a Amount) MarshalJSON() ([]byte, error) {
	if uint64(a) > maxSafeInteger {
		return json.Marshal(strconv.FormatUint(uint64(a), 10))
	}
	return json.Marshal(uint64(a))
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var asNumber uint64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*a = Amount(asNumber)
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	v, err := strconv.ParseUint(asString, 10, 64)
	if err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}
