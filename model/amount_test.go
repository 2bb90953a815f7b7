package model_test

import (
	"encoding/json"
	"testing"

	"github.com/dusk-network/rusk/model"
	"github.com/stretchr/testify/require"
)

func TestAmountMarshalsAsNumberBelowSafeInteger(t *testing.T) {
	data, err := json.Marshal(model.Amount(42))
	require.NoError(t, err)
	require.Equal(t, "42", string(data))
}

func TestAmountMarshalsAsStringAboveSafeInteger(t *testing.T) {
	data, err := json.Marshal(model.Amount(1 << 60))
	require.NoError(t, err)
	require.Equal(t, `"1152921504606846976"`, string(data))
}

func TestAmountUnmarshalsBothShapes(t *testing.T) {
	var a model.Amount
	require.NoError(t, json.Unmarshal([]byte("42"), &a))
	require.Equal(t, model.Amount(42), a)

	var b model.Amount
	require.NoError(t, json.Unmarshal([]byte(`"1152921504606846976"`), &b))
	require.Equal(t, model.Amount(1<<60), b)
}
